// Package metadata assembles decoded traits into token records and labels them
package metadata

//go:generate mockgen -destination=mock/mock_lookup.go -package=metadatamock github.com/KirkDiggler/ipc-metadata/internal/services/metadata LabelLookup

import (
	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
)

// UnknownLabel stands in for codes the label engine cannot resolve
const UnknownLabel = "unknown"

// LabelLookup resolves a numeric trait code to a display name. ok is false
// when the code is unknown for the category.
type LabelLookup interface {
	Lookup(category ipc.Category, code int) (label string, ok bool)
}
