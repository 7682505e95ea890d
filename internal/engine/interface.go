// Package engine defines the trait derivation engine
package engine

//go:generate mockgen -destination=mock/mock_decoder.go -package=enginemock github.com/KirkDiggler/ipc-metadata/internal/engine Decoder

import (
	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
)

// Decoder turns seeds into trait bytes. Implementations must be pure: the
// same seed always yields the same bytes, in every process and version.
type Decoder interface {
	// DecodePhysical maps a dna seed to its 8 physical trait bytes
	DecodePhysical(seed ipc.DnaSeed) (ipc.PhysicalTraits, error)

	// DecodeAttributes maps an attribute seed to its 13 raw attribute bytes
	DecodeAttributes(seed ipc.AttributeSeed) (ipc.RawAttributes, error)
}
