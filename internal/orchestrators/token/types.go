package token

import (
	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
)

// GetMetadataInput defines the request for a token's labeled metadata
type GetMetadataInput struct {
	TokenID int64
	// Contract defaults to ipc.DefaultContract
	Contract string
}

// GetMetadataOutput defines the response for a token's labeled metadata
type GetMetadataOutput struct {
	Record      *ipc.LabeledRecord
	TotalSupply int64
}

// RandomTokenInput defines the request for picking a random existing token
type RandomTokenInput struct {
	Contract string
}

// RandomTokenOutput defines the response for picking a random existing token
type RandomTokenOutput struct {
	TokenID     int64
	TotalSupply int64
}
