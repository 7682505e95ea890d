// Package token stores indexed token snapshots: the on-chain fields of each
// token and the total supply per contract.
package token

//go:generate mockgen -destination=mock/mock_repository.go -package=tokenmock github.com/KirkDiggler/ipc-metadata/internal/repositories/token Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
	"github.com/KirkDiggler/ipc-metadata/internal/errors"
)

// Snapshot is a stored token as it was indexed
type Snapshot struct {
	Token     ipc.RawToken `json:"token"`
	IndexedAt time.Time    `json:"indexed_at"`
}

// GetSupplyInput contains parameters for reading a contract's supply
type GetSupplyInput struct {
	Contract string
}

// GetSupplyOutput contains the total supply
type GetSupplyOutput struct {
	TotalSupply int64
}

// SetSupplyInput contains parameters for recording a contract's supply
type SetSupplyInput struct {
	Contract    string
	TotalSupply int64
}

// SetSupplyOutput is returned by SetSupply
type SetSupplyOutput struct{}

// GetInput contains parameters for loading one token
type GetInput struct {
	Contract string
	TokenID  int64
}

// GetOutput contains the narrowed fields and the stored snapshot
type GetOutput struct {
	Fields   *ipc.OnChainFields
	Snapshot *Snapshot
}

// PutInput contains parameters for storing one token
type PutInput struct {
	Contract string
	Token    ipc.RawToken
}

// PutOutput contains the stored snapshot
type PutOutput struct {
	Snapshot *Snapshot
}

// Repository is the data provider for token fields
type Repository interface {
	// GetSupply returns the indexed total supply of a contract
	GetSupply(ctx context.Context, input GetSupplyInput) (*GetSupplyOutput, error)

	// SetSupply records the total supply of a contract
	SetSupply(ctx context.Context, input SetSupplyInput) (*SetSupplyOutput, error)

	// Get loads a token snapshot and narrows it into on-chain fields
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores a token snapshot
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}

func validateContract(contract string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("contract", contract, ipc.Contracts, vb)
	return vb.Build()
}

func validateTokenID(tokenID int64) error {
	if tokenID < 1 {
		return errors.InvalidArgumentf("token id must be positive, got %d", tokenID)
	}
	return nil
}
