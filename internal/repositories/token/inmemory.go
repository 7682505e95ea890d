package token

import (
	"context"
	"sync"

	"github.com/KirkDiggler/ipc-metadata/internal/errors"
	"github.com/KirkDiggler/ipc-metadata/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage. It backs
// the CLI when it reads a snapshot file directly.
type InMemoryRepository struct {
	mu       sync.RWMutex
	clock    clock.Clock
	supplies map[string]int64
	tokens   map[string]map[int64]Snapshot
}

// NewInMemory creates a new in-memory repository
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock:    clk,
		supplies: make(map[string]int64),
		tokens:   make(map[string]map[int64]Snapshot),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// GetSupply returns the indexed total supply of a contract
func (r *InMemoryRepository) GetSupply(_ context.Context, input GetSupplyInput) (*GetSupplyOutput, error) {
	if err := validateContract(input.Contract); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	supply, ok := r.supplies[input.Contract]
	if !ok {
		return nil, errors.NotFound(errSupplyNotIndexed).WithMeta("contract", input.Contract)
	}
	return &GetSupplyOutput{TotalSupply: supply}, nil
}

// SetSupply records the total supply of a contract
func (r *InMemoryRepository) SetSupply(_ context.Context, input SetSupplyInput) (*SetSupplyOutput, error) {
	if err := validateContract(input.Contract); err != nil {
		return nil, err
	}
	if input.TotalSupply < 0 {
		return nil, errors.InvalidArgumentf("total supply cannot be negative, got %d", input.TotalSupply)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.supplies[input.Contract] = input.TotalSupply
	return &SetSupplyOutput{}, nil
}

// Get loads a token snapshot and narrows it into on-chain fields
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateContract(input.Contract); err != nil {
		return nil, err
	}
	if err := validateTokenID(input.TokenID); err != nil {
		return nil, err
	}

	r.mu.RLock()
	snapshot, found := r.tokens[input.Contract][input.TokenID]
	supply, indexed := r.supplies[input.Contract]
	r.mu.RUnlock()

	if !found {
		return nil, errors.NotFoundf("token %d is not indexed", input.TokenID).
			WithMeta("contract", input.Contract).
			WithMeta("token_id", input.TokenID)
	}
	if !indexed {
		return nil, errors.NotFound(errSupplyNotIndexed).WithMeta("contract", input.Contract)
	}

	fields, err := snapshot.Token.ToOnChainFields(supply)
	if err != nil {
		return nil, err
	}

	return &GetOutput{
		Fields:   fields,
		Snapshot: &snapshot,
	}, nil
}

// Put stores a token snapshot
func (r *InMemoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if err := validateContract(input.Contract); err != nil {
		return nil, err
	}
	if err := validateTokenID(input.Token.TokenID); err != nil {
		return nil, err
	}

	snapshot := Snapshot{
		Token:     input.Token,
		IndexedAt: r.clock.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tokens[input.Contract] == nil {
		r.tokens[input.Contract] = make(map[int64]Snapshot)
	}
	r.tokens[input.Contract][input.Token.TokenID] = snapshot

	return &PutOutput{Snapshot: &snapshot}, nil
}
