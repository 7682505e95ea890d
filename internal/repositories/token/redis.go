package token

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
	"github.com/KirkDiggler/ipc-metadata/internal/errors"
	"github.com/KirkDiggler/ipc-metadata/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/ipc-metadata/internal/redis"
)

const (
	// Key patterns: ipc:{contract}:token:{id} and ipc:{contract}:supply
	keyPrefix = "ipc:"

	errSupplyNotIndexed = "total supply is not indexed"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for token snapshots
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// GetSupply returns the indexed total supply of a contract
func (r *redisRepository) GetSupply(ctx context.Context, input GetSupplyInput) (*GetSupplyOutput, error) {
	if err := validateContract(input.Contract); err != nil {
		return nil, err
	}

	raw, err := r.client.Get(ctx, supplyKey(input.Contract)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound(errSupplyNotIndexed).WithMeta("contract", input.Contract)
		}
		return nil, ipc.NewResolutionError(err, "failed to read total supply from Redis")
	}

	supply, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, ipc.NewResolutionError(
			errors.FailedPreconditionf("stored supply %q is not an integer", raw),
			"failed to read total supply",
		)
	}

	return &GetSupplyOutput{TotalSupply: supply}, nil
}

// SetSupply records the total supply of a contract
func (r *redisRepository) SetSupply(ctx context.Context, input SetSupplyInput) (*SetSupplyOutput, error) {
	if err := validateContract(input.Contract); err != nil {
		return nil, err
	}
	if input.TotalSupply < 0 {
		return nil, errors.InvalidArgumentf("total supply cannot be negative, got %d", input.TotalSupply)
	}

	err := r.client.Set(ctx, supplyKey(input.Contract), input.TotalSupply, 0).Err()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store total supply in Redis")
	}

	return &SetSupplyOutput{}, nil
}

// Get loads a token snapshot and narrows it into on-chain fields
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateContract(input.Contract); err != nil {
		return nil, err
	}
	if err := validateTokenID(input.TokenID); err != nil {
		return nil, err
	}

	values, err := r.client.MGet(ctx, tokenKey(input.Contract, input.TokenID), supplyKey(input.Contract)).Result()
	if err != nil {
		return nil, ipc.NewResolutionError(err, "failed to read token from Redis")
	}

	tokenJSON, ok := values[0].(string)
	if !ok {
		return nil, errors.NotFoundf("token %d is not indexed", input.TokenID).
			WithMeta("contract", input.Contract).
			WithMeta("token_id", input.TokenID)
	}
	rawSupply, ok := values[1].(string)
	if !ok {
		return nil, errors.NotFound(errSupplyNotIndexed).WithMeta("contract", input.Contract)
	}

	supply, err := ipc.NarrowInt64("total_supply", rawSupply)
	if err != nil {
		return nil, ipc.NewResolutionError(err, "invalid total supply")
	}

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(tokenJSON), &snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal token snapshot")
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
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validateContract(input.Contract); err != nil {
		return nil, err
	}
	if err := validateTokenID(input.Token.TokenID); err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Token:     input.Token,
		IndexedAt: r.clock.Now(),
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal token snapshot")
	}

	err = r.client.Set(ctx, tokenKey(input.Contract, input.Token.TokenID), data, 0).Err()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store token snapshot in Redis")
	}

	return &PutOutput{Snapshot: snapshot}, nil
}

func tokenKey(contract string, tokenID int64) string {
	return fmt.Sprintf("%s%s:token:%d", keyPrefix, contract, tokenID)
}

func supplyKey(contract string) string {
	return fmt.Sprintf("%s%s:supply", keyPrefix, contract)
}
