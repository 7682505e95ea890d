// Package token orchestrates metadata lookups: range check, field
// resolution, seed decoding, assembly and labeling.
package token

//go:generate mockgen -destination=mock/mock_service.go -package=tokenmock github.com/KirkDiggler/ipc-metadata/internal/orchestrators/token Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/ipc-metadata/internal/engine"
	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
	"github.com/KirkDiggler/ipc-metadata/internal/errors"
	"github.com/KirkDiggler/ipc-metadata/internal/pkg/metrics"
	tokenrepo "github.com/KirkDiggler/ipc-metadata/internal/repositories/token"
	"github.com/KirkDiggler/ipc-metadata/internal/services/metadata"
)

// Service defines the token metadata operations
type Service interface {
	// GetMetadata returns the labeled record of one token
	GetMetadata(ctx context.Context, input *GetMetadataInput) (*GetMetadataOutput, error)

	// RandomToken picks a token id uniformly from [1, total supply]
	RandomToken(ctx context.Context, input *RandomTokenInput) (*RandomTokenOutput, error)
}

// Config holds the dependencies for the token orchestrator
type Config struct {
	TokenRepo tokenrepo.Repository
	Decoder   engine.Decoder
	Labels    metadata.LabelLookup

	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller

	// Metrics is optional
	Metrics *metrics.Metrics
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.TokenRepo == nil {
		vb.RequiredField("TokenRepo")
	}
	if c.Decoder == nil {
		vb.RequiredField("Decoder")
	}
	if c.Labels == nil {
		vb.RequiredField("Labels")
	}

	return vb.Build()
}

type orchestrator struct {
	tokenRepo tokenrepo.Repository
	decoder   engine.Decoder
	labels    metadata.LabelLookup
	roller    dice.Roller
	metrics   *metrics.Metrics
}

// NewOrchestrator creates a new token orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		tokenRepo: cfg.TokenRepo,
		decoder:   cfg.Decoder,
		labels:    cfg.Labels,
		roller:    roller,
		metrics:   cfg.Metrics,
	}, nil
}

// resolveContract applies the default and rejects unknown contracts
func resolveContract(contract string) (string, error) {
	if contract == "" {
		return ipc.DefaultContract, nil
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("contract", contract, ipc.Contracts, vb)
	if err := vb.Build(); err != nil {
		return "", err
	}
	return contract, nil
}

// GetMetadata returns the labeled record of one token. The token id is range
// checked against the supply before any field lookup or decoding happens.
func (o *orchestrator) GetMetadata(ctx context.Context, input *GetMetadataInput) (out *GetMetadataOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	// rejected before the metrics defer so the contract label stays bounded
	contract, err := resolveContract(input.Contract)
	if err != nil {
		return nil, err
	}

	defer func() {
		if o.metrics != nil {
			o.metrics.Lookups.WithLabelValues(contract, errors.GetCode(err).String()).Inc()
		}
	}()

	supplyOut, err := o.tokenRepo.GetSupply(ctx, tokenrepo.GetSupplyInput{Contract: contract})
	if err != nil {
		return nil, ipc.NewResolutionError(err, "failed to resolve total supply")
	}

	if err := metadata.ValidateTokenID(input.TokenID, supplyOut.TotalSupply); err != nil {
		return nil, err
	}

	getOut, err := o.tokenRepo.Get(ctx, tokenrepo.GetInput{
		Contract: contract,
		TokenID:  input.TokenID,
	})
	if err != nil {
		return nil, ipc.NewResolutionError(err, "failed to resolve token fields")
	}
	fields := getOut.Fields

	physical, attributes, err := o.decode(fields)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode token %d", input.TokenID)
	}

	record, err := metadata.Assemble(fields, physical, attributes)
	if err != nil {
		return nil, err
	}

	labeled := metadata.Label(record, o.labels)
	o.recordLabelMisses(labeled)

	slog.Info("Token metadata assembled",
		"contract", contract,
		"token_id", record.ID,
		"total_supply", supplyOut.TotalSupply,
	)

	return &GetMetadataOutput{
		Record:      labeled,
		TotalSupply: supplyOut.TotalSupply,
	}, nil
}

// decode runs both decoders; they are independent so they run in parallel
func (o *orchestrator) decode(fields *ipc.OnChainFields) (ipc.PhysicalTraits, ipc.RawAttributes, error) {
	var (
		physical   ipc.PhysicalTraits
		attributes ipc.RawAttributes
		g          errgroup.Group
	)

	start := time.Now()

	g.Go(func() error {
		var err error
		physical, err = o.decoder.DecodePhysical(fields.DNA)
		return err
	})
	g.Go(func() error {
		var err error
		attributes, err = o.decoder.DecodeAttributes(fields.AttributeSeed)
		return err
	})

	if err := g.Wait(); err != nil {
		return physical, attributes, err
	}

	if o.metrics != nil {
		o.metrics.DecodeDuration.Observe(time.Since(start).Seconds())
	}

	return physical, attributes, nil
}

func (o *orchestrator) recordLabelMisses(labeled *ipc.LabeledRecord) {
	if o.metrics == nil {
		return
	}

	l := labeled.Labels
	values := [ipc.PhysicalTraitCount]string{
		l.Race, l.Subrace, l.Gender, l.Height, l.Handedness, l.SkinColor, l.HairColor, l.EyeColor,
	}
	for trait, value := range values {
		if value == metadata.UnknownLabel {
			o.metrics.LabelMisses.WithLabelValues(string(ipc.TraitCategories[trait])).Inc()
		}
	}
}

// RandomToken picks a token id uniformly from [1, total supply]
func (o *orchestrator) RandomToken(ctx context.Context, input *RandomTokenInput) (*RandomTokenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	contract, err := resolveContract(input.Contract)
	if err != nil {
		return nil, err
	}

	supplyOut, err := o.tokenRepo.GetSupply(ctx, tokenrepo.GetSupplyInput{Contract: contract})
	if err != nil {
		return nil, ipc.NewResolutionError(err, "failed to resolve total supply")
	}
	if supplyOut.TotalSupply < 1 {
		return nil, errors.OutOfRangef("contract %s has no tokens yet", contract).
			WithMeta("contract", contract)
	}

	rolled, err := o.roller.Roll(int(supplyOut.TotalSupply))
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll token id")
	}

	slog.Info("Random token picked",
		"contract", contract,
		"token_id", rolled,
		"total_supply", supplyOut.TotalSupply,
	)

	return &RandomTokenOutput{
		TokenID:     int64(rolled),
		TotalSupply: supplyOut.TotalSupply,
	}, nil
}
