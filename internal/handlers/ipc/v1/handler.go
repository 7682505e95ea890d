// Package v1 handles the ipc.v1 grpc service interface
package v1

import (
	"context"
	"encoding/json"
	"math"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/ipc-metadata/internal/errors"
	"github.com/KirkDiggler/ipc-metadata/internal/orchestrators/token"
)

// Request and response field names
const (
	FieldTokenID     = "token_id"
	FieldContract    = "contract"
	FieldRecord      = "record"
	FieldTotalSupply = "total_supply"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	MetadataService token.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.MetadataService == nil {
		return errors.InvalidArgument("metadata service is required")
	}
	return nil
}

// Handler implements the ipc.v1 metadata gRPC service
type Handler struct {
	metadataService token.Service
}

var _ MetadataServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		metadataService: cfg.MetadataService,
	}, nil
}

// GetMetadata returns the labeled record of one token.
// Request: {"token_id": 420, "contract": "v0"}; token_id may be a number or
// a decimal string.
func (h *Handler) GetMetadata(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	tokenID, err := tokenIDFromRequest(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.metadataService.GetMetadata(ctx, &token.GetMetadataInput{
		TokenID:  tokenID,
		Contract: req.GetFields()[FieldContract].GetStringValue(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	record, err := toStruct(output.Record)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode record"))
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldRecord:      structpb.NewStructValue(record),
		FieldTotalSupply: structpb.NewNumberValue(float64(output.TotalSupply)),
	}}, nil
}

// RandomToken returns a random existing token id.
// Request: {"contract": "v1"}.
func (h *Handler) RandomToken(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.metadataService.RandomToken(ctx, &token.RandomTokenInput{
		Contract: req.GetFields()[FieldContract].GetStringValue(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldTokenID:     structpb.NewNumberValue(float64(output.TokenID)),
		FieldTotalSupply: structpb.NewNumberValue(float64(output.TotalSupply)),
	}}, nil
}

func tokenIDFromRequest(req *structpb.Struct) (int64, error) {
	value, ok := req.GetFields()[FieldTokenID]
	if !ok {
		return 0, errors.InvalidArgument("token_id is required")
	}

	switch kind := value.GetKind().(type) {
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		// float64(math.MaxInt64) rounds up to 2^63, so the bound is exclusive
		if n != math.Trunc(n) || n >= math.Exp2(63) || n < -math.Exp2(63) {
			return 0, errors.InvalidArgumentf("token_id must be an integer, got %v", n)
		}
		return int64(n), nil
	case *structpb.Value_StringValue:
		n, err := strconv.ParseInt(kind.StringValue, 10, 64)
		if err != nil {
			return 0, errors.InvalidArgumentf("token_id must be an integer, got %q", kind.StringValue)
		}
		return n, nil
	default:
		return 0, errors.InvalidArgument("token_id must be a number or a string")
	}
}

func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, err
	}
	return out, nil
}
