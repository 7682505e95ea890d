package ipc

import (
	"github.com/KirkDiggler/ipc-metadata/internal/errors"
)

// NewDecodeError reports a seed that cannot be decoded
func NewDecodeError(kind string, seed string, cause error) *errors.Error {
	if cause == nil {
		return errors.DataLossf("%s seed %q cannot be decoded", kind, seed).
			WithMeta("seed_kind", kind)
	}
	return errors.WrapWithCode(cause, errors.CodeDataLoss, kind+" seed cannot be decoded").
		WithMeta("seed_kind", kind).
		WithMeta("seed", seed)
}

// IsDecodeError reports whether err is a DecodeError
func IsDecodeError(err error) bool {
	return errors.IsDataLoss(err)
}

// NewOutOfRangeError reports a token id outside [1, totalSupply]
func NewOutOfRangeError(tokenID, totalSupply int64) *errors.Error {
	return errors.OutOfRangef("token with id %q doesn't exist (yet), total supply is %d",
		formatID(tokenID), totalSupply).
		WithMeta("token_id", tokenID).
		WithMeta("total_supply", totalSupply)
}

// IsOutOfRangeError reports whether err is an OutOfRangeError
func IsOutOfRangeError(err error) bool {
	return errors.IsOutOfRange(err)
}

// NewResolutionError reports a provider failure. Codes already carried by
// cause (not found, failed precondition) are kept; anything else becomes
// unavailable.
func NewResolutionError(cause error, message string) *errors.Error {
	var existing *errors.Error
	if errors.As(cause, &existing) && existing.Code != errors.CodeInternal {
		return errors.Wrap(cause, message)
	}
	return errors.WrapWithCode(cause, errors.CodeUnavailable, message)
}
