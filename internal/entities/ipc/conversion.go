package ipc

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/KirkDiggler/ipc-metadata/internal/errors"
)

// RawToken is a token as stored by a data provider, with wide on-chain
// integers kept as decimal strings.
type RawToken struct {
	TokenID       int64  `json:"token_id" yaml:"token_id"`
	Name          string `json:"name" yaml:"name"`
	DNA           string `json:"dna" yaml:"dna"`
	AttributeSeed string `json:"attribute_seed" yaml:"attribute_seed"`
	Experience    string `json:"experience" yaml:"experience"`
	Birth         string `json:"birth" yaml:"birth"`
	SellPrice     string `json:"sell_price" yaml:"sell_price"`
	Owner         string `json:"owner" yaml:"owner"`
}

// ParseUnsigned reads an unsigned integer written in decimal or 0x prefixed
// hex. Signs, underscores and other base prefixes are rejected.
func ParseUnsigned(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("value is empty")
	}

	digits, base := s, 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits, base = s[2:], 16
	}
	if digits == "" || strings.ContainsAny(digits, "+-_") {
		return nil, fmt.Errorf("%q is not an unsigned integer", s)
	}

	value, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("%q is not a base %d integer", s, base)
	}
	return value, nil
}

// NarrowInt64 converts a wide unsigned on-chain integer to int64. Empty input
// is zero. Negative, non-numeric or overflowing values fail.
func NarrowInt64(field, value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	n, err := ParseUnsigned(value)
	if err != nil {
		return 0, errors.FailedPreconditionf("%s is not an unsigned integer: %q", field, value).
			WithMeta("field", field)
	}
	if n.Cmp(big.NewInt(math.MaxInt64)) > 0 {
		return 0, errors.FailedPreconditionf("%s does not fit in int64: %s", field, value).
			WithMeta("field", field)
	}
	return n.Int64(), nil
}

// ToOnChainFields narrows a RawToken into OnChainFields
func (t *RawToken) ToOnChainFields(totalSupply int64) (*OnChainFields, error) {
	xp, err := NarrowInt64("experience", t.Experience)
	if err != nil {
		return nil, NewResolutionError(err, "invalid experience")
	}
	birth, err := NarrowInt64("birth", t.Birth)
	if err != nil {
		return nil, NewResolutionError(err, "invalid birth timestamp")
	}

	price := strings.TrimSpace(t.SellPrice)
	if price == "" {
		price = "0"
	}

	return &OnChainFields{
		TokenID:       t.TokenID,
		Name:          t.Name,
		DNA:           DnaSeed(t.DNA),
		AttributeSeed: AttributeSeed(t.AttributeSeed),
		Experience:    xp,
		Birth:         birth,
		SellPrice:     price,
		Owner:         t.Owner,
		TotalSupply:   totalSupply,
	}, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
