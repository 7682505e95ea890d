package metadata

import (
	"strconv"

	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
	"github.com/KirkDiggler/ipc-metadata/internal/errors"
)

// ValidateTokenID checks that id lies in [1, totalSupply]
func ValidateTokenID(tokenID, totalSupply int64) error {
	if tokenID < 1 || tokenID > totalSupply {
		return ipc.NewOutOfRangeError(tokenID, totalSupply)
	}
	return nil
}

// Assemble builds the canonical record from on-chain fields and decoded bytes
func Assemble(fields *ipc.OnChainFields, physical ipc.PhysicalTraits, attributes ipc.RawAttributes) (*ipc.TokenRecord, error) {
	if fields == nil {
		return nil, errors.InvalidArgument("on-chain fields are required")
	}
	if err := ValidateTokenID(fields.TokenID, fields.TotalSupply); err != nil {
		return nil, err
	}

	return &ipc.TokenRecord{
		ID:            fields.TokenID,
		Name:          fields.Name,
		DNA:           fields.DNA,
		AttributeSeed: fields.AttributeSeed,
		Birth:         fields.Birth,
		Experience:    fields.Experience,
		Price:         fields.SellPrice,
		Owner:         fields.Owner,

		Physical:   physical,
		Attributes: attributes,

		// Not recoverable from chain data
		Gold:        0,
		Accessories: 0,
		LastUpdated: fields.Birth,
		Meta: ipc.Meta{
			Sprite: strconv.FormatInt(fields.TokenID, 10),
			Card:   fields.TokenID,
			Canon:  "",
			Rumor:  "",
		},
	}, nil
}
