// Package seed implements the keccak based seed decoder
package seed

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/KirkDiggler/ipc-metadata/internal/engine"
	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
)

const (
	seedBits = 256
	seedSize = seedBits / 8

	dnaTag       = "ipc:dna"
	attributeTag = "ipc:attributes"

	// SubracesPerRace is the number of subraces each race owns
	SubracesPerRace = 3

	// AttributeMax is the highest raw attribute value
	AttributeMax = 10
)

// Cardinalities is the number of codes per physical trait. Codes start at 1.
// Subrace is the total across all races.
var Cardinalities = [ipc.PhysicalTraitCount]int{
	ipc.TraitRace:       4,
	ipc.TraitSubrace:    4 * SubracesPerRace,
	ipc.TraitGender:     2,
	ipc.TraitHeight:     5,
	ipc.TraitHandedness: 3,
	ipc.TraitSkinColor:  8,
	ipc.TraitHairColor:  8,
	ipc.TraitEyeColor:   8,
}

// Decoder implements engine.Decoder
type Decoder struct{}

var _ engine.Decoder = (*Decoder)(nil)

// NewDecoder returns a seed decoder
func NewDecoder() *Decoder {
	return &Decoder{}
}

// DecodePhysical implements engine.Decoder
func (d *Decoder) DecodePhysical(s ipc.DnaSeed) (ipc.PhysicalTraits, error) {
	return DecodePhysical(s)
}

// DecodeAttributes implements engine.Decoder
func (d *Decoder) DecodeAttributes(s ipc.AttributeSeed) (ipc.RawAttributes, error) {
	return DecodeAttributes(s)
}

// DecodePhysical maps a dna seed to its physical traits
func DecodePhysical(s ipc.DnaSeed) (ipc.PhysicalTraits, error) {
	var traits ipc.PhysicalTraits

	digest, err := digestSeed("dna", dnaTag, string(s))
	if err != nil {
		return traits, err
	}

	for i := range traits {
		traits[i] = digest[i]%byte(Cardinalities[i]) + 1
	}

	// subrace is picked among the subraces of the decoded race
	race := traits[ipc.TraitRace]
	traits[ipc.TraitSubrace] = (race-1)*SubracesPerRace + digest[ipc.TraitSubrace]%SubracesPerRace + 1

	return traits, nil
}

// DecodeAttributes maps an attribute seed to its raw attributes
func DecodeAttributes(s ipc.AttributeSeed) (ipc.RawAttributes, error) {
	var attrs ipc.RawAttributes

	digest, err := digestSeed("attribute", attributeTag, string(s))
	if err != nil {
		return attrs, err
	}

	for i := range attrs {
		attrs[i] = digest[i]%AttributeMax + 1
	}

	return attrs, nil
}

// digestSeed hashes tag followed by the 32 byte big endian seed value
func digestSeed(kind, tag, s string) ([]byte, error) {
	value, err := ParseSeed(s)
	if err != nil {
		return nil, ipc.NewDecodeError(kind, s, err)
	}

	var buf [seedSize]byte
	value.FillBytes(buf[:])

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(tag))
	h.Write(buf[:])
	return h.Sum(nil), nil
}

// ParseSeed reads a seed written in decimal or 0x prefixed hex. The value
// must be an unsigned integer of at most 256 bits.
func ParseSeed(s string) (*big.Int, error) {
	value, err := ipc.ParseUnsigned(s)
	if err != nil {
		return nil, fmt.Errorf("seed %w", err)
	}
	if value.BitLen() > seedBits {
		return nil, fmt.Errorf("seed is wider than %d bits", seedBits)
	}
	return value, nil
}
