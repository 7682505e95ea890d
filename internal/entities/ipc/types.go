// Package ipc holds the token metadata entities: seeds, decoded traits and
// the assembled records.
package ipc

// DnaSeed determines the physical traits of a token
type DnaSeed string

// AttributeSeed determines the raw ability scores of a token
type AttributeSeed string

// PhysicalTraits is the decoded dna, indexed by the Trait* constants
type PhysicalTraits [PhysicalTraitCount]byte

// RawAttributes is the decoded attribute seed, indexed by the Attr* constants
type RawAttributes [AttributeCount]byte

// Strength is force + sustain + tolerance
func (a RawAttributes) Strength() int {
	return a.group(GroupStrength)
}

// Dexterity is speed + precision + reaction
func (a RawAttributes) Dexterity() int {
	return a.group(GroupDexterity)
}

// Intelligence is memory + processing + reasoning
func (a RawAttributes) Intelligence() int {
	return a.group(GroupIntelligence)
}

// Constitution is healing + fortitude + vitality
func (a RawAttributes) Constitution() int {
	return a.group(GroupConstitution)
}

// Luck is the singleton attribute
func (a RawAttributes) Luck() int {
	return int(a[AttrLuck])
}

func (a RawAttributes) group(start int) int {
	return int(a[start]) + int(a[start+1]) + int(a[start+2])
}

// OnChainFields are the token values supplied by the data provider.
// Numeric fields have already been narrowed from their on-chain width.
type OnChainFields struct {
	TokenID       int64
	Name          string
	DNA           DnaSeed
	AttributeSeed AttributeSeed
	Experience    int64
	Birth         int64
	// SellPrice is a decimal wei amount and is never narrowed
	SellPrice   string
	Owner       string
	TotalSupply int64
}

// Meta carries display hints that cannot be derived from chain data
type Meta struct {
	Sprite string `json:"sprite"`
	Card   int64  `json:"card"`
	Canon  string `json:"canon"`
	Rumor  string `json:"rumor"`
}

// TokenRecord is the canonical, unlabeled metadata for one token.
// Composite stats are not stored; they are computed from Attributes.
type TokenRecord struct {
	ID            int64
	Name          string
	DNA           DnaSeed
	AttributeSeed AttributeSeed
	Birth         int64
	Experience    int64
	Price         string
	Owner         string

	Physical   PhysicalTraits
	Attributes RawAttributes

	// Placeholders
	Gold        int64
	Accessories int64
	LastUpdated int64
	Meta        Meta
}

// Labels holds one display name per physical trait
type Labels struct {
	Race       string `json:"race"`
	Subrace    string `json:"subrace"`
	Gender     string `json:"gender"`
	Height     string `json:"height"`
	Handedness string `json:"handedness"`
	SkinColor  string `json:"skin_color"`
	HairColor  string `json:"hair_color"`
	EyeColor   string `json:"eye_color"`
}

// Set stores label under the field for the given trait index
func (l *Labels) Set(trait int, label string) {
	switch trait {
	case TraitRace:
		l.Race = label
	case TraitSubrace:
		l.Subrace = label
	case TraitGender:
		l.Gender = label
	case TraitHeight:
		l.Height = label
	case TraitHandedness:
		l.Handedness = label
	case TraitSkinColor:
		l.SkinColor = label
	case TraitHairColor:
		l.HairColor = label
	case TraitEyeColor:
		l.EyeColor = label
	}
}

// LabeledRecord is a TokenRecord with display labels alongside its codes
type LabeledRecord struct {
	Record TokenRecord
	Labels Labels
}
