package ipc

import (
	"encoding/json"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

var _ core.Entity = (*TokenRecord)(nil)

// GetID returns the token id as a string
func (r *TokenRecord) GetID() string {
	return strconv.FormatInt(r.ID, 10)
}

// GetType returns the entity type
func (r *TokenRecord) GetType() string {
	return EntityType
}

// recordJSON is the flat wire shape of a record
type recordJSON struct {
	ID            int64         `json:"id"`
	TokenID       int64         `json:"token_id"`
	Name          string        `json:"name"`
	AttributeSeed AttributeSeed `json:"attribute_seed"`
	DNA           DnaSeed       `json:"dna"`
	Birth         int64         `json:"birth"`
	XP            int64         `json:"xp"`
	Price         string        `json:"price"`
	Gold          int64         `json:"gold"`
	Owner         string        `json:"owner"`

	Race       byte `json:"race"`
	Subrace    byte `json:"subrace"`
	Gender     byte `json:"gender"`
	Height     byte `json:"height"`
	Handedness byte `json:"handedness"`
	SkinColor  byte `json:"skin_color"`
	HairColor  byte `json:"hair_color"`
	EyeColor   byte `json:"eye_color"`

	Force     byte `json:"force"`
	Sustain   byte `json:"sustain"`
	Tolerance byte `json:"tolerance"`
	Strength  int  `json:"strength"`

	Speed     byte `json:"speed"`
	Precision byte `json:"precision"`
	Reaction  byte `json:"reaction"`
	Dexterity int  `json:"dexterity"`

	Memory       byte `json:"memory"`
	Processing   byte `json:"processing"`
	Reasoning    byte `json:"reasoning"`
	Intelligence int  `json:"intelligence"`

	Healing      byte `json:"healing"`
	Fortitude    byte `json:"fortitude"`
	Vitality     byte `json:"vitality"`
	Constitution int  `json:"constitution"`

	Luck int `json:"luck"`

	Accessories int64 `json:"accessories"`
	LastUpdated int64 `json:"last_updated"`
	Meta        Meta  `json:"meta"`

	Labels *Labels `json:"labels,omitempty"`
}

func (r *TokenRecord) toJSON() recordJSON {
	p, a := r.Physical, r.Attributes
	return recordJSON{
		ID:            r.ID,
		TokenID:       r.ID,
		Name:          r.Name,
		AttributeSeed: r.AttributeSeed,
		DNA:           r.DNA,
		Birth:         r.Birth,
		XP:            r.Experience,
		Price:         r.Price,
		Gold:          r.Gold,
		Owner:         r.Owner,

		Race:       p[TraitRace],
		Subrace:    p[TraitSubrace],
		Gender:     p[TraitGender],
		Height:     p[TraitHeight],
		Handedness: p[TraitHandedness],
		SkinColor:  p[TraitSkinColor],
		HairColor:  p[TraitHairColor],
		EyeColor:   p[TraitEyeColor],

		Force:     a[AttrForce],
		Sustain:   a[AttrSustain],
		Tolerance: a[AttrTolerance],
		Strength:  a.Strength(),

		Speed:     a[AttrSpeed],
		Precision: a[AttrPrecision],
		Reaction:  a[AttrReaction],
		Dexterity: a.Dexterity(),

		Memory:       a[AttrMemory],
		Processing:   a[AttrProcessing],
		Reasoning:    a[AttrReasoning],
		Intelligence: a.Intelligence(),

		Healing:      a[AttrHealing],
		Fortitude:    a[AttrFortitude],
		Vitality:     a[AttrVitality],
		Constitution: a.Constitution(),

		Luck: a.Luck(),

		Accessories: r.Accessories,
		LastUpdated: r.LastUpdated,
		Meta:        r.Meta,
	}
}

// MarshalJSON writes the flat record with composite stats computed on the fly
func (r TokenRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toJSON())
}

// MarshalJSON writes the record followed by its labels block
func (l LabeledRecord) MarshalJSON() ([]byte, error) {
	out := l.Record.toJSON()
	labels := l.Labels
	out.Labels = &labels
	return json.Marshal(out)
}
