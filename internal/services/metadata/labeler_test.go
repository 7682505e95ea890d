package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
	"github.com/KirkDiggler/ipc-metadata/internal/services/metadata"
	metadatamock "github.com/KirkDiggler/ipc-metadata/internal/services/metadata/mock"
)

type tableLookup map[ipc.Category]map[int]string

func (t tableLookup) Lookup(category ipc.Category, code int) (string, bool) {
	label, ok := t[category][code]
	return label, ok
}

func testRecord() *ipc.TokenRecord {
	return &ipc.TokenRecord{
		ID:         420,
		Name:       "Sardo",
		Physical:   ipc.PhysicalTraits{2, 4, 1, 3, 2, 1, 2, 99},
		Attributes: ipc.RawAttributes{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13},
		Meta:       ipc.Meta{Sprite: "420", Card: 420},
	}
}

func TestLabel_ResolvesEveryTrait(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := metadatamock.NewMockLabelLookup(ctrl)

	record := testRecord()
	for trait, category := range ipc.TraitCategories {
		lookup.EXPECT().
			Lookup(category, int(record.Physical[trait])).
			Return(string(category)+"-label", true).
			Times(1)
	}

	labeled := metadata.Label(record, lookup)

	assert.Equal(t, "race-label", labeled.Labels.Race)
	assert.Equal(t, "subrace-label", labeled.Labels.Subrace)
	assert.Equal(t, "eye_color-label", labeled.Labels.EyeColor)
	assert.Equal(t, *record, labeled.Record)
}

func TestLabel_UnknownCodeDoesNotAbort(t *testing.T) {
	lookup := tableLookup{
		ipc.CategoryRace:       {2: "Elf"},
		ipc.CategorySubrace:    {4: "Wood Elf"},
		ipc.CategoryGender:     {1: "Male"},
		ipc.CategoryHeight:     {3: "Average"},
		ipc.CategoryHandedness: {2: "Right"},
		ipc.CategorySkinColor:  {1: "Pale"},
		ipc.CategoryHairColor:  {2: "Black"},
		ipc.CategoryEyeColor:   {1: "Blue"},
	}

	record := testRecord()
	labeled := metadata.Label(record, lookup)

	assert.Equal(t, ipc.Labels{
		Race:       "Elf",
		Subrace:    "Wood Elf",
		Gender:     "Male",
		Height:     "Average",
		Handedness: "Right",
		SkinColor:  "Pale",
		HairColor:  "Black",
		EyeColor:   metadata.UnknownLabel,
	}, labeled.Labels)

	// source values are preserved untouched
	assert.Equal(t, byte(99), labeled.Record.Physical[ipc.TraitEyeColor])
	assert.Equal(t, 6, labeled.Record.Attributes.Strength())
	assert.Equal(t, ipc.Meta{Sprite: "420", Card: 420}, labeled.Record.Meta)
}

func TestLabel_DoesNotMutateInput(t *testing.T) {
	record := testRecord()
	before := *record

	labeled := metadata.Label(record, tableLookup{})
	labeled.Record.Name = "changed"

	assert.Equal(t, before, *record)
}
