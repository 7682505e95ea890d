package ipc

// Contract versions. The version only namespaces stored snapshots.
const (
	ContractV0 = "v0"
	ContractV1 = "v1"

	DefaultContract = ContractV1
)

// Contracts lists every known contract version
var Contracts = []string{ContractV0, ContractV1}

// Sequence lengths produced by the decoders
const (
	PhysicalTraitCount = 8
	AttributeCount     = 13
)

// Physical trait indexes
const (
	TraitRace = iota
	TraitSubrace
	TraitGender
	TraitHeight
	TraitHandedness
	TraitSkinColor
	TraitHairColor
	TraitEyeColor
)

// Raw attribute indexes. Each composite stat owns three consecutive bytes.
const (
	AttrForce = iota
	AttrSustain
	AttrTolerance
	AttrSpeed
	AttrPrecision
	AttrReaction
	AttrMemory
	AttrProcessing
	AttrReasoning
	AttrHealing
	AttrFortitude
	AttrVitality
	AttrLuck
)

// Composite stat group starts
const (
	GroupStrength     = AttrForce
	GroupDexterity    = AttrSpeed
	GroupIntelligence = AttrMemory
	GroupConstitution = AttrHealing
)

// Category names a family of trait codes for label resolution
type Category string

// Label categories
const (
	CategoryRace       Category = "race"
	CategorySubrace    Category = "subrace"
	CategoryGender     Category = "gender"
	CategoryHeight     Category = "height"
	CategoryHandedness Category = "handedness"
	CategorySkinColor  Category = "skin_color"
	CategoryHairColor  Category = "hair_color"
	CategoryEyeColor   Category = "eye_color"
)

// TraitCategories maps each physical trait index to its label category
var TraitCategories = [PhysicalTraitCount]Category{
	TraitRace:       CategoryRace,
	TraitSubrace:    CategorySubrace,
	TraitGender:     CategoryGender,
	TraitHeight:     CategoryHeight,
	TraitHandedness: CategoryHandedness,
	TraitSkinColor:  CategorySkinColor,
	TraitHairColor:  CategoryHairColor,
	TraitEyeColor:   CategoryEyeColor,
}

// EntityType is reported by TokenRecord.GetType
const EntityType = "ipc"
