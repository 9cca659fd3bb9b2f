package terrain

// Family groups tags by the kind of land they depict.
type Family int

const (
	FamilyBlank Family = iota
	FamilyPlains
	FamilyDesert
	FamilyAquatic
	FamilyMountain
	FamilyForest
	FamilySwamp
	FamilyArctic
)

func (f Family) String() string {
	switch f {
	case FamilyPlains:
		return "plains"
	case FamilyDesert:
		return "desert"
	case FamilyAquatic:
		return "aquatic"
	case FamilyMountain:
		return "mountain"
	case FamilyForest:
		return "forest"
	case FamilySwamp:
		return "swamp"
	case FamilyArctic:
		return "arctic"
	default:
		return "blank"
	}
}

// Family returns the family a tag belongs to.
func (t Tag) Family() Family {
	switch t {
	case BaseLush, PlainsLush, HillsLush:
		return FamilyPlains
	case PlainsDesert, HillsDesert:
		return FamilyDesert
	case BaseOcean, OceanWaves:
		return FamilyAquatic
	case MountainPeakRocky, MountainPeakLush, MountainPeakSnowy, MountainMediumRocky,
		MountainLowRocky, MountainFoothillsRocky, MountainLush, MountainSnowy:
		return FamilyMountain
	case ForestLush, ForestSnowy:
		return FamilyForest
	case SwampStill, WetlandsDamp:
		return FamilySwamp
	case BaseSnowy, SnowField, HillsSnowy:
		return FamilyArctic
	default:
		return FamilyBlank
	}
}
