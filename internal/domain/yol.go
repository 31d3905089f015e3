package domain

// Yol is a user's companion. XP only ever increases; the species reference
// only ever moves forward along the evolution chain.
type Yol struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	XP        int      `json:"xp"`
	UserID    int      `json:"user_id"`
	SpeciesID int      `json:"species_id"`
	Species   *Species `json:"species,omitempty"`
}

// EvolutionThreshold returns the XP required to leave the given stage.
// The second return is false for the terminal stage.
func EvolutionThreshold(s Stage) (int, bool) {
	switch s {
	case StageEgg:
		return XPToHatch, true
	case StageBaby:
		return XPToAdolescent, true
	case StageAdolescent:
		return XPToFinal, true
	default:
		return 0, false
	}
}

// EvolutionSuccessKey returns the symbolic key of the success awarded when a
// yol leaves the given stage.
func EvolutionSuccessKey(s Stage) (string, bool) {
	switch s {
	case StageEgg:
		return SuccessKeyHatched, true
	case StageBaby:
		return SuccessKeyFirstEvolution, true
	case StageAdolescent:
		return SuccessKeySecondEvolution, true
	default:
		return "", false
	}
}

// BondLevel pairs an XP threshold with the success auto-completed the first
// time a yol's cumulative XP crosses it. Bond levels are an independent
// progression axis from evolution stages.
type BondLevel struct {
	XP         int
	SuccessKey string
}

// BondLevels lists the level-based auto-complete checkpoints in ascending
// order of XP.
var BondLevels = []BondLevel{
	{XP: XPBondLevelThree, SuccessKey: SuccessKeyBondLevelThree},
	{XP: XPBondLevelTen, SuccessKey: SuccessKeyBondLevelTen},
	{XP: XPBondLevelTwenty, SuccessKey: SuccessKeyBondLevelTwenty},
}
