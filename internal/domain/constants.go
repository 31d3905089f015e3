package domain

// Daily task pool policy.
const (
	// DailyTaskCount is the number of catalog tasks active at a time, and
	// therefore the number of daily user tasks assigned per user per day.
	DailyTaskCount = 6
)

// Evolution XP thresholds: the XP a yol needs to leave each stage.
const (
	XPToHatch      = 100
	XPToAdolescent = 700
	XPToFinal      = 1750
)

// Bond level XP thresholds: independent from evolution, these gate the
// auto-completed companion successes checked on every yol read.
const (
	XPBondLevelThree  = 250
	XPBondLevelTen    = 2700
	XPBondLevelTwenty = 10450
)

// Symbolic keys for cross-cutting success definitions. The seed guarantees
// one Success row per key; services reference achievements through these keys
// rather than numeric ids.
const (
	SuccessKeyQuestMaster     = "quest_master"     // cumulative linked daily-task completions
	SuccessKeySelfRuling      = "self_ruling"      // first completed custom task
	SuccessKeyPerfectionist   = "perfectionist"    // all daily tasks of one day completed
	SuccessKeyHatched         = "hatched"          // Egg -> Baby
	SuccessKeyFirstEvolution  = "first_evolution"  // Baby -> Adolescent
	SuccessKeySecondEvolution = "second_evolution" // Adolescent -> Final
	SuccessKeyBondLevelThree  = "bond_level_three"
	SuccessKeyBondLevelTen    = "bond_level_ten"
	SuccessKeyBondLevelTwenty = "bond_level_twenty"
)

// Profile picture policy: avatars are numbered assets.
const (
	AvatarCount      = 48
	AvatarPathFormat = "/assets/avatars/Icon%d.png"
)
