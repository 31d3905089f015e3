package domain

// Stage is a life stage in a species' evolution chain.
type Stage string

const (
	StageEgg        Stage = "Egg"
	StageBaby       Stage = "Baby"
	StageAdolescent Stage = "Adolescent"
	StageFinal      Stage = "Final"
)

// NextStage returns the stage following s, or empty string when s is terminal
// or unknown.
func NextStage(s Stage) Stage {
	switch s {
	case StageEgg:
		return StageBaby
	case StageBaby:
		return StageAdolescent
	case StageAdolescent:
		return StageFinal
	default:
		return ""
	}
}

// Species is immutable reference data: one row per (name, stage) pair.
// The up-to-four rows sharing a name form an evolution chain.
type Species struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Stage Stage  `json:"stage"`
}
