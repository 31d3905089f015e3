package domain

// SuccessType categorizes achievement definitions.
type SuccessType string

const (
	// SuccessTypeDaily counts repeated completions of a linked daily task.
	SuccessTypeDaily SuccessType = "Daily"
	// SuccessTypeUnique is a one-off cross-cutting achievement.
	SuccessTypeUnique SuccessType = "Unique"
	// SuccessTypeYol tracks companion milestones (hatching, evolutions, bond levels).
	SuccessTypeYol SuccessType = "Yol"
)

// Success is an achievement definition, created once by the seed. The Key is
// a stable symbolic identifier; cross-cutting achievements are always looked
// up by key, never by numeric id.
type Success struct {
	ID           int         `json:"id"`
	Key          string      `json:"key"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Image        string      `json:"image,omitempty"`
	AmountNeeded int         `json:"amount_needed"`
	SuccessXP    int         `json:"success_xp"`
	Type         SuccessType `json:"type"`
}

// UserSuccess is a user's progress toward one Success definition. One row
// exists per (user, success) pair from signup onward; ActualAmount never
// decreases and IsCompleted flips to true exactly once.
type UserSuccess struct {
	ID           int      `json:"id"`
	UserID       int      `json:"user_id"`
	SuccessID    int      `json:"success_id"`
	ActualAmount int      `json:"actual_amount"`
	IsCompleted  bool     `json:"is_completed"`
	Success      *Success `json:"success,omitempty"`
}
