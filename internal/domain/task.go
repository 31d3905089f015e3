package domain

import "time"

// DailyTask is a catalog entry for a possible daily chore. Exactly
// DailyTaskCount rows are active at a time; the active subset is the day's
// menu from which user tasks are instantiated.
type DailyTask struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Image          string     `json:"image,omitempty"`
	Category       string     `json:"category"`
	Difficulty     int        `json:"difficulty"`
	XP             int        `json:"xp"`
	SuccessID      *int       `json:"success_id,omitempty"`
	IsActive       bool       `json:"is_active"`
	LastAssignDate *time.Time `json:"last_assign_date,omitempty"`
}

// UserTask is a task instance assigned to a user: either a free-form custom
// task or a daily task instantiated from a DailyTask template.
type UserTask struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	IsDaily     bool       `json:"is_daily"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
	UserID      int        `json:"user_id"`
	DailyTaskID *int       `json:"daily_task_id,omitempty"`
	DailyTask   *DailyTask `json:"daily_task,omitempty"`
}

// UserTaskList groups a user's tasks by kind for API responses.
type UserTaskList struct {
	CustomTasks []UserTask `json:"custom_tasks"`
	DailyTasks  []UserTask `json:"daily_tasks"`
}
