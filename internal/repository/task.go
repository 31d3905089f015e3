package repository

import (
	"context"
	"time"

	"github.com/yolapp/yol-backend/internal/domain"
)

// Task defines the interface for the daily-task catalog and user task instances
type Task interface {
	// Daily-task catalog
	ListDailyTasks(ctx context.Context) ([]domain.DailyTask, error)
	GetActiveDailyTasks(ctx context.Context) ([]domain.DailyTask, error)
	GetDailyTaskByID(ctx context.Context, dailyTaskID int) (*domain.DailyTask, error)
	DeactivateAllDailyTasks(ctx context.Context) error
	// ActivateDailyTasks marks the given catalog rows active and stamps their
	// assignment date.
	ActivateDailyTasks(ctx context.Context, dailyTaskIDs []int, assignDate time.Time) error
	// UpsertDailyTask is used by the seed tool; title is the natural key.
	UpsertDailyTask(ctx context.Context, task domain.DailyTask) error

	// User task instances
	CreateUserTask(ctx context.Context, task *domain.UserTask) (*domain.UserTask, error)
	GetUserTaskByID(ctx context.Context, userTaskID int) (*domain.UserTask, error)
	// GetUserTasks returns the user's unarchived tasks, daily tasks joined
	// with their catalog template.
	GetUserTasks(ctx context.Context, userID int) ([]domain.UserTask, error)
	UpdateUserTaskTitle(ctx context.Context, userTaskID int, title string) error
	DeleteUserTask(ctx context.Context, userTaskID int) error
	// ArchiveStaleDailyTasks archives incomplete daily tasks created before
	// the cutoff. Returns the number of rows archived.
	ArchiveStaleDailyTasks(ctx context.Context, userID int, cutoff time.Time) (int64, error)
	// ArchiveAllStaleDailyTasks is the sweep variant covering every user.
	ArchiveAllStaleDailyTasks(ctx context.Context, cutoff time.Time) (int64, error)
}
