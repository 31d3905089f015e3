package repository

import (
	"context"
	"time"

	"github.com/yolapp/yol-backend/internal/domain"
)

// TxStarter begins transactions spanning tasks, successes and yols. The
// progression and yol services use it for their atomic multi-row updates.
type TxStarter interface {
	BeginTx(ctx context.Context) (Tx, error)
}

// Tx defines the interface for transactional operations
type Tx interface {
	// Task rows
	GetUserTaskForUpdate(ctx context.Context, userTaskID int) (*domain.UserTask, error)
	CompleteUserTask(ctx context.Context, userTaskID int, completedAt time.Time) error
	// CountCompletedDailyTasks counts the user's daily tasks completed on the
	// given day (local-day window [dayStart, dayStart+24h)).
	CountCompletedDailyTasks(ctx context.Context, userID int, dayStart time.Time) (int, error)
	CountCompletedCustomTasks(ctx context.Context, userID int) (int, error)

	// Success progress
	GetSuccessByID(ctx context.Context, successID int) (*domain.Success, error)
	GetSuccessByKey(ctx context.Context, key string) (*domain.Success, error)
	GetUserSuccessForUpdate(ctx context.Context, userSuccessID int) (*domain.UserSuccess, error)
	// GetUserSuccessBySuccessID locks the user's progress row for the given
	// success definition.
	GetUserSuccessBySuccessID(ctx context.Context, userID, successID int) (*domain.UserSuccess, error)
	IncrementUserSuccess(ctx context.Context, userID, successID, amount int) error
	CompleteUserSuccess(ctx context.Context, userID, successID int) error

	// Yol rows
	GetYolForUpdate(ctx context.Context, yolID int) (*domain.Yol, error)
	AddYolXP(ctx context.Context, yolID, amount int) error
	UpdateYolSpecies(ctx context.Context, yolID, speciesID int) error
	GetSpeciesByNameAndStage(ctx context.Context, name string, stage domain.Stage) (*domain.Species, error)

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
