package repository

import (
	"context"

	"github.com/yolapp/yol-backend/internal/domain"
)

// Success defines the interface for success definitions and per-user progress
type Success interface {
	ListSuccesses(ctx context.Context) ([]domain.Success, error)
	GetSuccessByID(ctx context.Context, successID int) (*domain.Success, error)
	GetSuccessByKey(ctx context.Context, key string) (*domain.Success, error)
	// UpsertSuccess is used by the seed tool; the symbolic key is the natural key.
	UpsertSuccess(ctx context.Context, success domain.Success) error

	GetUserSuccesses(ctx context.Context, userID int) ([]domain.UserSuccess, error)
	GetUserSuccessByID(ctx context.Context, userSuccessID int) (*domain.UserSuccess, error)
}
