package repository

import (
	"context"

	"github.com/yolapp/yol-backend/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	// CreateUserWithSuccesses atomically inserts the user and one progress row
	// per success definition. The returned user carries the generated id.
	CreateUserWithSuccesses(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
	// DeleteUser removes the user row; dependent rows (yol, tasks, success
	// progress) go with it via foreign-key cascade.
	DeleteUser(ctx context.Context, userID int) error
}
