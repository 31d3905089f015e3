package repository

import (
	"context"

	"github.com/yolapp/yol-backend/internal/domain"
)

// Yol defines the interface for companion persistence
type Yol interface {
	CreateYol(ctx context.Context, yol *domain.Yol) (*domain.Yol, error)
	GetYolByID(ctx context.Context, yolID int) (*domain.Yol, error)
	GetYolByUserID(ctx context.Context, userID int) (*domain.Yol, error)
	UpdateYolName(ctx context.Context, yolID int, name string) error
}
