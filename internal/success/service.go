package success

import (
	"context"

	"github.com/yolapp/yol-backend/internal/domain"
	"github.com/yolapp/yol-backend/internal/repository"
)

// Service defines read operations for success definitions and user progress
type Service interface {
	ListSuccesses(ctx context.Context) ([]domain.Success, error)
	GetSuccess(ctx context.Context, successID int) (*domain.Success, error)
	GetUserSuccesses(ctx context.Context, userID int) ([]domain.UserSuccess, error)
	GetUserSuccess(ctx context.Context, userSuccessID int) (*domain.UserSuccess, error)
}

type service struct {
	repo  repository.Success
	cache *definitionCache
}

// NewService creates the success read service
func NewService(repo repository.Success) Service {
	return &service{
		repo:  repo,
		cache: newDefinitionCache(),
	}
}

// ListSuccesses returns all definitions, served from cache when fresh
func (s *service) ListSuccesses(ctx context.Context) ([]domain.Success, error) {
	if cached, ok := s.cache.GetList(); ok {
		return cached, nil
	}

	successes, err := s.repo.ListSuccesses(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetList(successes)
	return successes, nil
}

// GetSuccess returns one definition, served from cache when fresh
func (s *service) GetSuccess(ctx context.Context, successID int) (*domain.Success, error) {
	if cached, ok := s.cache.GetByID(successID); ok {
		return cached, nil
	}

	success, err := s.repo.GetSuccessByID(ctx, successID)
	if err != nil {
		return nil, err
	}
	s.cache.SetByID(success)
	return success, nil
}

// GetUserSuccesses returns the user's progress rows. Progress moves with
// every task completion, so it is never cached.
func (s *service) GetUserSuccesses(ctx context.Context, userID int) ([]domain.UserSuccess, error) {
	return s.repo.GetUserSuccesses(ctx, userID)
}

// GetUserSuccess returns one progress row
func (s *service) GetUserSuccess(ctx context.Context, userSuccessID int) (*domain.UserSuccess, error) {
	return s.repo.GetUserSuccessByID(ctx, userSuccessID)
}
