package repository

import (
	"context"

	"github.com/yolapp/yol-backend/internal/domain"
)

// Species defines the interface for species reference data
type Species interface {
	ListSpecies(ctx context.Context) ([]domain.Species, error)
	GetSpeciesByID(ctx context.Context, speciesID int) (*domain.Species, error)
	// GetSpeciesByNameAndStage resolves one link of an evolution chain.
	GetSpeciesByNameAndStage(ctx context.Context, name string, stage domain.Stage) (*domain.Species, error)
	// UpsertSpecies is used by the seed tool; (name, stage) is the natural key.
	UpsertSpecies(ctx context.Context, species domain.Species) error
}
