package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yolapp/yol-backend/internal/domain"
)

// SpeciesRepository implements the species repository for PostgreSQL
type SpeciesRepository struct {
	db *pgxpool.Pool
}

// NewSpeciesRepository creates a new SpeciesRepository
func NewSpeciesRepository(db *pgxpool.Pool) *SpeciesRepository {
	return &SpeciesRepository{db: db}
}

// ListSpecies returns all species rows ordered by name then stage
func (r *SpeciesRepository) ListSpecies(ctx context.Context) ([]domain.Species, error) {
	query := `SELECT id, name, stage FROM species ORDER BY name, id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list species: %w", err)
	}
	defer rows.Close()

	var species []domain.Species
	for rows.Next() {
		var s domain.Species
		if err := rows.Scan(&s.ID, &s.Name, &s.Stage); err != nil {
			return nil, fmt.Errorf("failed to scan species: %w", err)
		}
		species = append(species, s)
	}
	return species, rows.Err()
}

// GetSpeciesByID finds a species by primary key
func (r *SpeciesRepository) GetSpeciesByID(ctx context.Context, speciesID int) (*domain.Species, error) {
	var s domain.Species
	query := `SELECT id, name, stage FROM species WHERE id = $1`
	err := r.db.QueryRow(ctx, query, speciesID).Scan(&s.ID, &s.Name, &s.Stage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSpeciesNotFound
		}
		return nil, fmt.Errorf("failed to get species: %w", err)
	}
	return &s, nil
}

// GetSpeciesByNameAndStage resolves one link of an evolution chain
func (r *SpeciesRepository) GetSpeciesByNameAndStage(ctx context.Context, name string, stage domain.Stage) (*domain.Species, error) {
	var s domain.Species
	query := `SELECT id, name, stage FROM species WHERE name = $1 AND stage = $2`
	err := r.db.QueryRow(ctx, query, name, stage).Scan(&s.ID, &s.Name, &s.Stage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSpeciesNotFound
		}
		return nil, fmt.Errorf("failed to get species: %w", err)
	}
	return &s, nil
}

// UpsertSpecies inserts a species row keyed by (name, stage)
func (r *SpeciesRepository) UpsertSpecies(ctx context.Context, species domain.Species) error {
	query := `
		INSERT INTO species (name, stage)
		VALUES ($1, $2)
		ON CONFLICT (name, stage) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, species.Name, species.Stage); err != nil {
		return fmt.Errorf("failed to upsert species: %w", err)
	}
	return nil
}
