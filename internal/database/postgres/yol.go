package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yolapp/yol-backend/internal/domain"
)

// YolRepository implements the yol repository for PostgreSQL
type YolRepository struct {
	db *pgxpool.Pool
}

// NewYolRepository creates a new YolRepository
func NewYolRepository(db *pgxpool.Pool) *YolRepository {
	return &YolRepository{db: db}
}

const yolSelect = `
	SELECT y.id, y.name, y.xp, y.user_id, y.species_id, s.id, s.name, s.stage
	FROM yols y
	JOIN species s ON s.id = y.species_id
`

func scanYol(row pgx.Row) (*domain.Yol, error) {
	var y domain.Yol
	var s domain.Species
	err := row.Scan(&y.ID, &y.Name, &y.XP, &y.UserID, &y.SpeciesID, &s.ID, &s.Name, &s.Stage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrYolNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetYol, err)
	}
	y.Species = &s
	return &y, nil
}

// CreateYol inserts a companion; the unique index enforces one per user
func (r *YolRepository) CreateYol(ctx context.Context, yol *domain.Yol) (*domain.Yol, error) {
	query := `
		INSERT INTO yols (name, xp, user_id, species_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, yol.Name, yol.XP, yol.UserID, yol.SpeciesID).Scan(&yol.ID)
	if err != nil {
		if isUniqueViolation(err, "yols_user_id_key") {
			return nil, fmt.Errorf("%w: user already has a yol", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertYol, err)
	}
	return yol, nil
}

// GetYolByID finds a companion by primary key, with its species
func (r *YolRepository) GetYolByID(ctx context.Context, yolID int) (*domain.Yol, error) {
	return scanYol(r.db.QueryRow(ctx, yolSelect+` WHERE y.id = $1`, yolID))
}

// GetYolByUserID finds a user's companion, with its species
func (r *YolRepository) GetYolByUserID(ctx context.Context, userID int) (*domain.Yol, error) {
	return scanYol(r.db.QueryRow(ctx, yolSelect+` WHERE y.user_id = $1`, userID))
}

// UpdateYolName renames a companion
func (r *YolRepository) UpdateYolName(ctx context.Context, yolID int, name string) error {
	tag, err := r.db.Exec(ctx, `UPDATE yols SET name = $1 WHERE id = $2`, name, yolID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateYol, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrYolNotFound
	}
	return nil
}
