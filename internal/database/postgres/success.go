package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yolapp/yol-backend/internal/domain"
)

// SuccessRepository implements the success repository for PostgreSQL
type SuccessRepository struct {
	db *pgxpool.Pool
}

// NewSuccessRepository creates a new SuccessRepository
func NewSuccessRepository(db *pgxpool.Pool) *SuccessRepository {
	return &SuccessRepository{db: db}
}

const successColumns = `id, key, title, description, image, amount_needed, success_xp, type`

func scanSuccess(row pgx.Row) (*domain.Success, error) {
	var s domain.Success
	err := row.Scan(&s.ID, &s.Key, &s.Title, &s.Description, &s.Image, &s.AmountNeeded, &s.SuccessXP, &s.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSuccessNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSuccess, err)
	}
	return &s, nil
}

// ListSuccesses returns all success definitions
func (r *SuccessRepository) ListSuccesses(ctx context.Context) ([]domain.Success, error) {
	query := `SELECT ` + successColumns + ` FROM successes ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list successes: %w", err)
	}
	defer rows.Close()

	var successes []domain.Success
	for rows.Next() {
		var s domain.Success
		if err := rows.Scan(&s.ID, &s.Key, &s.Title, &s.Description, &s.Image, &s.AmountNeeded, &s.SuccessXP, &s.Type); err != nil {
			return nil, fmt.Errorf("failed to scan success: %w", err)
		}
		successes = append(successes, s)
	}
	return successes, rows.Err()
}

// GetSuccessByID finds a success definition by primary key
func (r *SuccessRepository) GetSuccessByID(ctx context.Context, successID int) (*domain.Success, error) {
	query := `SELECT ` + successColumns + ` FROM successes WHERE id = $1`
	return scanSuccess(r.db.QueryRow(ctx, query, successID))
}

// GetSuccessByKey finds a success definition by symbolic key
func (r *SuccessRepository) GetSuccessByKey(ctx context.Context, key string) (*domain.Success, error) {
	query := `SELECT ` + successColumns + ` FROM successes WHERE key = $1`
	return scanSuccess(r.db.QueryRow(ctx, query, key))
}

// UpsertSuccess inserts or updates a success definition keyed by symbolic key
func (r *SuccessRepository) UpsertSuccess(ctx context.Context, success domain.Success) error {
	query := `
		INSERT INTO successes (key, title, description, image, amount_needed, success_xp, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (key) DO UPDATE
		SET title = EXCLUDED.title,
		    description = EXCLUDED.description,
		    image = EXCLUDED.image,
		    amount_needed = EXCLUDED.amount_needed,
		    success_xp = EXCLUDED.success_xp,
		    type = EXCLUDED.type
	`
	_, err := r.db.Exec(ctx, query,
		success.Key, success.Title, success.Description, success.Image,
		success.AmountNeeded, success.SuccessXP, success.Type,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert success: %w", err)
	}
	return nil
}

// GetUserSuccesses returns the user's progress rows joined with definitions
func (r *SuccessRepository) GetUserSuccesses(ctx context.Context, userID int) ([]domain.UserSuccess, error) {
	query := `
		SELECT us.id, us.user_id, us.success_id, us.actual_amount, us.is_completed,
		       s.id, s.key, s.title, s.description, s.image, s.amount_needed, s.success_xp, s.type
		FROM user_successes us
		JOIN successes s ON s.id = us.success_id
		WHERE us.user_id = $1
		ORDER BY s.id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserSuccess, err)
	}
	defer rows.Close()

	var result []domain.UserSuccess
	for rows.Next() {
		var us domain.UserSuccess
		var s domain.Success
		err := rows.Scan(
			&us.ID, &us.UserID, &us.SuccessID, &us.ActualAmount, &us.IsCompleted,
			&s.ID, &s.Key, &s.Title, &s.Description, &s.Image, &s.AmountNeeded, &s.SuccessXP, &s.Type,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user success: %w", err)
		}
		us.Success = &s
		result = append(result, us)
	}
	return result, rows.Err()
}

// GetUserSuccessByID finds a user's progress row with its definition
func (r *SuccessRepository) GetUserSuccessByID(ctx context.Context, userSuccessID int) (*domain.UserSuccess, error) {
	query := `
		SELECT us.id, us.user_id, us.success_id, us.actual_amount, us.is_completed,
		       s.id, s.key, s.title, s.description, s.image, s.amount_needed, s.success_xp, s.type
		FROM user_successes us
		JOIN successes s ON s.id = us.success_id
		WHERE us.id = $1
	`
	var us domain.UserSuccess
	var s domain.Success
	err := r.db.QueryRow(ctx, query, userSuccessID).Scan(
		&us.ID, &us.UserID, &us.SuccessID, &us.ActualAmount, &us.IsCompleted,
		&s.ID, &s.Key, &s.Title, &s.Description, &s.Image, &s.AmountNeeded, &s.SuccessXP, &s.Type,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserSuccessNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserSuccess, err)
	}
	us.Success = &s
	return &us, nil
}
