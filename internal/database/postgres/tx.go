package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yolapp/yol-backend/internal/domain"
	"github.com/yolapp/yol-backend/internal/repository"
)

// TxManager starts transactions spanning tasks, successes and yols
type TxManager struct {
	db *pgxpool.Pool
}

// NewTxManager creates a new TxManager
func NewTxManager(db *pgxpool.Pool) *TxManager {
	return &TxManager{db: db}
}

// BeginTx starts a transaction
func (m *TxManager) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &Tx{tx: tx}, nil
}

// Tx implements repository.Tx over a pgx transaction
type Tx struct {
	tx pgx.Tx
}

// GetUserTaskForUpdate locks and returns a task instance with its catalog template
func (t *Tx) GetUserTaskForUpdate(ctx context.Context, userTaskID int) (*domain.UserTask, error) {
	// Lock the task row first; the join below is read-only reference data
	query := `SELECT id FROM user_tasks WHERE id = $1 FOR UPDATE`
	var id int
	if err := t.tx.QueryRow(ctx, query, userTaskID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserTasks, err)
	}

	fullQuery := `
		SELECT ` + userTaskColumns + `,
		       dt.id, dt.title, dt.image, dt.category, dt.difficulty, dt.xp, dt.success_id
		FROM user_tasks ut
		LEFT JOIN daily_tasks dt ON dt.id = ut.daily_task_id
		WHERE ut.id = $1
	`
	rows, err := t.tx.Query(ctx, fullQuery, userTaskID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserTasks, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserTasks, err)
		}
		return nil, domain.ErrTaskNotFound
	}
	return scanUserTaskRow(rows)
}

// CompleteUserTask marks a task instance completed
func (t *Tx) CompleteUserTask(ctx context.Context, userTaskID int, completedAt time.Time) error {
	query := `UPDATE user_tasks SET is_completed = TRUE, completed_at = $1 WHERE id = $2`
	tag, err := t.tx.Exec(ctx, query, completedAt, userTaskID)
	if err != nil {
		return fmt.Errorf("failed to complete user task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// CountCompletedDailyTasks counts daily completions in [dayStart, dayStart+24h)
func (t *Tx) CountCompletedDailyTasks(ctx context.Context, userID int, dayStart time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM user_tasks
		WHERE user_id = $1 AND is_daily AND is_completed
		  AND completed_at >= $2 AND completed_at < $3
	`
	var count int
	err := t.tx.QueryRow(ctx, query, userID, dayStart, dayStart.Add(24*time.Hour)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count completed daily tasks: %w", err)
	}
	return count, nil
}

// CountCompletedCustomTasks counts the user's completed custom tasks all-time
func (t *Tx) CountCompletedCustomTasks(ctx context.Context, userID int) (int, error) {
	query := `
		SELECT COUNT(*) FROM user_tasks
		WHERE user_id = $1 AND NOT is_daily AND is_completed
	`
	var count int
	if err := t.tx.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count completed custom tasks: %w", err)
	}
	return count, nil
}

// GetSuccessByID finds a success definition by primary key
func (t *Tx) GetSuccessByID(ctx context.Context, successID int) (*domain.Success, error) {
	query := `SELECT ` + successColumns + ` FROM successes WHERE id = $1`
	return scanSuccess(t.tx.QueryRow(ctx, query, successID))
}

// GetSuccessByKey finds a success definition by symbolic key
func (t *Tx) GetSuccessByKey(ctx context.Context, key string) (*domain.Success, error) {
	query := `SELECT ` + successColumns + ` FROM successes WHERE key = $1`
	return scanSuccess(t.tx.QueryRow(ctx, query, key))
}

const userSuccessForUpdate = `
	SELECT id, user_id, success_id, actual_amount, is_completed
	FROM user_successes
`

func scanUserSuccess(row pgx.Row) (*domain.UserSuccess, error) {
	var us domain.UserSuccess
	err := row.Scan(&us.ID, &us.UserID, &us.SuccessID, &us.ActualAmount, &us.IsCompleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserSuccessNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserSuccess, err)
	}
	return &us, nil
}

// GetUserSuccessForUpdate locks and returns a progress row by primary key
func (t *Tx) GetUserSuccessForUpdate(ctx context.Context, userSuccessID int) (*domain.UserSuccess, error) {
	return scanUserSuccess(t.tx.QueryRow(ctx, userSuccessForUpdate+` WHERE id = $1 FOR UPDATE`, userSuccessID))
}

// GetUserSuccessBySuccessID locks and returns a progress row by (user, success)
func (t *Tx) GetUserSuccessBySuccessID(ctx context.Context, userID, successID int) (*domain.UserSuccess, error) {
	return scanUserSuccess(t.tx.QueryRow(ctx,
		userSuccessForUpdate+` WHERE user_id = $1 AND success_id = $2 FOR UPDATE`, userID, successID))
}

// IncrementUserSuccess bumps a progress counter. Completed rows are left
// untouched so counters freeze at claim time.
func (t *Tx) IncrementUserSuccess(ctx context.Context, userID, successID, amount int) error {
	query := `
		UPDATE user_successes
		SET actual_amount = actual_amount + $1
		WHERE user_id = $2 AND success_id = $3 AND NOT is_completed
	`
	tag, err := t.tx.Exec(ctx, query, amount, userID, successID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUserSuccess, err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a completed row from a missing one
		var exists bool
		checkErr := t.tx.QueryRow(ctx,
			`SELECT TRUE FROM user_successes WHERE user_id = $1 AND success_id = $2`,
			userID, successID).Scan(&exists)
		if checkErr == nil {
			return nil
		}
		if errors.Is(checkErr, pgx.ErrNoRows) {
			return fmt.Errorf("%w: user success row missing for user %d success %d",
				domain.ErrIntegrity, userID, successID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUserSuccess, checkErr)
	}
	return nil
}

// CompleteUserSuccess marks a progress row completed with its counter at the
// required amount
func (t *Tx) CompleteUserSuccess(ctx context.Context, userID, successID int) error {
	query := `
		UPDATE user_successes us
		SET is_completed = TRUE,
		    actual_amount = GREATEST(us.actual_amount, s.amount_needed)
		FROM successes s
		WHERE s.id = us.success_id AND us.user_id = $1 AND us.success_id = $2
	`
	tag, err := t.tx.Exec(ctx, query, userID, successID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUserSuccess, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user success row missing for user %d success %d",
			domain.ErrIntegrity, userID, successID)
	}
	return nil
}

// GetYolForUpdate locks and returns a companion with its species
func (t *Tx) GetYolForUpdate(ctx context.Context, yolID int) (*domain.Yol, error) {
	var y domain.Yol
	var s domain.Species
	query := `
		SELECT y.id, y.name, y.xp, y.user_id, y.species_id, s.id, s.name, s.stage
		FROM yols y
		JOIN species s ON s.id = y.species_id
		WHERE y.id = $1
		FOR UPDATE OF y
	`
	err := t.tx.QueryRow(ctx, query, yolID).Scan(&y.ID, &y.Name, &y.XP, &y.UserID, &y.SpeciesID, &s.ID, &s.Name, &s.Stage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrYolNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetYol, err)
	}
	y.Species = &s
	return &y, nil
}

// AddYolXP increments a companion's XP
func (t *Tx) AddYolXP(ctx context.Context, yolID, amount int) error {
	tag, err := t.tx.Exec(ctx, `UPDATE yols SET xp = xp + $1 WHERE id = $2`, amount, yolID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateYol, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrYolNotFound
	}
	return nil
}

// UpdateYolSpecies moves a companion to its next evolution row
func (t *Tx) UpdateYolSpecies(ctx context.Context, yolID, speciesID int) error {
	tag, err := t.tx.Exec(ctx, `UPDATE yols SET species_id = $1 WHERE id = $2`, speciesID, yolID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateYol, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrYolNotFound
	}
	return nil
}

// GetSpeciesByNameAndStage resolves one link of an evolution chain
func (t *Tx) GetSpeciesByNameAndStage(ctx context.Context, name string, stage domain.Stage) (*domain.Species, error) {
	var s domain.Species
	query := `SELECT id, name, stage FROM species WHERE name = $1 AND stage = $2`
	err := t.tx.QueryRow(ctx, query, name, stage).Scan(&s.ID, &s.Name, &s.Stage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSpeciesNotFound
		}
		return nil, fmt.Errorf("failed to get species: %w", err)
	}
	return &s, nil
}

// Commit commits the transaction
func (t *Tx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *Tx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
