package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yolapp/yol-backend/internal/domain"
)

// TaskRepository implements the task repository for PostgreSQL. It covers
// both the daily-task catalog and per-user task instances.
type TaskRepository struct {
	db *pgxpool.Pool
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

const dailyTaskColumns = `id, title, image, category, difficulty, xp, success_id, is_active, last_assign_date`

func scanDailyTask(row pgx.Row) (*domain.DailyTask, error) {
	var t domain.DailyTask
	var successID pgtype.Int4
	var lastAssign pgtype.Timestamptz
	err := row.Scan(&t.ID, &t.Title, &t.Image, &t.Category, &t.Difficulty, &t.XP, &successID, &t.IsActive, &lastAssign)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDailyTasks, err)
	}
	t.SuccessID = ptrInt(successID)
	t.LastAssignDate = ptrTime(lastAssign)
	return &t, nil
}

func (r *TaskRepository) queryDailyTasks(ctx context.Context, query string, args ...any) ([]domain.DailyTask, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDailyTasks, err)
	}
	defer rows.Close()

	var tasks []domain.DailyTask
	for rows.Next() {
		var t domain.DailyTask
		var successID pgtype.Int4
		var lastAssign pgtype.Timestamptz
		if err := rows.Scan(&t.ID, &t.Title, &t.Image, &t.Category, &t.Difficulty, &t.XP, &successID, &t.IsActive, &lastAssign); err != nil {
			return nil, fmt.Errorf("failed to scan daily task: %w", err)
		}
		t.SuccessID = ptrInt(successID)
		t.LastAssignDate = ptrTime(lastAssign)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ListDailyTasks returns the whole catalog
func (r *TaskRepository) ListDailyTasks(ctx context.Context) ([]domain.DailyTask, error) {
	return r.queryDailyTasks(ctx, `SELECT `+dailyTaskColumns+` FROM daily_tasks ORDER BY id`)
}

// GetActiveDailyTasks returns today's active subset of the catalog
func (r *TaskRepository) GetActiveDailyTasks(ctx context.Context) ([]domain.DailyTask, error) {
	return r.queryDailyTasks(ctx, `SELECT `+dailyTaskColumns+` FROM daily_tasks WHERE is_active ORDER BY id`)
}

// GetDailyTaskByID finds a catalog entry by primary key
func (r *TaskRepository) GetDailyTaskByID(ctx context.Context, dailyTaskID int) (*domain.DailyTask, error) {
	query := `SELECT ` + dailyTaskColumns + ` FROM daily_tasks WHERE id = $1`
	return scanDailyTask(r.db.QueryRow(ctx, query, dailyTaskID))
}

// DeactivateAllDailyTasks clears the active flag across the catalog
func (r *TaskRepository) DeactivateAllDailyTasks(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `UPDATE daily_tasks SET is_active = FALSE WHERE is_active`); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeactivateTasks, err)
	}
	return nil
}

// ActivateDailyTasks marks the given catalog rows active and stamps their assignment date
func (r *TaskRepository) ActivateDailyTasks(ctx context.Context, dailyTaskIDs []int, assignDate time.Time) error {
	query := `UPDATE daily_tasks SET is_active = TRUE, last_assign_date = $1 WHERE id = ANY($2)`
	if _, err := r.db.Exec(ctx, query, assignDate, dailyTaskIDs); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToActivateTasks, err)
	}
	return nil
}

// UpsertDailyTask inserts or updates a catalog entry keyed by title
func (r *TaskRepository) UpsertDailyTask(ctx context.Context, task domain.DailyTask) error {
	query := `
		INSERT INTO daily_tasks (title, image, category, difficulty, xp, success_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (title) DO UPDATE
		SET image = EXCLUDED.image,
		    category = EXCLUDED.category,
		    difficulty = EXCLUDED.difficulty,
		    xp = EXCLUDED.xp,
		    success_id = EXCLUDED.success_id
	`
	var successID any
	if task.SuccessID != nil {
		successID = *task.SuccessID
	}
	_, err := r.db.Exec(ctx, query, task.Title, task.Image, task.Category, task.Difficulty, task.XP, successID)
	if err != nil {
		return fmt.Errorf("failed to upsert daily task: %w", err)
	}
	return nil
}

// CreateUserTask inserts a task instance for a user
func (r *TaskRepository) CreateUserTask(ctx context.Context, task *domain.UserTask) (*domain.UserTask, error) {
	query := `
		INSERT INTO user_tasks (title, is_daily, user_id, daily_task_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	var dailyTaskID any
	if task.DailyTaskID != nil {
		dailyTaskID = *task.DailyTaskID
	}
	err := r.db.QueryRow(ctx, query, task.Title, task.IsDaily, task.UserID, dailyTaskID).
		Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertUserTask, err)
	}
	return task, nil
}

const userTaskColumns = `ut.id, ut.title, ut.is_daily, ut.is_completed, ut.completed_at,
	ut.created_at, ut.archived_at, ut.user_id, ut.daily_task_id`

func scanUserTaskRow(rows pgx.Rows) (*domain.UserTask, error) {
	var t domain.UserTask
	var completedAt, archivedAt pgtype.Timestamptz
	var dailyTaskID pgtype.Int4
	var dtID pgtype.Int4
	var dtTitle, dtImage, dtCategory pgtype.Text
	var dtDifficulty, dtXP, dtSuccessID pgtype.Int4

	err := rows.Scan(
		&t.ID, &t.Title, &t.IsDaily, &t.IsCompleted, &completedAt,
		&t.CreatedAt, &archivedAt, &t.UserID, &dailyTaskID,
		&dtID, &dtTitle, &dtImage, &dtCategory, &dtDifficulty, &dtXP, &dtSuccessID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan user task: %w", err)
	}
	t.CompletedAt = ptrTime(completedAt)
	t.ArchivedAt = ptrTime(archivedAt)
	t.DailyTaskID = ptrInt(dailyTaskID)
	if dtID.Valid {
		t.DailyTask = &domain.DailyTask{
			ID:         int(dtID.Int32),
			Title:      dtTitle.String,
			Image:      dtImage.String,
			Category:   dtCategory.String,
			Difficulty: int(dtDifficulty.Int32),
			XP:         int(dtXP.Int32),
			SuccessID:  ptrInt(dtSuccessID),
		}
	}
	return &t, nil
}

// GetUserTaskByID finds a task instance by primary key, with its catalog
// template when it is a daily task
func (r *TaskRepository) GetUserTaskByID(ctx context.Context, userTaskID int) (*domain.UserTask, error) {
	query := `
		SELECT ` + userTaskColumns + `,
		       dt.id, dt.title, dt.image, dt.category, dt.difficulty, dt.xp, dt.success_id
		FROM user_tasks ut
		LEFT JOIN daily_tasks dt ON dt.id = ut.daily_task_id
		WHERE ut.id = $1
	`
	rows, err := r.db.Query(ctx, query, userTaskID)
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

// GetUserTasks returns the user's unarchived tasks
func (r *TaskRepository) GetUserTasks(ctx context.Context, userID int) ([]domain.UserTask, error) {
	query := `
		SELECT ` + userTaskColumns + `,
		       dt.id, dt.title, dt.image, dt.category, dt.difficulty, dt.xp, dt.success_id
		FROM user_tasks ut
		LEFT JOIN daily_tasks dt ON dt.id = ut.daily_task_id
		WHERE ut.user_id = $1 AND ut.archived_at IS NULL
		ORDER BY ut.id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserTasks, err)
	}
	defer rows.Close()

	var tasks []domain.UserTask
	for rows.Next() {
		t, err := scanUserTaskRow(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// UpdateUserTaskTitle renames a task instance
func (r *TaskRepository) UpdateUserTaskTitle(ctx context.Context, userTaskID int, title string) error {
	tag, err := r.db.Exec(ctx, `UPDATE user_tasks SET title = $1 WHERE id = $2`, title, userTaskID)
	if err != nil {
		return fmt.Errorf("failed to update user task title: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// DeleteUserTask removes a task instance
func (r *TaskRepository) DeleteUserTask(ctx context.Context, userTaskID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_tasks WHERE id = $1`, userTaskID)
	if err != nil {
		return fmt.Errorf("failed to delete user task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// ArchiveStaleDailyTasks archives one user's incomplete daily tasks created
// before the cutoff
func (r *TaskRepository) ArchiveStaleDailyTasks(ctx context.Context, userID int, cutoff time.Time) (int64, error) {
	query := `
		UPDATE user_tasks
		SET archived_at = NOW()
		WHERE user_id = $1 AND is_daily AND NOT is_completed
		  AND archived_at IS NULL AND created_at < $2
	`
	tag, err := r.db.Exec(ctx, query, userID, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToArchiveUserTasks, err)
	}
	return tag.RowsAffected(), nil
}

// ArchiveAllStaleDailyTasks is the nightly-sweep variant covering every user
func (r *TaskRepository) ArchiveAllStaleDailyTasks(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE user_tasks
		SET archived_at = NOW()
		WHERE is_daily AND NOT is_completed
		  AND archived_at IS NULL AND created_at < $1
	`
	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToArchiveUserTasks, err)
	}
	return tag.RowsAffected(), nil
}
