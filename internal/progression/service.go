package progression

import (
	"context"
	"fmt"
	"time"

	"github.com/yolapp/yol-backend/internal/domain"
	"github.com/yolapp/yol-backend/internal/logger"
	"github.com/yolapp/yol-backend/internal/metrics"
	"github.com/yolapp/yol-backend/internal/repository"
)

// Service is the progression engine: task completion and success claiming.
// Every operation that touches more than one row runs in a single
// transaction, so XP, counters and completion flags never drift apart.
type Service interface {
	// CompleteDailyTask marks a daily task done, awards its template XP to
	// the user's yol and bumps the linked and cross-cutting success counters.
	// All operations act on behalf of userID; resources owned by anyone else
	// are reported as not found.
	CompleteDailyTask(ctx context.Context, userID, userTaskID, yolID int) (*domain.UserTask, error)
	// CompleteCustomTask marks a custom task done. The first custom
	// completion ever bumps the self-ruling counter.
	CompleteCustomTask(ctx context.Context, userID, userTaskID int) (*domain.UserTask, error)
	// ValidateSuccess is the claim step: if the counter reached the required
	// amount the success completes and its reward XP goes to the yol.
	ValidateSuccess(ctx context.Context, userID, userSuccessID, yolID int) (*domain.UserSuccess, error)
}

type service struct {
	txStarter repository.TxStarter
}

// NewService creates the progression engine
func NewService(txStarter repository.TxStarter) Service {
	return &service{txStarter: txStarter}
}

func (s *service) CompleteDailyTask(ctx context.Context, userID, userTaskID, yolID int) (*domain.UserTask, error) {
	log := logger.FromContext(ctx)

	tx, err := s.txStarter.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	task, err := tx.GetUserTaskForUpdate(ctx, userTaskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	if !task.IsDaily {
		return nil, fmt.Errorf("%w: task %d is not a daily task", domain.ErrWrongTaskType, userTaskID)
	}
	if task.IsCompleted {
		return nil, domain.ErrAlreadyCompleted
	}
	if task.DailyTask == nil {
		return nil, fmt.Errorf("%w: daily task %d has no catalog template", domain.ErrIntegrity, userTaskID)
	}

	yol, err := tx.GetYolForUpdate(ctx, yolID)
	if err != nil {
		return nil, err
	}
	if yol.UserID != task.UserID {
		return nil, fmt.Errorf("%w: yol %d does not belong to user %d", domain.ErrInvalidInput, yolID, task.UserID)
	}

	now := time.Now()
	if err := tx.CompleteUserTask(ctx, userTaskID, now); err != nil {
		return nil, err
	}
	if err := tx.AddYolXP(ctx, yolID, task.DailyTask.XP); err != nil {
		return nil, err
	}

	// Template-linked success counter; a missing row is a data integrity
	// problem we want to hear about, not paper over. Quest master only counts
	// linked dailies, so unlinked templates bump neither counter.
	if task.DailyTask.SuccessID != nil {
		if err := tx.IncrementUserSuccess(ctx, task.UserID, *task.DailyTask.SuccessID, 1); err != nil {
			log.Error("Linked success increment failed",
				"user_id", task.UserID, "success_id", *task.DailyTask.SuccessID, "error", err)
			return nil, err
		}
		if err := s.incrementByKey(ctx, tx, task.UserID, domain.SuccessKeyQuestMaster, 1); err != nil {
			return nil, err
		}
	}

	// Perfectionist counts full daily sets: bump it when this completion is
	// the day's last one
	completed, err := tx.CountCompletedDailyTasks(ctx, task.UserID, startOfDay(now))
	if err != nil {
		return nil, err
	}
	if completed >= domain.DailyTaskCount {
		if err := s.incrementByKey(ctx, tx, task.UserID, domain.SuccessKeyPerfectionist, 1); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.TasksCompleted.WithLabelValues("daily").Inc()
	metrics.XPAwarded.Add(float64(task.DailyTask.XP))
	log.Info("Daily task completed", "user_task_id", userTaskID, "user_id", task.UserID, "xp", task.DailyTask.XP)

	task.IsCompleted = true
	task.CompletedAt = &now
	return task, nil
}

func (s *service) CompleteCustomTask(ctx context.Context, userID, userTaskID int) (*domain.UserTask, error) {
	log := logger.FromContext(ctx)

	tx, err := s.txStarter.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	task, err := tx.GetUserTaskForUpdate(ctx, userTaskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	if task.IsDaily {
		return nil, fmt.Errorf("%w: task %d is a daily task", domain.ErrWrongTaskType, userTaskID)
	}
	if task.IsCompleted {
		return nil, domain.ErrAlreadyCompleted
	}

	now := time.Now()
	if err := tx.CompleteUserTask(ctx, userTaskID, now); err != nil {
		return nil, err
	}

	// Self-ruling rewards the first custom completion ever; the count
	// includes the row completed above
	completed, err := tx.CountCompletedCustomTasks(ctx, task.UserID)
	if err != nil {
		return nil, err
	}
	if completed == 1 {
		if err := s.incrementByKey(ctx, tx, task.UserID, domain.SuccessKeySelfRuling, 1); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.TasksCompleted.WithLabelValues("custom").Inc()
	log.Info("Custom task completed", "user_task_id", userTaskID, "user_id", task.UserID)

	task.IsCompleted = true
	task.CompletedAt = &now
	return task, nil
}

func (s *service) ValidateSuccess(ctx context.Context, userID, userSuccessID, yolID int) (*domain.UserSuccess, error) {
	log := logger.FromContext(ctx)

	tx, err := s.txStarter.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	us, err := tx.GetUserSuccessForUpdate(ctx, userSuccessID)
	if err != nil {
		return nil, err
	}
	if us.UserID != userID {
		return nil, domain.ErrUserSuccessNotFound
	}
	if us.IsCompleted {
		return nil, domain.ErrSuccessCompleted
	}

	success, err := tx.GetSuccessByID(ctx, us.SuccessID)
	if err != nil {
		return nil, err
	}
	if us.ActualAmount < success.AmountNeeded {
		return nil, fmt.Errorf("%w: %d of %d", domain.ErrAmountNotReached, us.ActualAmount, success.AmountNeeded)
	}

	yol, err := tx.GetYolForUpdate(ctx, yolID)
	if err != nil {
		return nil, err
	}
	if yol.UserID != us.UserID {
		return nil, fmt.Errorf("%w: yol %d does not belong to user %d", domain.ErrInvalidInput, yolID, us.UserID)
	}

	if err := tx.CompleteUserSuccess(ctx, us.UserID, us.SuccessID); err != nil {
		return nil, err
	}
	if err := tx.AddYolXP(ctx, yolID, success.SuccessXP); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.SuccessesUnlocked.Inc()
	metrics.XPAwarded.Add(float64(success.SuccessXP))
	log.Info("Success validated", "user_success_id", userSuccessID, "key", success.Key, "xp", success.SuccessXP)

	us.IsCompleted = true
	us.Success = success
	return us, nil
}

// incrementByKey bumps a cross-cutting success counter addressed by its
// symbolic key
func (s *service) incrementByKey(ctx context.Context, tx repository.Tx, userID int, key string, amount int) error {
	success, err := tx.GetSuccessByKey(ctx, key)
	if err != nil {
		return fmt.Errorf("%w: success definition %q missing", domain.ErrIntegrity, key)
	}
	return tx.IncrementUserSuccess(ctx, userID, success.ID, amount)
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
