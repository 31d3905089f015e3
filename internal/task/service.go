package task

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/yolapp/yol-backend/internal/domain"
	"github.com/yolapp/yol-backend/internal/logger"
	"github.com/yolapp/yol-backend/internal/metrics"
	"github.com/yolapp/yol-backend/internal/repository"
)

// Service defines task operations: custom task CRUD, daily assignment and
// the daily pool rotation.
type Service interface {
	CreateCustomTask(ctx context.Context, userID int, title string) (*domain.UserTask, error)
	// AssignDailyTasks gives the user today's daily tasks. Idempotent per
	// user per day; triggers a pool rotation when no pool is active for
	// today; archives prior days' incomplete daily tasks.
	AssignDailyTasks(ctx context.Context, userID int) ([]domain.UserTask, error)
	GetUserTasks(ctx context.Context, userID int) (*domain.UserTaskList, error)
	// RenameTask and DeleteCustomTask act on behalf of userID; tasks owned by
	// anyone else are reported as not found.
	RenameTask(ctx context.Context, userID, userTaskID int, title string) error
	DeleteCustomTask(ctx context.Context, userID, userTaskID int) error

	// RotateDailyPool replaces the active catalog subset with a fresh random
	// one. Idempotent within a day; called by the midnight worker and lazily
	// by AssignDailyTasks.
	RotateDailyPool(ctx context.Context, now time.Time) error
	// ArchiveStale archives incomplete daily tasks older than today across
	// all users. Called by the nightly sweep.
	ArchiveStale(ctx context.Context, now time.Time) (int64, error)
}

type service struct {
	repo repository.Task
}

// NewService creates the task service
func NewService(repo repository.Task) Service {
	return &service{repo: repo}
}

// CreateCustomTask creates a free-form task for the user
func (s *service) CreateCustomTask(ctx context.Context, userID int, title string) (*domain.UserTask, error) {
	task := &domain.UserTask{
		Title:   title,
		IsDaily: false,
		UserID:  userID,
	}
	return s.repo.CreateUserTask(ctx, task)
}

// startOfDay truncates t to local midnight
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// AssignDailyTasks ensures the user has one task instance per active catalog
// entry for today. Existing instances for today are returned as-is.
func (s *service) AssignDailyTasks(ctx context.Context, userID int) ([]domain.UserTask, error) {
	log := logger.FromContext(ctx)
	today := startOfDay(time.Now())

	// Rotate lazily if no pool has been assigned for today
	active, err := s.repo.GetActiveDailyTasks(ctx)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 || active[0].LastAssignDate == nil || active[0].LastAssignDate.Before(today) {
		if err := s.RotateDailyPool(ctx, time.Now()); err != nil {
			return nil, err
		}
		if active, err = s.repo.GetActiveDailyTasks(ctx); err != nil {
			return nil, err
		}
	}

	// Yesterday's unfinished dailies leave the list before new ones arrive
	archived, err := s.repo.ArchiveStaleDailyTasks(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if archived > 0 {
		metrics.TasksArchived.Add(float64(archived))
		log.Info("Archived stale daily tasks", "user_id", userID, "count", archived)
	}

	existing, err := s.repo.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	assigned := make(map[int]bool)
	var todays []domain.UserTask
	for _, t := range existing {
		if t.IsDaily && t.DailyTaskID != nil && !t.CreatedAt.Before(today) {
			assigned[*t.DailyTaskID] = true
			todays = append(todays, t)
		}
	}

	for _, dt := range active {
		if assigned[dt.ID] {
			continue
		}
		dt := dt
		created, err := s.repo.CreateUserTask(ctx, &domain.UserTask{
			Title:       dt.Title,
			IsDaily:     true,
			UserID:      userID,
			DailyTaskID: &dt.ID,
		})
		if err != nil {
			return nil, err
		}
		created.DailyTask = &dt
		todays = append(todays, *created)
	}

	return todays, nil
}

// GetUserTasks returns the user's unarchived tasks split by kind
func (s *service) GetUserTasks(ctx context.Context, userID int) (*domain.UserTaskList, error) {
	tasks, err := s.repo.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	list := &domain.UserTaskList{
		CustomTasks: []domain.UserTask{},
		DailyTasks:  []domain.UserTask{},
	}
	for _, t := range tasks {
		if t.IsDaily {
			list.DailyTasks = append(list.DailyTasks, t)
		} else {
			list.CustomTasks = append(list.CustomTasks, t)
		}
	}
	return list, nil
}

// RenameTask retitles a custom task. Daily tasks keep their catalog title.
func (s *service) RenameTask(ctx context.Context, userID, userTaskID int, title string) error {
	task, err := s.repo.GetUserTaskByID(ctx, userTaskID)
	if err != nil {
		return err
	}
	// Other users' tasks look like they don't exist
	if task.UserID != userID {
		return domain.ErrTaskNotFound
	}
	if task.IsDaily {
		return fmt.Errorf("%w: daily tasks cannot be renamed", domain.ErrWrongTaskType)
	}
	return s.repo.UpdateUserTaskTitle(ctx, userTaskID, title)
}

// DeleteCustomTask removes a custom task. Daily tasks are rotated out, never
// deleted by the user.
func (s *service) DeleteCustomTask(ctx context.Context, userID, userTaskID int) error {
	task, err := s.repo.GetUserTaskByID(ctx, userTaskID)
	if err != nil {
		return err
	}
	if task.UserID != userID {
		return domain.ErrTaskNotFound
	}
	if task.IsDaily {
		return fmt.Errorf("%w: daily tasks cannot be deleted", domain.ErrWrongTaskType)
	}
	return s.repo.DeleteUserTask(ctx, userTaskID)
}

// RotateDailyPool deactivates the whole catalog and activates a uniform
// random subset of DailyTaskCount entries stamped with today's date. If the
// active pool already carries today's stamp the rotation is a no-op.
func (s *service) RotateDailyPool(ctx context.Context, now time.Time) error {
	log := logger.FromContext(ctx)
	today := startOfDay(now)

	active, err := s.repo.GetActiveDailyTasks(ctx)
	if err != nil {
		return err
	}
	if len(active) > 0 && active[0].LastAssignDate != nil && !active[0].LastAssignDate.Before(today) {
		log.Debug("Daily pool already rotated today")
		return nil
	}

	all, err := s.repo.ListDailyTasks(ctx)
	if err != nil {
		return err
	}
	count := domain.DailyTaskCount
	if len(all) < count {
		return fmt.Errorf("%w: catalog has %d daily tasks, need %d", domain.ErrIntegrity, len(all), count)
	}

	// Shuffle a copy and take the first DailyTaskCount
	pool := make([]domain.DailyTask, len(all))
	copy(pool, all)
	rand.Shuffle(len(pool), func(i, j int) { //nolint:gosec
		pool[i], pool[j] = pool[j], pool[i]
	})

	ids := make([]int, count)
	for i := 0; i < count; i++ {
		ids[i] = pool[i].ID
	}

	if err := s.repo.DeactivateAllDailyTasks(ctx); err != nil {
		return err
	}
	if err := s.repo.ActivateDailyTasks(ctx, ids, today); err != nil {
		return err
	}

	metrics.DailyRotations.Inc()
	log.Info("Rotated daily task pool", "count", count, "date", today.Format(time.DateOnly))
	return nil
}

// ArchiveStale archives all users' incomplete daily tasks from before today
func (s *service) ArchiveStale(ctx context.Context, now time.Time) (int64, error) {
	archived, err := s.repo.ArchiveAllStaleDailyTasks(ctx, startOfDay(now))
	if err != nil {
		return 0, err
	}
	if archived > 0 {
		metrics.TasksArchived.Add(float64(archived))
		logger.FromContext(ctx).Info("Archived stale daily tasks", "count", archived)
	}
	return archived, nil
}
