package task

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/yolapp/yol-backend/internal/domain"
)

// MockRepository implements repository.Task for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListDailyTasks(ctx context.Context) ([]domain.DailyTask, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyTask), args.Error(1)
}

func (m *MockRepository) GetActiveDailyTasks(ctx context.Context) ([]domain.DailyTask, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyTask), args.Error(1)
}

func (m *MockRepository) GetDailyTaskByID(ctx context.Context, dailyTaskID int) (*domain.DailyTask, error) {
	args := m.Called(ctx, dailyTaskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyTask), args.Error(1)
}

func (m *MockRepository) DeactivateAllDailyTasks(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) ActivateDailyTasks(ctx context.Context, dailyTaskIDs []int, assignDate time.Time) error {
	args := m.Called(ctx, dailyTaskIDs, assignDate)
	return args.Error(0)
}

func (m *MockRepository) UpsertDailyTask(ctx context.Context, task domain.DailyTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockRepository) CreateUserTask(ctx context.Context, task *domain.UserTask) (*domain.UserTask, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserTask), args.Error(1)
}

func (m *MockRepository) GetUserTaskByID(ctx context.Context, userTaskID int) (*domain.UserTask, error) {
	args := m.Called(ctx, userTaskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserTask), args.Error(1)
}

func (m *MockRepository) GetUserTasks(ctx context.Context, userID int) ([]domain.UserTask, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserTask), args.Error(1)
}

func (m *MockRepository) UpdateUserTaskTitle(ctx context.Context, userTaskID int, title string) error {
	args := m.Called(ctx, userTaskID, title)
	return args.Error(0)
}

func (m *MockRepository) DeleteUserTask(ctx context.Context, userTaskID int) error {
	args := m.Called(ctx, userTaskID)
	return args.Error(0)
}

func (m *MockRepository) ArchiveStaleDailyTasks(ctx context.Context, userID int, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, userID, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) ArchiveAllStaleDailyTasks(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
