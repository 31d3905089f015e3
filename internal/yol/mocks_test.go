package yol

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/yolapp/yol-backend/internal/domain"
	"github.com/yolapp/yol-backend/internal/repository"
)

// MockYolRepository implements repository.Yol for testing
type MockYolRepository struct {
	mock.Mock
}

func (m *MockYolRepository) CreateYol(ctx context.Context, yol *domain.Yol) (*domain.Yol, error) {
	args := m.Called(ctx, yol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Yol), args.Error(1)
}

func (m *MockYolRepository) GetYolByID(ctx context.Context, yolID int) (*domain.Yol, error) {
	args := m.Called(ctx, yolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Yol), args.Error(1)
}

func (m *MockYolRepository) GetYolByUserID(ctx context.Context, userID int) (*domain.Yol, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Yol), args.Error(1)
}

func (m *MockYolRepository) UpdateYolName(ctx context.Context, yolID int, name string) error {
	args := m.Called(ctx, yolID, name)
	return args.Error(0)
}

// MockSpeciesRepository implements repository.Species for testing
type MockSpeciesRepository struct {
	mock.Mock
}

func (m *MockSpeciesRepository) ListSpecies(ctx context.Context) ([]domain.Species, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Species), args.Error(1)
}

func (m *MockSpeciesRepository) GetSpeciesByID(ctx context.Context, speciesID int) (*domain.Species, error) {
	args := m.Called(ctx, speciesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Species), args.Error(1)
}

func (m *MockSpeciesRepository) GetSpeciesByNameAndStage(ctx context.Context, name string, stage domain.Stage) (*domain.Species, error) {
	args := m.Called(ctx, name, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Species), args.Error(1)
}

func (m *MockSpeciesRepository) UpsertSpecies(ctx context.Context, species domain.Species) error {
	args := m.Called(ctx, species)
	return args.Error(0)
}

// MockTxStarter implements repository.TxStarter for testing
type MockTxStarter struct {
	mock.Mock
}

func (m *MockTxStarter) BeginTx(ctx context.Context) (repository.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Tx), args.Error(1)
}

// MockTx implements repository.Tx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) GetUserTaskForUpdate(ctx context.Context, userTaskID int) (*domain.UserTask, error) {
	args := m.Called(ctx, userTaskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserTask), args.Error(1)
}

func (m *MockTx) CompleteUserTask(ctx context.Context, userTaskID int, completedAt time.Time) error {
	args := m.Called(ctx, userTaskID, completedAt)
	return args.Error(0)
}

func (m *MockTx) CountCompletedDailyTasks(ctx context.Context, userID int, dayStart time.Time) (int, error) {
	args := m.Called(ctx, userID, dayStart)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) CountCompletedCustomTasks(ctx context.Context, userID int) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) GetSuccessByID(ctx context.Context, successID int) (*domain.Success, error) {
	args := m.Called(ctx, successID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Success), args.Error(1)
}

func (m *MockTx) GetSuccessByKey(ctx context.Context, key string) (*domain.Success, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Success), args.Error(1)
}

func (m *MockTx) GetUserSuccessForUpdate(ctx context.Context, userSuccessID int) (*domain.UserSuccess, error) {
	args := m.Called(ctx, userSuccessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSuccess), args.Error(1)
}

func (m *MockTx) GetUserSuccessBySuccessID(ctx context.Context, userID, successID int) (*domain.UserSuccess, error) {
	args := m.Called(ctx, userID, successID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSuccess), args.Error(1)
}

func (m *MockTx) IncrementUserSuccess(ctx context.Context, userID, successID, amount int) error {
	args := m.Called(ctx, userID, successID, amount)
	return args.Error(0)
}

func (m *MockTx) CompleteUserSuccess(ctx context.Context, userID, successID int) error {
	args := m.Called(ctx, userID, successID)
	return args.Error(0)
}

func (m *MockTx) GetYolForUpdate(ctx context.Context, yolID int) (*domain.Yol, error) {
	args := m.Called(ctx, yolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Yol), args.Error(1)
}

func (m *MockTx) AddYolXP(ctx context.Context, yolID, amount int) error {
	args := m.Called(ctx, yolID, amount)
	return args.Error(0)
}

func (m *MockTx) UpdateYolSpecies(ctx context.Context, yolID, speciesID int) error {
	args := m.Called(ctx, yolID, speciesID)
	return args.Error(0)
}

func (m *MockTx) GetSpeciesByNameAndStage(ctx context.Context, name string, stage domain.Stage) (*domain.Species, error) {
	args := m.Called(ctx, name, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Species), args.Error(1)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
