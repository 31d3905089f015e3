package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/yolapp/yol-backend/internal/domain"
	"github.com/yolapp/yol-backend/internal/user"
)

// MockUserService implements user.Service for testing
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Signup(ctx context.Context, username, email, password string) (*domain.User, user.TokenPair, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, user.TokenPair{}, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(user.TokenPair), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, username, password string) (*domain.User, user.TokenPair, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, user.TokenPair{}, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(user.TokenPair), args.Error(2)
}

func (m *MockUserService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID int, username, email string) (*domain.User, error) {
	args := m.Called(ctx, userID, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdatePassword(ctx context.Context, userID int, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockUserService) UpdatePicture(ctx context.Context, userID int, picture string) (*domain.User, error) {
	args := m.Called(ctx, userID, picture)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID int, password string) error {
	args := m.Called(ctx, userID, password)
	return args.Error(0)
}

// MockTaskService implements task.Service for testing
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) CreateCustomTask(ctx context.Context, userID int, title string) (*domain.UserTask, error) {
	args := m.Called(ctx, userID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserTask), args.Error(1)
}

func (m *MockTaskService) AssignDailyTasks(ctx context.Context, userID int) ([]domain.UserTask, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserTask), args.Error(1)
}

func (m *MockTaskService) GetUserTasks(ctx context.Context, userID int) (*domain.UserTaskList, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserTaskList), args.Error(1)
}

func (m *MockTaskService) RenameTask(ctx context.Context, userID, userTaskID int, title string) error {
	args := m.Called(ctx, userID, userTaskID, title)
	return args.Error(0)
}

func (m *MockTaskService) DeleteCustomTask(ctx context.Context, userID, userTaskID int) error {
	args := m.Called(ctx, userID, userTaskID)
	return args.Error(0)
}

func (m *MockTaskService) RotateDailyPool(ctx context.Context, now time.Time) error {
	args := m.Called(ctx, now)
	return args.Error(0)
}

func (m *MockTaskService) ArchiveStale(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockYolService implements yol.Service for testing
type MockYolService struct {
	mock.Mock
}

func (m *MockYolService) Adopt(ctx context.Context, userID int, name, speciesName string) (*domain.Yol, error) {
	args := m.Called(ctx, userID, name, speciesName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Yol), args.Error(1)
}

func (m *MockYolService) GetYol(ctx context.Context, yolID int) (*domain.Yol, error) {
	args := m.Called(ctx, yolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Yol), args.Error(1)
}

func (m *MockYolService) GetYolByUser(ctx context.Context, userID int) (*domain.Yol, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Yol), args.Error(1)
}

func (m *MockYolService) Evolve(ctx context.Context, userID, yolID int) (*domain.Yol, error) {
	args := m.Called(ctx, userID, yolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Yol), args.Error(1)
}

func (m *MockYolService) ListSpecies(ctx context.Context) ([]domain.Species, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Species), args.Error(1)
}

// MockProgressionService implements progression.Service for testing
type MockProgressionService struct {
	mock.Mock
}

func (m *MockProgressionService) CompleteDailyTask(ctx context.Context, userID, userTaskID, yolID int) (*domain.UserTask, error) {
	args := m.Called(ctx, userID, userTaskID, yolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserTask), args.Error(1)
}

func (m *MockProgressionService) CompleteCustomTask(ctx context.Context, userID, userTaskID int) (*domain.UserTask, error) {
	args := m.Called(ctx, userID, userTaskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserTask), args.Error(1)
}

func (m *MockProgressionService) ValidateSuccess(ctx context.Context, userID, userSuccessID, yolID int) (*domain.UserSuccess, error) {
	args := m.Called(ctx, userID, userSuccessID, yolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSuccess), args.Error(1)
}

// MockSuccessService implements success.Service for testing
type MockSuccessService struct {
	mock.Mock
}

func (m *MockSuccessService) ListSuccesses(ctx context.Context) ([]domain.Success, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Success), args.Error(1)
}

func (m *MockSuccessService) GetSuccess(ctx context.Context, successID int) (*domain.Success, error) {
	args := m.Called(ctx, successID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Success), args.Error(1)
}

func (m *MockSuccessService) GetUserSuccesses(ctx context.Context, userID int) ([]domain.UserSuccess, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserSuccess), args.Error(1)
}

func (m *MockSuccessService) GetUserSuccess(ctx context.Context, userSuccessID int) (*domain.UserSuccess, error) {
	args := m.Called(ctx, userSuccessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSuccess), args.Error(1)
}
