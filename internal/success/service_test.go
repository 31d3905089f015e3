package success

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yolapp/yol-backend/internal/domain"
)

// MockRepository implements repository.Success for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListSuccesses(ctx context.Context) ([]domain.Success, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Success), args.Error(1)
}

func (m *MockRepository) GetSuccessByID(ctx context.Context, successID int) (*domain.Success, error) {
	args := m.Called(ctx, successID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Success), args.Error(1)
}

func (m *MockRepository) GetSuccessByKey(ctx context.Context, key string) (*domain.Success, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Success), args.Error(1)
}

func (m *MockRepository) UpsertSuccess(ctx context.Context, success domain.Success) error {
	args := m.Called(ctx, success)
	return args.Error(0)
}

func (m *MockRepository) GetUserSuccesses(ctx context.Context, userID int) ([]domain.UserSuccess, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserSuccess), args.Error(1)
}

func (m *MockRepository) GetUserSuccessByID(ctx context.Context, userSuccessID int) (*domain.UserSuccess, error) {
	args := m.Called(ctx, userSuccessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSuccess), args.Error(1)
}

func TestListSuccesses_SecondReadServedFromCache(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	definitions := []domain.Success{
		{ID: 1, Key: domain.SuccessKeyQuestMaster},
		{ID: 2, Key: domain.SuccessKeySelfRuling},
	}
	repo.On("ListSuccesses", mock.Anything).Return(definitions, nil).Once()

	first, err := svc.ListSuccesses(context.Background())
	require.NoError(t, err)
	second, err := svc.ListSuccesses(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "ListSuccesses", 1)
}

func TestGetSuccess_ListWarmsTheByIDCache(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("ListSuccesses", mock.Anything).
		Return([]domain.Success{{ID: 1, Key: domain.SuccessKeyQuestMaster}}, nil).Once()

	_, err := svc.ListSuccesses(context.Background())
	require.NoError(t, err)

	success, err := svc.GetSuccess(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.SuccessKeyQuestMaster, success.Key)
	repo.AssertNotCalled(t, "GetSuccessByID", mock.Anything, mock.Anything)
}

func TestGetSuccess_CacheMissHitsRepository(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetSuccessByID", mock.Anything, 3).
		Return(&domain.Success{ID: 3, Key: domain.SuccessKeyHatched}, nil).Once()

	first, err := svc.GetSuccess(context.Background(), 3)
	require.NoError(t, err)
	second, err := svc.GetSuccess(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "GetSuccessByID", 1)
}

func TestGetSuccess_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetSuccessByID", mock.Anything, 404).Return(nil, domain.ErrSuccessNotFound)

	_, err := svc.GetSuccess(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrSuccessNotFound)
}

func TestGetUserSuccesses_NeverCached(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetUserSuccesses", mock.Anything, 7).
		Return([]domain.UserSuccess{{ID: 1, UserID: 7, SuccessID: 1, ActualAmount: 2}}, nil).Twice()

	_, err := svc.GetUserSuccesses(context.Background(), 7)
	require.NoError(t, err)
	_, err = svc.GetUserSuccesses(context.Background(), 7)
	require.NoError(t, err)

	repo.AssertNumberOfCalls(t, "GetUserSuccesses", 2)
}
