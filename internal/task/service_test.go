package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yolapp/yol-backend/internal/domain"
)

func TestCreateCustomTask(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("CreateUserTask", mock.Anything, mock.MatchedBy(func(task *domain.UserTask) bool {
		return task.UserID == 7 && task.Title == "Water the plants" && !task.IsDaily
	})).Return(&domain.UserTask{ID: 1, Title: "Water the plants", UserID: 7}, nil)

	created, err := svc.CreateCustomTask(context.Background(), 7, "Water the plants")

	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	repo.AssertExpectations(t)
}

func TestRenameTask_Success(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetUserTaskByID", mock.Anything, 3).
		Return(&domain.UserTask{ID: 3, UserID: 7, IsDaily: false}, nil)
	repo.On("UpdateUserTaskTitle", mock.Anything, 3, "New title").Return(nil)

	err := svc.RenameTask(context.Background(), 7, 3, "New title")

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRenameTask_DailyTaskRejected(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetUserTaskByID", mock.Anything, 3).
		Return(&domain.UserTask{ID: 3, UserID: 7, IsDaily: true}, nil)

	err := svc.RenameTask(context.Background(), 7, 3, "New title")

	assert.ErrorIs(t, err, domain.ErrWrongTaskType)
	repo.AssertNotCalled(t, "UpdateUserTaskTitle", mock.Anything, mock.Anything, mock.Anything)
}

func TestRenameTask_OtherUsersTaskLooksMissing(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetUserTaskByID", mock.Anything, 3).
		Return(&domain.UserTask{ID: 3, UserID: 99, IsDaily: false}, nil)

	err := svc.RenameTask(context.Background(), 7, 3, "New title")

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestDeleteCustomTask_Success(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetUserTaskByID", mock.Anything, 5).
		Return(&domain.UserTask{ID: 5, UserID: 7, IsDaily: false}, nil)
	repo.On("DeleteUserTask", mock.Anything, 5).Return(nil)

	err := svc.DeleteCustomTask(context.Background(), 7, 5)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteCustomTask_DailyTaskRejected(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetUserTaskByID", mock.Anything, 5).
		Return(&domain.UserTask{ID: 5, UserID: 7, IsDaily: true}, nil)

	err := svc.DeleteCustomTask(context.Background(), 7, 5)

	assert.ErrorIs(t, err, domain.ErrWrongTaskType)
	repo.AssertNotCalled(t, "DeleteUserTask", mock.Anything, mock.Anything)
}

func TestGetUserTasks_SplitsByKind(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	dailyID := 1
	repo.On("GetUserTasks", mock.Anything, 7).Return([]domain.UserTask{
		{ID: 1, UserID: 7, IsDaily: true, DailyTaskID: &dailyID},
		{ID: 2, UserID: 7, IsDaily: false},
		{ID: 3, UserID: 7, IsDaily: false},
	}, nil)

	list, err := svc.GetUserTasks(context.Background(), 7)

	require.NoError(t, err)
	assert.Len(t, list.DailyTasks, 1)
	assert.Len(t, list.CustomTasks, 2)
}

func TestGetUserTasks_EmptyListsNotNil(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetUserTasks", mock.Anything, 7).Return([]domain.UserTask{}, nil)

	list, err := svc.GetUserTasks(context.Background(), 7)

	require.NoError(t, err)
	assert.NotNil(t, list.DailyTasks)
	assert.NotNil(t, list.CustomTasks)
}

// activePool builds a pool of active catalog entries stamped with the given date
func activePool(stamp time.Time, ids ...int) []domain.DailyTask {
	tasks := make([]domain.DailyTask, len(ids))
	for i, id := range ids {
		d := stamp
		tasks[i] = domain.DailyTask{ID: id, IsActive: true, LastAssignDate: &d}
	}
	return tasks
}

func TestRotateDailyPool_SelectsSubset(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	now := time.Now()

	repo.On("GetActiveDailyTasks", mock.Anything).Return([]domain.DailyTask{}, nil)

	catalog := make([]domain.DailyTask, 10)
	for i := range catalog {
		catalog[i] = domain.DailyTask{ID: i + 1}
	}
	repo.On("ListDailyTasks", mock.Anything).Return(catalog, nil)
	repo.On("DeactivateAllDailyTasks", mock.Anything).Return(nil)
	repo.On("ActivateDailyTasks", mock.Anything, mock.MatchedBy(func(ids []int) bool {
		if len(ids) != domain.DailyTaskCount {
			return false
		}
		seen := make(map[int]bool)
		for _, id := range ids {
			if id < 1 || id > 10 || seen[id] {
				return false
			}
			seen[id] = true
		}
		return true
	}), mock.Anything).Return(nil)

	err := svc.RotateDailyPool(context.Background(), now)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRotateDailyPool_IdempotentWithinDay(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	now := time.Now()

	repo.On("GetActiveDailyTasks", mock.Anything).
		Return(activePool(now, 1, 2, 3, 4, 5, 6), nil)

	err := svc.RotateDailyPool(context.Background(), now)

	require.NoError(t, err)
	repo.AssertNotCalled(t, "DeactivateAllDailyTasks", mock.Anything)
	repo.AssertNotCalled(t, "ActivateDailyTasks", mock.Anything, mock.Anything, mock.Anything)
}

func TestRotateDailyPool_CatalogTooSmall(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetActiveDailyTasks", mock.Anything).Return([]domain.DailyTask{}, nil)
	repo.On("ListDailyTasks", mock.Anything).Return([]domain.DailyTask{{ID: 1}, {ID: 2}}, nil)

	err := svc.RotateDailyPool(context.Background(), time.Now())

	assert.ErrorIs(t, err, domain.ErrIntegrity)
}

func TestAssignDailyTasks_CreatesMissingInstances(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	now := time.Now()

	pool := activePool(now, 1, 2, 3, 4, 5, 6)
	repo.On("GetActiveDailyTasks", mock.Anything).Return(pool, nil)
	repo.On("ArchiveStaleDailyTasks", mock.Anything, 7, mock.Anything).Return(int64(0), nil)

	// One of today's instances already exists
	existingID := 1
	repo.On("GetUserTasks", mock.Anything, 7).Return([]domain.UserTask{
		{ID: 50, UserID: 7, IsDaily: true, DailyTaskID: &existingID, CreatedAt: now},
	}, nil)

	repo.On("CreateUserTask", mock.Anything, mock.MatchedBy(func(task *domain.UserTask) bool {
		return task.IsDaily && task.UserID == 7 && task.DailyTaskID != nil && *task.DailyTaskID != existingID
	})).Return(&domain.UserTask{ID: 51, UserID: 7, IsDaily: true}, nil).Times(5)

	assigned, err := svc.AssignDailyTasks(context.Background(), 7)

	require.NoError(t, err)
	assert.Len(t, assigned, domain.DailyTaskCount)
	repo.AssertExpectations(t)
}

func TestAssignDailyTasks_RotatesStalePool(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	yesterday := time.Now().AddDate(0, 0, -1)
	now := time.Now()

	stale := activePool(yesterday, 1, 2, 3, 4, 5, 6)
	fresh := activePool(now, 4, 5, 6, 7, 8, 9)

	// First read sees yesterday's stamp, the rotation check inside
	// RotateDailyPool sees it again, then the re-read gets the fresh pool
	repo.On("GetActiveDailyTasks", mock.Anything).Return(stale, nil).Twice()
	repo.On("GetActiveDailyTasks", mock.Anything).Return(fresh, nil).Once()

	catalog := make([]domain.DailyTask, 10)
	for i := range catalog {
		catalog[i] = domain.DailyTask{ID: i + 1}
	}
	repo.On("ListDailyTasks", mock.Anything).Return(catalog, nil)
	repo.On("DeactivateAllDailyTasks", mock.Anything).Return(nil)
	repo.On("ActivateDailyTasks", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	repo.On("ArchiveStaleDailyTasks", mock.Anything, 7, mock.Anything).Return(int64(2), nil)
	repo.On("GetUserTasks", mock.Anything, 7).Return([]domain.UserTask{}, nil)
	repo.On("CreateUserTask", mock.Anything, mock.Anything).
		Return(&domain.UserTask{ID: 60, UserID: 7, IsDaily: true}, nil).Times(6)

	assigned, err := svc.AssignDailyTasks(context.Background(), 7)

	require.NoError(t, err)
	assert.Len(t, assigned, domain.DailyTaskCount)
	repo.AssertExpectations(t)
}

func TestArchiveStale(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("ArchiveAllStaleDailyTasks", mock.Anything, mock.Anything).Return(int64(4), nil)

	archived, err := svc.ArchiveStale(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(4), archived)
}
