package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/yolapp/yol-backend/internal/domain"
)

func TestHandleListSuccesses_Success(t *testing.T) {
	svc := new(MockSuccessService)
	svc.On("ListSuccesses", mock.Anything).Return([]domain.Success{
		{ID: 1, Key: domain.SuccessKeyQuestMaster, Title: "Quest Master"},
		{ID: 2, Key: domain.SuccessKeyHatched, Title: "Hatched"},
	}, nil)

	req := newRequest(t, "GET", "/api/v1/success", 7, nil, nil)
	rec := httptest.NewRecorder()

	HandleListSuccesses(svc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var successes []domain.Success
	decodeBody(t, rec, &successes)
	assert.Len(t, successes, 2)
}

func TestHandleGetSuccess_NotFound(t *testing.T) {
	svc := new(MockSuccessService)
	svc.On("GetSuccess", mock.Anything, 99).Return(nil, domain.ErrSuccessNotFound)

	req := newRequest(t, "GET", "/api/v1/success/99", 7, map[string]string{"successID": "99"}, nil)
	rec := httptest.NewRecorder()

	HandleGetSuccess(svc)(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetUserSuccesses_Success(t *testing.T) {
	svc := new(MockSuccessService)
	svc.On("GetUserSuccesses", mock.Anything, 7).Return([]domain.UserSuccess{
		{ID: 1, UserID: 7, SuccessID: 1, ActualAmount: 4},
	}, nil)

	req := newRequest(t, "GET", "/api/v1/user-success/7", 7, map[string]string{"userID": "7"}, nil)
	rec := httptest.NewRecorder()

	HandleGetUserSuccesses(svc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var progress []domain.UserSuccess
	decodeBody(t, rec, &progress)
	assert.Len(t, progress, 1)
	assert.Equal(t, 4, progress[0].ActualAmount)
}

func TestHandleGetUserSuccesses_ForeignUserForbidden(t *testing.T) {
	svc := new(MockSuccessService)

	req := newRequest(t, "GET", "/api/v1/user-success/8", 7, map[string]string{"userID": "8"}, nil)
	rec := httptest.NewRecorder()

	HandleGetUserSuccesses(svc)(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	svc.AssertNotCalled(t, "GetUserSuccesses", mock.Anything, mock.Anything)
}
