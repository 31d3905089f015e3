package handler

import (
	"net/http"

	"github.com/yolapp/yol-backend/internal/progression"
)

// ValidateTaskRequest names the yol receiving the task's XP
type ValidateTaskRequest struct {
	YolID int `json:"yol_id" validate:"required,gt=0"`
}

// ValidateSuccessRequest names the yol receiving the success reward XP
type ValidateSuccessRequest struct {
	YolID int `json:"yol_id" validate:"required,gt=0"`
}

// ProgressionHandlers bundles the completion and claim endpoints
type ProgressionHandlers struct {
	service progression.Service
}

// NewProgressionHandlers creates handlers backed by the progression engine
func NewProgressionHandlers(service progression.Service) *ProgressionHandlers {
	return &ProgressionHandlers{service: service}
}

// HandleValidateDailyTask completes a daily task and awards its XP
// @Summary Complete daily task
// @Description Marks the task done, awards template XP to the yol and bumps success counters
// @Tags progression
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userTaskID path int true "User task ID"
// @Param request body ValidateTaskRequest true "Receiving yol"
// @Success 200 {object} domain.UserTask
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/user-tasks/{userTaskID}/validate-daily [patch]
func (h *ProgressionHandlers) HandleValidateDailyTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := AuthenticatedUserID(r, w)
		if !ok {
			return
		}
		userTaskID, ok := URLParamInt(r, w, "userTaskID")
		if !ok {
			return
		}

		var req ValidateTaskRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Validate daily task"); err != nil {
			return
		}

		completed, err := h.service.CompleteDailyTask(r.Context(), userID, userTaskID, req.YolID)
		if err != nil {
			respondServiceError(w, r, "Validate daily task", err)
			return
		}

		respondJSON(w, http.StatusOK, completed)
	}
}

// HandleValidateCustomTask completes a custom task
// @Summary Complete custom task
// @Tags progression
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userTaskID path int true "User task ID"
// @Success 200 {object} domain.UserTask
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/user-tasks/{userTaskID}/validate-custom [patch]
func (h *ProgressionHandlers) HandleValidateCustomTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := AuthenticatedUserID(r, w)
		if !ok {
			return
		}
		userTaskID, ok := URLParamInt(r, w, "userTaskID")
		if !ok {
			return
		}

		completed, err := h.service.CompleteCustomTask(r.Context(), userID, userTaskID)
		if err != nil {
			respondServiceError(w, r, "Validate custom task", err)
			return
		}

		respondJSON(w, http.StatusOK, completed)
	}
}

// HandleValidateSuccess claims a success whose counter reached the requirement
// @Summary Claim success
// @Description Completes the success and awards its reward XP to the yol
// @Tags progression
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userSuccessID path int true "User success ID"
// @Param request body ValidateSuccessRequest true "Receiving yol"
// @Success 200 {object} domain.UserSuccess
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/user-success/{userSuccessID}/validate [patch]
func (h *ProgressionHandlers) HandleValidateSuccess() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := AuthenticatedUserID(r, w)
		if !ok {
			return
		}
		userSuccessID, ok := URLParamInt(r, w, "userSuccessID")
		if !ok {
			return
		}

		var req ValidateSuccessRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Validate success"); err != nil {
			return
		}

		claimed, err := h.service.ValidateSuccess(r.Context(), userID, userSuccessID, req.YolID)
		if err != nil {
			respondServiceError(w, r, "Validate success", err)
			return
		}

		respondJSON(w, http.StatusOK, claimed)
	}
}
