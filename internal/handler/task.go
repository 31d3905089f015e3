package handler

import (
	"net/http"

	"github.com/yolapp/yol-backend/internal/task"
)

// CreateCustomTaskRequest represents the request to create a custom task
type CreateCustomTaskRequest struct {
	Title string `json:"title" validate:"required,min=1,max=120"`
}

// RenameTaskRequest represents the request to retitle a custom task
type RenameTaskRequest struct {
	Title string `json:"title" validate:"required,min=1,max=120"`
}

// HandleCreateCustomTask creates a free-form task for the user
// @Summary Create custom task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userID path int true "User ID"
// @Param request body CreateCustomTaskRequest true "Task title"
// @Success 201 {object} domain.UserTask
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/user-tasks/{userID}/custom [post]
func HandleCreateCustomTask(taskService task.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := OwnedPathUserID(r, w)
		if !ok {
			return
		}

		var req CreateCustomTaskRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create custom task"); err != nil {
			return
		}

		created, err := taskService.CreateCustomTask(r.Context(), userID, req.Title)
		if err != nil {
			respondServiceError(w, r, "Create custom task", err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleAssignDailyTasks gives the user today's daily tasks
// @Summary Assign daily tasks
// @Description Idempotent per user per day; rotates the pool lazily if needed
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param userID path int true "User ID"
// @Success 200 {array} domain.UserTask
// @Router /api/v1/user-tasks/{userID}/daily [post]
func HandleAssignDailyTasks(taskService task.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := OwnedPathUserID(r, w)
		if !ok {
			return
		}

		tasks, err := taskService.AssignDailyTasks(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Assign daily tasks", err)
			return
		}

		respondJSON(w, http.StatusOK, tasks)
	}
}

// HandleGetUserTasks lists the user's unarchived tasks split by kind
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param userID path int true "User ID"
// @Success 200 {object} domain.UserTaskList
// @Router /api/v1/user-tasks/{userID} [get]
func HandleGetUserTasks(taskService task.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := OwnedPathUserID(r, w)
		if !ok {
			return
		}

		list, err := taskService.GetUserTasks(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get user tasks", err)
			return
		}

		respondJSON(w, http.StatusOK, list)
	}
}

// HandleRenameTask retitles a custom task
// @Summary Rename custom task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userTaskID path int true "User task ID"
// @Param request body RenameTaskRequest true "New title"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/user-tasks/{userTaskID}/title [patch]
func HandleRenameTask(taskService task.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := AuthenticatedUserID(r, w)
		if !ok {
			return
		}
		userTaskID, ok := URLParamInt(r, w, "userTaskID")
		if !ok {
			return
		}

		var req RenameTaskRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Rename task"); err != nil {
			return
		}

		if err := taskService.RenameTask(r.Context(), userID, userTaskID, req.Title); err != nil {
			respondServiceError(w, r, "Rename task", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Task renamed"})
	}
}

// HandleDeleteCustomTask removes a custom task
// @Summary Delete custom task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param userTaskID path int true "User task ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/user-tasks/{userTaskID} [delete]
func HandleDeleteCustomTask(taskService task.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := AuthenticatedUserID(r, w)
		if !ok {
			return
		}
		userTaskID, ok := URLParamInt(r, w, "userTaskID")
		if !ok {
			return
		}

		if err := taskService.DeleteCustomTask(r.Context(), userID, userTaskID); err != nil {
			respondServiceError(w, r, "Delete custom task", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Task deleted"})
	}
}
