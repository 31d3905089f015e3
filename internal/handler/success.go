package handler

import (
	"net/http"

	"github.com/yolapp/yol-backend/internal/success"
)

// HandleListSuccesses lists all success definitions
// @Summary List successes
// @Tags success
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Success
// @Router /api/v1/success [get]
func HandleListSuccesses(successService success.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		successes, err := successService.ListSuccesses(r.Context())
		if err != nil {
			respondServiceError(w, r, "List successes", err)
			return
		}

		respondJSON(w, http.StatusOK, successes)
	}
}

// HandleGetSuccess returns one success definition
// @Summary Get success
// @Tags success
// @Produce json
// @Security BearerAuth
// @Param successID path int true "Success ID"
// @Success 200 {object} domain.Success
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/success/{successID} [get]
func HandleGetSuccess(successService success.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		successID, ok := URLParamInt(r, w, "successID")
		if !ok {
			return
		}

		s, err := successService.GetSuccess(r.Context(), successID)
		if err != nil {
			respondServiceError(w, r, "Get success", err)
			return
		}

		respondJSON(w, http.StatusOK, s)
	}
}

// HandleGetUserSuccesses lists the user's success progress joined with definitions
// @Summary List user success progress
// @Tags success
// @Produce json
// @Security BearerAuth
// @Param userID path int true "User ID"
// @Success 200 {array} domain.UserSuccess
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/user-success/{userID} [get]
func HandleGetUserSuccesses(successService success.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := OwnedPathUserID(r, w)
		if !ok {
			return
		}

		userSuccesses, err := successService.GetUserSuccesses(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get user successes", err)
			return
		}

		respondJSON(w, http.StatusOK, userSuccesses)
	}
}
