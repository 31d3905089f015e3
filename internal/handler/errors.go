package handler

import (
	"errors"
	"net/http"

	"github.com/yolapp/yol-backend/internal/domain"
)

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPathParam      = "Invalid %s path parameter"
	ErrMsgUnauthorized          = "Unauthorized"
	ErrMsgForbidden             = "You do not have access to that resource"
)

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Account messages
	ErrMsgUserNotFoundError       = "User not found"
	ErrMsgUsernameTakenError      = "That username is already taken"
	ErrMsgEmailTakenError         = "An account with that email already exists"
	ErrMsgInvalidCredentialsError = "Invalid username or password"

	// Task messages
	ErrMsgTaskNotFoundError     = "Task not found"
	ErrMsgAlreadyCompletedError = "Task is already completed"
	ErrMsgWrongTaskTypeError    = "That operation does not apply to this task type"

	// Yol messages
	ErrMsgYolNotFoundError     = "Yol not found"
	ErrMsgSpeciesNotFoundError = "Species not found"
	ErrMsgInsufficientXPError  = "Not enough XP to evolve yet"
	ErrMsgFinalStageError      = "Your yol has reached its final form"

	// Success messages
	ErrMsgSuccessNotFoundError     = "Success not found"
	ErrMsgUserSuccessNotFoundError = "Success progress not found"
	ErrMsgAmountNotReachedError    = "Success requirement not reached yet"
	ErrMsgSuccessCompletedError    = "Success is already completed"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// This function converts internal service errors to appropriate HTTP status codes
// and messages that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTakenError
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, ErrMsgEmailTakenError
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgInvalidCredentialsError
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, ErrMsgTaskNotFoundError
	case errors.Is(err, domain.ErrAlreadyCompleted):
		return http.StatusConflict, ErrMsgAlreadyCompletedError
	case errors.Is(err, domain.ErrWrongTaskType):
		return http.StatusBadRequest, ErrMsgWrongTaskTypeError
	case errors.Is(err, domain.ErrYolNotFound):
		return http.StatusNotFound, ErrMsgYolNotFoundError
	case errors.Is(err, domain.ErrSpeciesNotFound):
		return http.StatusNotFound, ErrMsgSpeciesNotFoundError
	case errors.Is(err, domain.ErrInsufficientXP):
		return http.StatusBadRequest, ErrMsgInsufficientXPError
	case errors.Is(err, domain.ErrFinalStage):
		return http.StatusBadRequest, ErrMsgFinalStageError
	case errors.Is(err, domain.ErrSuccessNotFound):
		return http.StatusNotFound, ErrMsgSuccessNotFoundError
	case errors.Is(err, domain.ErrUserSuccessNotFound):
		return http.StatusNotFound, ErrMsgUserSuccessNotFoundError
	case errors.Is(err, domain.ErrAmountNotReached):
		return http.StatusBadRequest, ErrMsgAmountNotReachedError
	case errors.Is(err, domain.ErrSuccessCompleted):
		return http.StatusConflict, ErrMsgSuccessCompletedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrIntegrity):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
