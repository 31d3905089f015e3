package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound       = "user not found"
	ErrMsgUsernameTaken      = "username already taken"
	ErrMsgEmailTaken         = "email already registered"
	ErrMsgInvalidCredentials = "invalid credentials"

	// Task errors
	ErrMsgTaskNotFound     = "task not found"
	ErrMsgAlreadyCompleted = "task already completed"
	ErrMsgWrongTaskType    = "wrong task type"

	// Yol errors
	ErrMsgYolNotFound     = "yol not found"
	ErrMsgSpeciesNotFound = "species not found"
	ErrMsgInsufficientXP  = "insufficient xp"
	ErrMsgFinalStage      = "yol is at its final stage"

	// Success errors
	ErrMsgSuccessNotFound     = "success not found"
	ErrMsgUserSuccessNotFound = "user success not found"
	ErrMsgAmountNotReached    = "required amount not reached"
	ErrMsgSuccessCompleted    = "success already completed"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgIntegrity     = "data integrity violation"
	ErrMsgTxClosed      = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound       = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken      = errors.New(ErrMsgUsernameTaken)
	ErrEmailTaken         = errors.New(ErrMsgEmailTaken)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)

	// Task errors
	ErrTaskNotFound     = errors.New(ErrMsgTaskNotFound)
	ErrAlreadyCompleted = errors.New(ErrMsgAlreadyCompleted)
	ErrWrongTaskType    = errors.New(ErrMsgWrongTaskType)

	// Yol errors
	ErrYolNotFound     = errors.New(ErrMsgYolNotFound)
	ErrSpeciesNotFound = errors.New(ErrMsgSpeciesNotFound)
	ErrInsufficientXP  = errors.New(ErrMsgInsufficientXP)
	ErrFinalStage      = errors.New(ErrMsgFinalStage)

	// Success errors
	ErrSuccessNotFound     = errors.New(ErrMsgSuccessNotFound)
	ErrUserSuccessNotFound = errors.New(ErrMsgUserSuccessNotFound)
	ErrAmountNotReached    = errors.New(ErrMsgAmountNotReached)
	ErrSuccessCompleted    = errors.New(ErrMsgSuccessCompleted)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
	ErrIntegrity     = errors.New(ErrMsgIntegrity)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
