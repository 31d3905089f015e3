package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToInsertUser     = "failed to insert user"
	ErrMsgFailedToUpdateUser     = "failed to update user"
	ErrMsgFailedToGetUser        = "failed to get user"
	ErrMsgFailedToDeleteUser     = "failed to delete user"
	ErrMsgFailedToSeedSuccesses  = "failed to seed user successes"
	ErrMsgFailedToUpdatePassword = "failed to update password"
)

// Error Messages - Task Operations
const (
	ErrMsgFailedToGetDailyTasks    = "failed to get daily tasks"
	ErrMsgFailedToActivateTasks    = "failed to activate daily tasks"
	ErrMsgFailedToDeactivateTasks  = "failed to deactivate daily tasks"
	ErrMsgFailedToInsertUserTask   = "failed to insert user task"
	ErrMsgFailedToGetUserTasks     = "failed to get user tasks"
	ErrMsgFailedToArchiveUserTasks = "failed to archive user tasks"
)

// Error Messages - Yol Operations
const (
	ErrMsgFailedToInsertYol = "failed to insert yol"
	ErrMsgFailedToGetYol    = "failed to get yol"
	ErrMsgFailedToUpdateYol = "failed to update yol"
)

// Error Messages - Success Operations
const (
	ErrMsgFailedToGetSuccess        = "failed to get success"
	ErrMsgFailedToGetUserSuccess    = "failed to get user success"
	ErrMsgFailedToUpdateUserSuccess = "failed to update user success"
)
