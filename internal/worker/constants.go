package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for daily rotation worker operations
const (
	LogMsgRotationStandby   = "Daily rotation in standby"
	LogMsgRotationApproach  = "Daily rotation approaching"
	LogMsgRotationStarting  = "Daily rotation starting"
	LogMsgRotationCompleted = "Daily rotation completed"
	LogMsgRotationFailed    = "Daily rotation failed"
)

// Log messages for the archive sweep job
const (
	LogMsgArchiveSweepFailed    = "Archive sweep failed"
	LogMsgArchiveSweepCompleted = "Archive sweep completed"
)
