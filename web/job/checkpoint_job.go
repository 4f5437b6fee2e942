// Package job contains scheduled maintenance jobs run by the web server's
// cron scheduler.
package job

import (
	"blogapi/database"
	"blogapi/logger"
)

type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run implements cron.Job. Flushes the sqlite WAL so the main database
// file stays current between restarts.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("wal checkpoint failed:", err)
	}
}
