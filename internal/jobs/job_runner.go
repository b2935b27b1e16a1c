package jobs

import (
	"database/sql"

	"library-of-things-backend/internal/config"
	"library-of-things-backend/internal/logger"
)

// JobRunner coordinates scheduled maintenance jobs.
type JobRunner struct {
	db     *sql.DB
	config *config.Config
}

func NewJobRunner(db *sql.DB, cfg *config.Config) *JobRunner {
	return &JobRunner{db: db, config: cfg}
}

// Config exposes the loaded configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery so one bad
// run cannot take the scheduler down.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
