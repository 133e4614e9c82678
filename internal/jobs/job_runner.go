package jobs

import (
	"database/sql"

	"carrental-backend/internal/catalog"
	"carrental-backend/internal/config"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs. Jobs work on the whole table at
// once, so they go straight to SQL rather than through the per-user repos.
type JobRunner struct {
	db       *sql.DB
	cat      catalog.Catalog
	emailSvc service.EmailService
	config   *config.Config
}

func NewJobRunner(db *sql.DB, cat catalog.Catalog, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:       db,
		cat:      cat,
		emailSvc: emailSvc,
		config:   cfg,
	}
}

// Config exposes the loaded configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery so one bad job
// cannot take the scheduler down.
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

// RunAllJobs runs every scheduled job once, for manual execution.
func (jr *JobRunner) RunAllJobs() {
	jr.CompleteElapsedRentals()
	jr.SendPickupReminders()
}
