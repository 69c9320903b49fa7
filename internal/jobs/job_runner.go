package jobs

import (
	"time"

	"trustrent-backend/internal/config"
	"trustrent-backend/internal/logger"
	"trustrent-backend/internal/repository/memory"
	"trustrent-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store    *memory.Store
	services *Services
	config   *config.Config
	now      func() time.Time
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Rent     service.RentService
	Reminder service.ReminderService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *memory.Store, services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:    store,
		services: services,
		config:   cfg,
		now:      time.Now,
	}
}

// Config returns the configuration the jobs were built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
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

// RunAllDailyJobs runs all daily jobs (for manual execution)
func (jr *JobRunner) RunAllDailyJobs() {
	jr.SendRentReminders()
}
