package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"movie-catalog-backend/internal/config"
	"movie-catalog-backend/internal/domains/movie/job"
	"movie-catalog-backend/internal/shared"
	"movie-catalog-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redisAddress string, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

// RegisterJobs wires every cron-driven task.
func (s *Scheduler) RegisterJobs() error {
	return s.registerRefreshRatingsJob()
}

// Refresh provider-sourced rating fields (default: daily at 3 AM UTC).
// Off-peak because it makes one OMDb call per catalog entry.
func (s *Scheduler) registerRefreshRatingsJob() error {
	payload, err := json.Marshal(job.RefreshRatingsPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeRefreshRatings, payload)

	_, err = s.scheduler.Register(
		s.jobConfig.RefreshRatingsCron,
		task,
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(1),
		asynq.Timeout(30*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register RefreshRatings job", err)
		return err
	}

	logger.Info("Registered RefreshRatings job", map[string]interface{}{
		"cron": s.jobConfig.RefreshRatingsCron,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
