package worker

import (
	"context"

	"go.uber.org/zap"

	"backend/gestion-platform/app/database/repository"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/manager"
	"backend/gestion-platform/app/pkg/locker"
	"backend/gestion-platform/app/pkg/worker"
)

type Server runtime.Resource

// Start registers the background jobs and blocks until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	res := runtime.Resource(*s)
	cfg := res.Config.WorkerConfig

	repositories := repository.NewRepositories(res)
	managers := manager.NewManagers(res, repositories)

	var lock locker.Locker
	if cfg.DistributedLock && res.Redis != nil && res.Redis.GetUniversalClient() != nil {
		l, err := locker.NewLocker(res.Redis.GetUniversalClient(), 0)
		if err != nil {
			return err
		}
		lock = l
	}

	scheduler, err := worker.NewScheduler(cfg, s.Logger, lock)
	if err != nil {
		return err
	}

	jobs := NewJobs(s.Logger, managers.StatsManager)
	if err := scheduler.Register(ctx, jobs.Definitions(cfg)...); err != nil {
		return err
	}

	s.Logger.Info("Starting worker",
		zap.Int("pool_size", cfg.PoolSize),
		zap.Bool("distributed_lock", lock != nil),
	)
	scheduler.Start()
	// Warm the stats cache instead of waiting for the first interval.
	if err := scheduler.RunNow(RefreshTaskStatsJob); err != nil {
		s.Logger.Warn("Could not trigger initial stats refresh", zap.Error(err))
	}

	<-ctx.Done()
	s.Logger.Info("Shutting down worker")
	if err := scheduler.Shutdown(); err != nil {
		s.Logger.Error("Worker shutdown failed", zap.Error(err))
		return err
	}
	s.Logger.Info("Worker stopped")
	return nil
}
