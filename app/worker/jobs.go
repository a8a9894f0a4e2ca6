package worker

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"backend/gestion-platform/app/database/entity"
	"backend/gestion-platform/app/internal/config"
	"backend/gestion-platform/app/manager"
	"backend/gestion-platform/app/pkg/util/collection"
	"backend/gestion-platform/app/pkg/worker"
)

const (
	RefreshTaskStatsJob  = "refresh-task-stats"
	OverdueTaskReportJob = "overdue-task-report"
)

type Jobs struct {
	logger *zap.Logger
	stats  manager.StatsManager
	now    func() time.Time
}

func NewJobs(logger *zap.Logger, stats manager.StatsManager) *Jobs {
	return &Jobs{
		logger: logger.With(zap.String("component", "jobs")),
		stats:  stats,
		now:    time.Now,
	}
}

// Definitions binds the jobs to their configured schedules.
func (j *Jobs) Definitions(cfg config.WorkerConfig) []worker.Job {
	interval := cfg.StatsRefreshInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return []worker.Job{
		{
			Name:       RefreshTaskStatsJob,
			Definition: gocron.DurationJob(interval),
			Run:        j.RefreshTaskStats,
		},
		{
			Name:       OverdueTaskReportJob,
			Definition: gocron.CronJob(cfg.OverdueReportCron, false),
			Run:        j.OverdueTaskReport,
		},
	}
}

// RefreshTaskStats recomputes the task counters and stores them in the cache.
func (j *Jobs) RefreshTaskStats(ctx context.Context) error {
	stats, err := j.stats.Refresh(ctx)
	if err != nil {
		return err
	}
	j.logger.Debug("Task stats refreshed",
		zap.Int("total", stats.Total),
		zap.Int("poles", len(stats.ByPole)),
	)
	return nil
}

// OverdueTaskReport logs active tasks past their due date, one entry per pole.
func (j *Jobs) OverdueTaskReport(ctx context.Context) error {
	groups, err := j.stats.OverdueTasks(ctx, j.now())
	if err != nil {
		return err
	}

	total := 0
	for _, g := range groups {
		ids := collection.Map(g.Tasks, func(t entity.Task) int64 { return t.ID })
		total += len(ids)
		j.logger.Warn("Overdue tasks",
			zap.String("pole", g.Pole),
			zap.Int("count", len(ids)),
			zap.Int64s("task_ids", ids),
		)
	}
	j.logger.Info("Overdue task report done", zap.Int("overdue", total), zap.Int("poles", len(groups)))
	return nil
}
