package manager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"backend/gestion-platform/app/database/entity"
	"backend/gestion-platform/app/database/repository"
	"backend/gestion-platform/app/internal/authz"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/pkg/redis"
)

const TaskStatsCacheKey = "stats:tasks:v1"

type TaskStats struct {
	Total       int                      `json:"total"`
	ByStatus    []repository.StatusCount `json:"by_status"`
	ByPole      []repository.PoleCount   `json:"by_pole"`
	GeneratedAt time.Time                `json:"generated_at"`
}

type OverdueGroup struct {
	Pole  string
	Tasks []entity.Task
}

type StatsManager interface {
	TaskStats(ctx context.Context, actor authz.Actor) (*TaskStats, error)
	Refresh(ctx context.Context) (*TaskStats, error)
	Invalidate(ctx context.Context)
	OverdueTasks(ctx context.Context, now time.Time) ([]OverdueGroup, error)
}

type DefaultStatsManager struct {
	res          runtime.Resource
	logger       *zap.Logger
	gate         *authz.Gate
	repositories *repository.Repositories
}

func NewStatsManager(res runtime.Resource, gate *authz.Gate, repositories *repository.Repositories) StatsManager {
	return &DefaultStatsManager{
		res:          res,
		logger:       res.Logger,
		gate:         gate,
		repositories: repositories,
	}
}

// TaskStats serves the dashboard counters from Redis, computing them on a miss.
func (d *DefaultStatsManager) TaskStats(ctx context.Context, actor authz.Actor) (*TaskStats, error) {
	if err := d.gate.Authorize(actor, authz.TaskStats); err != nil {
		return nil, err
	}

	var stats TaskStats
	err := redis.Wrap(ctx, d.res.Redis, TaskStatsCacheKey, &stats, d.res.Config.CacheConfig.StatsTTL, func() (TaskStats, error) {
		computed, err := d.compute(ctx)
		if err != nil {
			return TaskStats{}, err
		}
		return *computed, nil
	})
	if errors.Is(err, redis.ErrCacheWrite) {
		d.logger.Warn("failed to cache task stats", zap.Error(err))
		return &stats, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (d *DefaultStatsManager) Refresh(ctx context.Context) (*TaskStats, error) {
	stats, err := d.compute(ctx)
	if err != nil {
		return nil, err
	}
	if err := d.res.Redis.Set(ctx, TaskStatsCacheKey, stats, d.res.Config.CacheConfig.StatsTTL); err != nil {
		return nil, fmt.Errorf("store task stats: %w", err)
	}
	return stats, nil
}

// Invalidate drops the cached counters. A failure only delays freshness until the TTL expires.
func (d *DefaultStatsManager) Invalidate(ctx context.Context) {
	if err := d.res.Redis.Delete(ctx, TaskStatsCacheKey); err != nil {
		d.logger.Warn("failed to invalidate task stats", zap.Error(err))
	}
}

func (d *DefaultStatsManager) compute(ctx context.Context) (*TaskStats, error) {
	byStatus, err := d.repositories.TaskRepository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tasks by status: %w", err)
	}
	byPole, err := d.repositories.TaskRepository.CountByPole(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tasks by pole: %w", err)
	}

	total := 0
	for _, c := range byStatus {
		total += c.Count
	}
	if byStatus == nil {
		byStatus = []repository.StatusCount{}
	}
	if byPole == nil {
		byPole = []repository.PoleCount{}
	}
	return &TaskStats{
		Total:       total,
		ByStatus:    byStatus,
		ByPole:      byPole,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// OverdueTasks groups active, unfinished tasks past their due date by pole.
func (d *DefaultStatsManager) OverdueTasks(ctx context.Context, now time.Time) ([]OverdueGroup, error) {
	tasks, err := d.repositories.TaskRepository.ListOverdue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list overdue tasks: %w", err)
	}

	var groups []OverdueGroup
	for _, t := range tasks {
		if n := len(groups); n > 0 && groups[n-1].Pole == t.Pole {
			groups[n-1].Tasks = append(groups[n-1].Tasks, t)
			continue
		}
		groups = append(groups, OverdueGroup{Pole: t.Pole, Tasks: []entity.Task{t}})
	}
	return groups, nil
}
