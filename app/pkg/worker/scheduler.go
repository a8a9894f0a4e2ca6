package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"backend/gestion-platform/app/internal/config"
	"backend/gestion-platform/app/pkg/locker"
)

var ErrDuplicateJob = errors.New("job already registered")

type Scheduler interface {
	Register(ctx context.Context, jobs ...Job) error
	RunNow(name string) error
	Start()
	Shutdown() error
}

type DefaultScheduler struct {
	cron gocron.Scheduler
	log  *zap.Logger
	pool JobPool
	ids  map[string]uuid.UUID
}

// NewScheduler builds a scheduler. A nil locker runs every tick locally.
func NewScheduler(cfg config.WorkerConfig, log *zap.Logger, lock locker.Locker) (Scheduler, error) {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = 1
	}
	opts := []gocron.SchedulerOption{
		gocron.WithLimitConcurrentJobs(uint(poolSize), gocron.LimitModeWait),
		gocron.WithLogger(NewWorkerLog(log.Sugar())),
		gocron.WithStopTimeout(30 * time.Second),
	}
	if lock != nil {
		opts = append(opts, gocron.WithDistributedLocker(lock))
	}

	cron, err := gocron.NewScheduler(opts...)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &DefaultScheduler{
		cron: cron,
		log:  log,
		pool: NewJobPool(),
		ids:  map[string]uuid.UUID{},
	}, nil
}

func (d *DefaultScheduler) Register(ctx context.Context, jobs ...Job) error {
	for _, job := range jobs {
		if _, ok := d.ids[job.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateJob, job.Name)
		}
		id := JobID(job.Name)
		jobCtx := d.pool.NewJob(ctx, id, job.Name)

		_, err := d.cron.NewJob(
			job.Definition,
			gocron.NewTask(func() { d.run(jobCtx, job) }),
			gocron.WithName(job.Name),
			gocron.WithIdentifier(id),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			d.pool.StopJob(id)
			return fmt.Errorf("register job %s: %w", job.Name, err)
		}
		d.ids[job.Name] = id
		d.log.Info("Registered job", zap.String("job", job.Name), zap.String("id", id.String()))
	}
	return nil
}

// RunNow triggers a registered job outside its schedule.
func (d *DefaultScheduler) RunNow(name string) error {
	id, ok := d.ids[name]
	if !ok {
		return fmt.Errorf("job %s is not registered", name)
	}
	for _, j := range d.cron.Jobs() {
		if j.ID() == id {
			return j.RunNow()
		}
	}
	return fmt.Errorf("job %s is not scheduled", name)
}

func (d *DefaultScheduler) Start() {
	d.cron.Start()
}

func (d *DefaultScheduler) Shutdown() error {
	d.pool.StopAllJobs()
	return d.cron.Shutdown()
}

func (d *DefaultScheduler) run(ctx context.Context, job Job) {
	if ctx.Err() != nil {
		return
	}
	start := time.Now()
	if err := job.Run(ctx); err != nil {
		d.log.Error("Job failed",
			zap.String("job", job.Name),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return
	}
	d.log.Debug("Job finished", zap.String("job", job.Name), zap.Duration("duration", time.Since(start)))
}
