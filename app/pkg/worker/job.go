package worker

import (
	"context"
	"sync"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	ctxutil "backend/gestion-platform/app/pkg/util/context"
)

const JobNameKey ctxutil.ContextKey[string] = "background_job_name"

var jobNamespace = uuid.MustParse("6f1c7a52-3d0e-4b8e-9a57-2f0c1e5b8d41")

// Job is a recurring background job.
type Job struct {
	Name       string
	Definition gocron.JobDefinition
	Run        func(ctx context.Context) error
}

// JobID is derived from the name so every replica registers the same identifier.
func JobID(name string) uuid.UUID {
	return uuid.NewSHA1(jobNamespace, []byte(name))
}

type runningJob struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// JobPool owns the context of every registered job so Shutdown can cancel runs in flight.
type JobPool struct {
	jobs map[uuid.UUID]runningJob
	mu   *sync.RWMutex
}

func NewJobPool() JobPool {
	return JobPool{
		jobs: make(map[uuid.UUID]runningJob),
		mu:   &sync.RWMutex{},
	}
}

func (jp *JobPool) NewJob(ctx context.Context, id uuid.UUID, name string) context.Context {
	// Decouple from the caller so a finished request does not stop the job.
	ctx = context.WithoutCancel(ctx)
	ctx = JobNameKey.Set(ctx, name)
	ctx, cancel := context.WithCancel(ctx)

	jp.mu.Lock()
	defer jp.mu.Unlock()
	if prev, ok := jp.jobs[id]; ok {
		prev.cancel()
	}
	jp.jobs[id] = runningJob{ctx: ctx, cancel: cancel}
	return ctx
}

func (jp JobPool) IsJobValid(id uuid.UUID) bool {
	jp.mu.RLock()
	defer jp.mu.RUnlock()
	_, ok := jp.jobs[id]
	return ok
}

func (jp *JobPool) StopJob(id uuid.UUID) {
	jp.mu.Lock()
	defer jp.mu.Unlock()
	if job, ok := jp.jobs[id]; ok {
		job.cancel()
		delete(jp.jobs, id)
	}
}

func (jp *JobPool) StopAllJobs() {
	jp.mu.Lock()
	defer jp.mu.Unlock()
	for _, job := range jp.jobs {
		job.cancel()
	}
	jp.jobs = make(map[uuid.UUID]runningJob)
}
