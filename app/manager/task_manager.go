package manager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"backend/gestion-platform/app/api/client/request"
	"backend/gestion-platform/app/database/constant/task"
	"backend/gestion-platform/app/database/entity"
	"backend/gestion-platform/app/database/repository"
	"backend/gestion-platform/app/internal/authz"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/pkg/notifier"
	"backend/gestion-platform/app/pkg/util/numeric"
	"backend/gestion-platform/app/pkg/util/optional"
)

type TaskManager interface {
	List(ctx context.Context, actor authz.Actor, req request.ListTasksRequest) ([]entity.Task, int, error)
	Get(ctx context.Context, actor authz.Actor, id int64) (*entity.Task, error)
	Create(ctx context.Context, actor authz.Actor, req request.CreateTaskRequest) (*entity.Task, error)
	Update(ctx context.Context, actor authz.Actor, id int64, req request.UpdateTaskRequest) (*entity.Task, error)
	Delete(ctx context.Context, actor authz.Actor, id int64) (*entity.Task, error)
	Validate(ctx context.Context, actor authz.Actor, id int64, action request.ValidationAction) (*entity.Task, error)
}

type DefaultTaskManager struct {
	logger        *zap.Logger
	gate          *authz.Gate
	stats         StatsManager
	notifier      notifier.Notifier
	notifyTimeout time.Duration
	repositories  *repository.Repositories
}

func NewTaskManager(
	res runtime.Resource,
	gate *authz.Gate,
	stats StatsManager,
	n notifier.Notifier,
	repositories *repository.Repositories,
) TaskManager {
	timeout := res.Config.NotifierConfig.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DefaultTaskManager{
		logger:        res.Logger,
		gate:          gate,
		stats:         stats,
		notifier:      n,
		notifyTimeout: timeout,
		repositories:  repositories,
	}
}

func (d *DefaultTaskManager) List(ctx context.Context, actor authz.Actor, req request.ListTasksRequest) ([]entity.Task, int, error) {
	if err := d.gate.Authorize(actor, authz.TaskList); err != nil {
		return nil, 0, err
	}
	if req.All {
		if err := d.gate.Authorize(actor, authz.TaskListAll); err != nil {
			return nil, 0, err
		}
	}

	filter := repository.TaskFilter{All: req.All, Paging: req.ToPage()}
	var invalid []string
	if req.Status != "" {
		s, err := task.ParseStatus(req.Status)
		if err != nil {
			invalid = append(invalid, "status")
		}
		filter.Status = &s
	}
	if req.Priority != "" {
		p, err := task.ParsePriority(req.Priority)
		if err != nil {
			invalid = append(invalid, "priority")
		}
		filter.Priority = &p
	}
	if req.Pole != "" {
		filter.Pole = &req.Pole
	}
	if req.CreatedBy != "" {
		id, err := numeric.ParseID(req.CreatedBy)
		if err != nil {
			invalid = append(invalid, "created_by")
		}
		filter.CreatedBy = &id
	}
	if req.Assignee != "" {
		id, err := numeric.ParseID(req.Assignee)
		if err != nil {
			invalid = append(invalid, "assignee")
		}
		filter.Assignee = &id
	}
	if len(invalid) > 0 {
		return nil, 0, InvalidFields(invalid...)
	}

	tasks, total, err := d.repositories.TaskRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, storeError(err, "task")
	}
	return tasks, total, nil
}

// Get returns the task even when it has been soft-deleted.
func (d *DefaultTaskManager) Get(ctx context.Context, actor authz.Actor, id int64) (*entity.Task, error) {
	if err := d.gate.Authorize(actor, authz.TaskView); err != nil {
		return nil, err
	}
	t, err := d.repositories.TaskRepository.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "task")
	}
	return t, nil
}

func (d *DefaultTaskManager) Create(ctx context.Context, actor authz.Actor, req request.CreateTaskRequest) (*entity.Task, error) {
	if err := d.gate.Authorize(actor, authz.TaskCreate); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	pole := strings.TrimSpace(req.Pole)
	if missing := missingStrings(map[string]string{
		"title":    title,
		"status":   req.Status,
		"priority": req.Priority,
		"pole":     pole,
	}); len(missing) > 0 {
		return nil, MissingFields(missing...)
	}

	var invalid []string
	status, err := task.ParseStatus(req.Status)
	if err != nil {
		invalid = append(invalid, "status")
	}
	priority, err := task.ParsePriority(req.Priority)
	if err != nil {
		invalid = append(invalid, "priority")
	}
	if req.StartDate != nil && req.DueDate != nil && req.DueDate.Before(req.StartDate.Time) {
		invalid = append(invalid, "due_date")
	}
	if len(invalid) > 0 {
		return nil, InvalidFields(invalid...)
	}

	var assignee *int64
	if req.Assignee != nil {
		id := req.Assignee.Int64()
		if err := d.checkAssignee(ctx, id); err != nil {
			return nil, err
		}
		assignee = &id
	}

	t, err := d.repositories.TaskRepository.Insert(ctx, &entity.Task{
		Title:       title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		Pole:        pole,
		Assignee:    assignee,
		CreatedBy:   actor.ID,
		StartDate:   req.StartDate.TimePtr(),
		DueDate:     req.DueDate.TimePtr(),
		MediaLink:   trimmedOrNil(req.MediaLink),
		Type:        trimmedOrNil(req.Type),
		IsActive:    true,
	})
	if err != nil {
		return nil, storeError(err, "task")
	}
	d.stats.Invalidate(ctx)
	if t.Assignee != nil {
		d.notifyAssignment(ctx, t)
	}

	d.logger.Info("task created",
		zap.String("operation", "task.create"),
		zap.Int64("actor_id", actor.ID),
		zap.Int64("task_id", t.ID),
	)
	return t, nil
}

func (d *DefaultTaskManager) Update(
	ctx context.Context,
	actor authz.Actor,
	id int64,
	req request.UpdateTaskRequest,
) (*entity.Task, error) {
	current, err := d.repositories.TaskRepository.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "task")
	}
	if err := d.gate.Authorize(actor, authz.TaskUpdate, owners(current)...); err != nil {
		return nil, err
	}

	changes, err := d.taskChanges(ctx, req)
	if err != nil {
		return nil, err
	}

	if _, err := d.repositories.TaskRepository.Update(ctx, id, changes); err != nil {
		return nil, storeError(err, "task")
	}
	d.stats.Invalidate(ctx)
	t, err := d.reload(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Assignee != nil && !sameAssignee(current.Assignee, t.Assignee) {
		d.notifyAssignment(ctx, t)
	}

	d.logger.Info("task updated",
		zap.String("operation", "task.update"),
		zap.Int64("actor_id", actor.ID),
		zap.Int64("task_id", id),
		changedColumns(changes),
	)
	return t, nil
}

func (d *DefaultTaskManager) taskChanges(ctx context.Context, req request.UpdateTaskRequest) (map[string]any, error) {
	changes := make(map[string]any)
	var invalid []string

	if req.Title.Set {
		if !req.Title.Valid || strings.TrimSpace(req.Title.Value) == "" {
			invalid = append(invalid, "title")
		} else {
			changes["title"] = strings.TrimSpace(req.Title.Value)
		}
	}
	if req.Status.Set {
		s, err := task.ParseStatus(req.Status.Value)
		if !req.Status.Valid || err != nil {
			invalid = append(invalid, "status")
		} else {
			changes["status"] = s
		}
	}
	if req.Priority.Set {
		p, err := task.ParsePriority(req.Priority.Value)
		if !req.Priority.Valid || err != nil {
			invalid = append(invalid, "priority")
		} else {
			changes["priority"] = p
		}
	}
	if req.Pole.Set {
		if !req.Pole.Valid || strings.TrimSpace(req.Pole.Value) == "" {
			invalid = append(invalid, "pole")
		} else {
			changes["pole"] = strings.TrimSpace(req.Pole.Value)
		}
	}
	if req.IsActive.Set {
		if !req.IsActive.Valid {
			invalid = append(invalid, "is_active")
		} else {
			changes["is_active"] = req.IsActive.Value
		}
	}
	if len(invalid) > 0 {
		return nil, InvalidFields(invalid...)
	}

	if req.Assignee.Set && req.Assignee.Valid {
		if err := d.checkAssignee(ctx, req.Assignee.Value.Int64()); err != nil {
			return nil, err
		}
	}
	optional.Put(changes, "assignee", req.Assignee, func(v numeric.ID) any { return v.Int64() })
	optional.Put(changes, "description", req.Description)
	optional.Put(changes, "start_date", req.StartDate, func(v request.Date) any { return v.Time })
	optional.Put(changes, "due_date", req.DueDate, func(v request.Date) any { return v.Time })
	optional.Put(changes, "media_link", req.MediaLink, trimmedValue)
	optional.Put(changes, "type", req.Type, trimmedValue)
	return changes, nil
}

func (d *DefaultTaskManager) Delete(ctx context.Context, actor authz.Actor, id int64) (*entity.Task, error) {
	current, err := d.repositories.TaskRepository.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "task")
	}
	if err := d.gate.Authorize(actor, authz.TaskDelete, current.CreatedBy); err != nil {
		return nil, err
	}

	if _, err := d.repositories.TaskRepository.SoftDelete(ctx, id); err != nil {
		return nil, storeError(err, "task")
	}
	d.stats.Invalidate(ctx)
	t, err := d.reload(ctx, id)
	if err != nil {
		return nil, err
	}

	d.logger.Info("task deleted",
		zap.String("operation", "task.delete"),
		zap.Int64("actor_id", actor.ID),
		zap.Int64("task_id", id),
	)
	return t, nil
}

// Validate approves a task into in_progress or rejects it.
func (d *DefaultTaskManager) Validate(
	ctx context.Context,
	actor authz.Actor,
	id int64,
	action request.ValidationAction,
) (*entity.Task, error) {
	if err := d.gate.Authorize(actor, authz.TaskValidate); err != nil {
		return nil, err
	}

	var status task.Status
	switch action {
	case request.ActionApprove:
		status = task.InProgress
	case request.ActionReject:
		status = task.Rejected
	default:
		return nil, InvalidFields("action")
	}

	if _, err := d.repositories.TaskRepository.Update(ctx, id, map[string]any{"status": status}); err != nil {
		return nil, storeError(err, "task")
	}
	d.stats.Invalidate(ctx)
	t, err := d.reload(ctx, id)
	if err != nil {
		return nil, err
	}

	d.logger.Info("task validated",
		zap.String("operation", "task.validate"),
		zap.Int64("actor_id", actor.ID),
		zap.Int64("task_id", id),
		zap.String("status", string(status)),
	)
	return t, nil
}

// reload reads a task back after a write. Write paths return the bare row,
// the read joins the assignee and creator usernames.
func (d *DefaultTaskManager) reload(ctx context.Context, id int64) (*entity.Task, error) {
	t, err := d.repositories.TaskRepository.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "task")
	}
	return t, nil
}

func (d *DefaultTaskManager) checkAssignee(ctx context.Context, id int64) error {
	if _, err := d.repositories.UserRepository.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return InvalidFields("assignee")
		}
		return fmt.Errorf("check assignee %d: %w", id, err)
	}
	return nil
}

// notifyAssignment runs outside the request so a slow webhook never delays the response.
func (d *DefaultTaskManager) notifyAssignment(ctx context.Context, t *entity.Task) {
	event := notifier.NewAssignmentEvent(t.ID, t.Title, *t.Assignee, t.Pole)
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.notifyTimeout)
	go func() {
		defer cancel()
		if err := d.notifier.NotifyAssignment(ctx, event); err != nil {
			d.logger.Warn("failed to notify assignment",
				zap.String("event_id", event.ID),
				zap.Int64("task_id", event.TaskID),
				zap.Error(err),
			)
		}
	}()
}

func owners(t *entity.Task) []int64 {
	ids := []int64{t.CreatedBy}
	if t.Assignee != nil {
		ids = append(ids, *t.Assignee)
	}
	return ids
}

func sameAssignee(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
