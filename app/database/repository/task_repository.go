package repository

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"backend/gestion-platform/app/database/constant/task"
	"backend/gestion-platform/app/database/entity"
	queryUtil "backend/gestion-platform/app/database/repository/query_utils"
	"backend/gestion-platform/app/internal/runtime"
)

type TaskRepository interface {
	List(ctx context.Context, filter TaskFilter) ([]entity.Task, int, error)
	Insert(ctx context.Context, task *entity.Task) (*entity.Task, error)
	Update(ctx context.Context, id int64, changes map[string]any) (*entity.Task, error)
	SoftDelete(ctx context.Context, id int64) (*entity.Task, error)
	FindByID(ctx context.Context, id int64) (*entity.Task, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	CountByPole(ctx context.Context) ([]PoleCount, error)
	ListOverdue(ctx context.Context, now time.Time) ([]entity.Task, error)
}

type DefaultTaskRepository struct {
	res runtime.Resource
}

func NewTaskRepository(res runtime.Resource) TaskRepository {
	return &DefaultTaskRepository{res: res}
}

// withUsernames selects the task columns plus the assignee and creator usernames.
func withUsernames(query *bun.SelectQuery) *bun.SelectQuery {
	return query.
		ColumnExpr("t.*").
		ColumnExpr("a.username AS assignee_username").
		ColumnExpr("c.username AS created_by_username").
		Join("LEFT JOIN users AS a ON a.id = t.assignee").
		Join("LEFT JOIN users AS c ON c.id = t.created_by")
}

func (r DefaultTaskRepository) List(ctx context.Context, filter TaskFilter) ([]entity.Task, int, error) {
	var tasks []entity.Task
	query := withUsernames(r.res.DB.ReplicaNewSelect().Model(&tasks)).
		OrderExpr("t.created_at DESC").
		OrderExpr("t.id DESC")

	query, err := queryUtil.ApplyFilter[entity.Task](query, filter)
	if err != nil {
		return nil, 0, err
	}
	if !filter.All {
		query = query.Where("t.is_active = ?", true)
	}
	if filter.CreatedBy != nil || filter.Assignee != nil {
		query = query.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			if filter.CreatedBy != nil {
				q = q.WhereOr("t.created_by = ?", *filter.CreatedBy)
			}
			if filter.Assignee != nil {
				q = q.WhereOr("t.assignee = ?", *filter.Assignee)
			}
			return q
		})
	}

	total, err := queryUtil.ScanList(ctx, query, &tasks, filter.Paging)
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (r DefaultTaskRepository) Insert(ctx context.Context, t *entity.Task) (*entity.Task, error) {
	err := r.res.DB.
		NewInsert().
		Model(t).
		Returning("*").
		Scan(ctx, t)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r DefaultTaskRepository) Update(ctx context.Context, id int64, changes map[string]any) (*entity.Task, error) {
	return queryUtil.PartialUpdate[entity.Task](ctx, r.res.DB, id, changes, TaskUpdatableColumns)
}

// SoftDelete marks the task inactive. Deleting an inactive task again is a no-op
// apart from the updated_at refresh.
func (r DefaultTaskRepository) SoftDelete(ctx context.Context, id int64) (*entity.Task, error) {
	var t entity.Task
	err := r.res.DB.
		NewUpdate().
		Model(&t).
		Set("is_active = ?", false).
		Set(queryUtil.TouchUpdatedAt).
		Where("id = ?", id).
		Returning("*").
		Scan(ctx, &t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r DefaultTaskRepository) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	t := new(entity.Task)
	err := withUsernames(r.res.DB.ReplicaNewSelect().Model(t)).
		Where("t.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r DefaultTaskRepository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.res.DB.
		ReplicaNewSelect().
		Model((*entity.Task)(nil)).
		ColumnExpr("t.status AS status").
		ColumnExpr("count(*) AS count").
		Where("t.is_active = ?", true).
		GroupExpr("t.status").
		OrderExpr("t.status").
		Scan(ctx, &counts)
	return counts, queryUtil.SkipNotFound(err)
}

func (r DefaultTaskRepository) CountByPole(ctx context.Context) ([]PoleCount, error) {
	var counts []PoleCount
	err := r.res.DB.
		ReplicaNewSelect().
		Model((*entity.Task)(nil)).
		ColumnExpr("t.pole AS pole").
		ColumnExpr("count(*) AS count").
		Where("t.is_active = ?", true).
		GroupExpr("t.pole").
		OrderExpr("t.pole").
		Scan(ctx, &counts)
	return counts, queryUtil.SkipNotFound(err)
}

func (r DefaultTaskRepository) ListOverdue(ctx context.Context, now time.Time) ([]entity.Task, error) {
	var tasks []entity.Task
	err := withUsernames(r.res.DB.ReplicaNewSelect().Model(&tasks)).
		Where("t.is_active = ?", true).
		Where("t.due_date IS NOT NULL").
		Where("t.due_date < ?", now).
		Where("t.status NOT IN (?)", bun.In([]task.Status{task.Completed, task.Rejected})).
		OrderExpr("t.pole ASC").
		OrderExpr("t.due_date ASC").
		Scan(ctx)
	return tasks, queryUtil.SkipNotFound(err)
}
