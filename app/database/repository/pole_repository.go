package repository

import (
	"context"

	"backend/gestion-platform/app/database/entity"
	queryUtil "backend/gestion-platform/app/database/repository/query_utils"
	"backend/gestion-platform/app/internal/runtime"
)

type PoleRepository interface {
	List(ctx context.Context, filter PoleFilter) ([]entity.Pole, int, error)
	Insert(ctx context.Context, pole *entity.Pole) (*entity.Pole, error)
	Update(ctx context.Context, id int64, changes map[string]any) (*entity.Pole, error)
	SoftDelete(ctx context.Context, id int64) (*entity.Pole, error)
	FindByID(ctx context.Context, id int64) (*entity.Pole, error)
	FindByName(ctx context.Context, name string) (*entity.Pole, error)
}

type DefaultPoleRepository struct {
	res runtime.Resource
}

func NewPoleRepository(res runtime.Resource) PoleRepository {
	return &DefaultPoleRepository{res: res}
}

func (r DefaultPoleRepository) List(ctx context.Context, filter PoleFilter) ([]entity.Pole, int, error) {
	var poles []entity.Pole
	query := r.res.DB.
		ReplicaNewSelect().
		Model(&poles).
		Order("p.name ASC")
	if !filter.All {
		query = query.Where("p.is_active = ?", true)
	}

	total, err := queryUtil.ScanList(ctx, query, &poles, filter.Paging)
	if err != nil {
		return nil, 0, err
	}
	return poles, total, nil
}

func (r DefaultPoleRepository) Insert(ctx context.Context, pole *entity.Pole) (*entity.Pole, error) {
	err := r.res.DB.
		NewInsert().
		Model(pole).
		Returning("*").
		Scan(ctx, pole)
	if err != nil {
		return nil, err
	}
	return pole, nil
}

func (r DefaultPoleRepository) Update(ctx context.Context, id int64, changes map[string]any) (*entity.Pole, error) {
	return queryUtil.PartialUpdate[entity.Pole](ctx, r.res.DB, id, changes, PoleUpdatableColumns)
}

func (r DefaultPoleRepository) SoftDelete(ctx context.Context, id int64) (*entity.Pole, error) {
	var p entity.Pole
	err := r.res.DB.
		NewUpdate().
		Model(&p).
		Set("is_active = ?", false).
		Set(queryUtil.TouchUpdatedAt).
		Where("id = ?", id).
		Returning("*").
		Scan(ctx, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r DefaultPoleRepository) FindByID(ctx context.Context, id int64) (*entity.Pole, error) {
	p := new(entity.Pole)
	err := r.res.DB.
		ReplicaNewSelect().
		Model(p).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r DefaultPoleRepository) FindByName(ctx context.Context, name string) (*entity.Pole, error) {
	p := new(entity.Pole)
	err := r.res.DB.
		ReplicaNewSelect().
		Model(p).
		Where("lower(name) = lower(?)", name).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return p, nil
}
