package manager

import (
	"context"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"backend/gestion-platform/app/api/client/request"
	"backend/gestion-platform/app/database/entity"
	"backend/gestion-platform/app/database/repository"
	"backend/gestion-platform/app/internal/authz"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/pkg/util/optional"
)

type PoleManager interface {
	List(ctx context.Context, actor authz.Actor, req request.ListPolesRequest) ([]entity.Pole, int, error)
	Get(ctx context.Context, actor authz.Actor, id int64) (*entity.Pole, error)
	Create(ctx context.Context, actor authz.Actor, req request.CreatePoleRequest) (*entity.Pole, error)
	Update(ctx context.Context, actor authz.Actor, id int64, req request.UpdatePoleRequest) (*entity.Pole, error)
	Delete(ctx context.Context, actor authz.Actor, id int64) (*entity.Pole, error)
}

type DefaultPoleManager struct {
	logger       *zap.Logger
	gate         *authz.Gate
	repositories *repository.Repositories
}

func NewPoleManager(res runtime.Resource, gate *authz.Gate, repositories *repository.Repositories) PoleManager {
	return &DefaultPoleManager{
		logger:       res.Logger,
		gate:         gate,
		repositories: repositories,
	}
}

func (d *DefaultPoleManager) List(ctx context.Context, actor authz.Actor, req request.ListPolesRequest) ([]entity.Pole, int, error) {
	if err := d.gate.Authorize(actor, authz.PoleList); err != nil {
		return nil, 0, err
	}
	if req.All {
		if err := d.gate.Authorize(actor, authz.PoleListAll); err != nil {
			return nil, 0, err
		}
	}
	poles, total, err := d.repositories.PoleRepository.List(ctx, repository.PoleFilter{
		All:    req.All,
		Paging: req.ToPage(),
	})
	if err != nil {
		return nil, 0, storeError(err, "pole")
	}
	return poles, total, nil
}

func (d *DefaultPoleManager) Get(ctx context.Context, actor authz.Actor, id int64) (*entity.Pole, error) {
	if err := d.gate.Authorize(actor, authz.PoleView); err != nil {
		return nil, err
	}
	p, err := d.repositories.PoleRepository.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "pole")
	}
	return p, nil
}

func (d *DefaultPoleManager) Create(ctx context.Context, actor authz.Actor, req request.CreatePoleRequest) (*entity.Pole, error) {
	if err := d.gate.Authorize(actor, authz.PoleCreate); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, MissingFields("name")
	}
	poleSlug := slug.Make(name)
	if poleSlug == "" {
		return nil, InvalidFields("name")
	}

	p, err := d.repositories.PoleRepository.Insert(ctx, &entity.Pole{
		Name:        name,
		Slug:        poleSlug,
		Description: trimmedOrNil(req.Description),
		IsActive:    true,
	})
	if err != nil {
		return nil, storeError(err, "pole")
	}

	d.logger.Info("pole created",
		zap.String("operation", "pole.create"),
		zap.Int64("actor_id", actor.ID),
		zap.Int64("pole_id", p.ID),
		zap.String("slug", p.Slug),
	)
	return p, nil
}

// Update regenerates the slug whenever the name changes.
func (d *DefaultPoleManager) Update(
	ctx context.Context,
	actor authz.Actor,
	id int64,
	req request.UpdatePoleRequest,
) (*entity.Pole, error) {
	if err := d.gate.Authorize(actor, authz.PoleUpdate); err != nil {
		return nil, err
	}

	changes := make(map[string]any)
	if req.Name.Set {
		name := strings.TrimSpace(req.Name.Value)
		if !req.Name.Valid || name == "" || slug.Make(name) == "" {
			return nil, InvalidFields("name")
		}
		changes["name"] = name
		changes["slug"] = slug.Make(name)
	}
	if req.IsActive.Set {
		if !req.IsActive.Valid {
			return nil, InvalidFields("is_active")
		}
		changes["is_active"] = req.IsActive.Value
	}
	optional.Put(changes, "description", req.Description)

	p, err := d.repositories.PoleRepository.Update(ctx, id, changes)
	if err != nil {
		return nil, storeError(err, "pole")
	}

	d.logger.Info("pole updated",
		zap.String("operation", "pole.update"),
		zap.Int64("actor_id", actor.ID),
		zap.Int64("pole_id", id),
		changedColumns(changes),
	)
	return p, nil
}

func (d *DefaultPoleManager) Delete(ctx context.Context, actor authz.Actor, id int64) (*entity.Pole, error) {
	if err := d.gate.Authorize(actor, authz.PoleDelete); err != nil {
		return nil, err
	}
	p, err := d.repositories.PoleRepository.SoftDelete(ctx, id)
	if err != nil {
		return nil, storeError(err, "pole")
	}

	d.logger.Info("pole deleted",
		zap.String("operation", "pole.delete"),
		zap.Int64("actor_id", actor.ID),
		zap.Int64("pole_id", id),
	)
	return p, nil
}
