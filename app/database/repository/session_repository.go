package repository

import (
	"context"

	"backend/gestion-platform/app/database/entity"
	"backend/gestion-platform/app/internal/runtime"
)

type SessionRepository interface {
	Insert(ctx context.Context, session *entity.Session) (*entity.Session, error)
	FindByToken(ctx context.Context, token string) (*entity.Session, error)
	RevokeByToken(ctx context.Context, token string) error
	RevokeByUserID(ctx context.Context, userID int64) error
}

type DefaultSessionRepository struct {
	res runtime.Resource
}

func NewSessionRepository(res runtime.Resource) SessionRepository {
	return &DefaultSessionRepository{res: res}
}

func (r DefaultSessionRepository) Insert(ctx context.Context, session *entity.Session) (*entity.Session, error) {
	err := r.res.DB.NewInsert().Model(session).Returning("*").Scan(ctx, session)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (r DefaultSessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	var session entity.Session
	err := r.res.DB.NewSelect().Model(&session).Where("token = ?", token).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r DefaultSessionRepository) RevokeByToken(ctx context.Context, token string) error {
	_, err := r.res.DB.NewUpdate().
		Model((*entity.Session)(nil)).
		Set("revoked = ?", true).
		Set("updated_at = current_timestamp").
		Where("token = ?", token).
		Where("revoked = ?", false).
		Exec(ctx)
	return err
}

func (r DefaultSessionRepository) RevokeByUserID(ctx context.Context, userID int64) error {
	_, err := r.res.DB.NewUpdate().
		Model((*entity.Session)(nil)).
		Set("revoked = ?", true).
		Set("updated_at = current_timestamp").
		Where("user_id = ?", userID).
		Where("revoked = ?", false).
		Exec(ctx)
	return err
}
