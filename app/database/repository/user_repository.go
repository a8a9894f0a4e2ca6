package repository

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"backend/gestion-platform/app/database/entity"
	queryUtil "backend/gestion-platform/app/database/repository/query_utils"
	"backend/gestion-platform/app/internal/runtime"
)

type UserRepository interface {
	List(ctx context.Context, filter UserFilter) ([]entity.User, int, error)
	Insert(ctx context.Context, user *entity.User) (*entity.User, error)
	Update(ctx context.Context, id int64, changes map[string]any) (*entity.User, error)
	SetActive(ctx context.Context, id int64, active bool) (*entity.User, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	DeleteCascade(ctx context.Context, id int64) (*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (usernameTaken bool, emailTaken bool, err error)
}

type DefaultUserRepository struct {
	res runtime.Resource
}

func NewUserRepository(res runtime.Resource) UserRepository {
	return &DefaultUserRepository{res: res}
}

func (r DefaultUserRepository) List(ctx context.Context, filter UserFilter) ([]entity.User, int, error) {
	var users []entity.User
	query := r.res.DB.
		ReplicaNewSelect().
		Model(&users).
		Order("u.username ASC")

	query, err := queryUtil.ApplyFilter[entity.User](query, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := queryUtil.ScanList(ctx, query, &users, filter.Paging)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r DefaultUserRepository) Insert(ctx context.Context, user *entity.User) (*entity.User, error) {
	err := r.res.DB.
		NewInsert().
		Model(user).
		Returning("*").
		Scan(ctx, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r DefaultUserRepository) Update(ctx context.Context, id int64, changes map[string]any) (*entity.User, error) {
	return queryUtil.PartialUpdate[entity.User](ctx, r.res.DB, id, changes, UserUpdatableColumns)
}

func (r DefaultUserRepository) SetActive(ctx context.Context, id int64, active bool) (*entity.User, error) {
	var u entity.User
	err := r.res.DB.
		NewUpdate().
		Model(&u).
		Set("is_active = ?", active).
		Set(queryUtil.TouchUpdatedAt).
		Where("id = ?", id).
		Returning("*").
		Scan(ctx, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r DefaultUserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	_, err := r.res.DB.
		NewUpdate().
		Model((*entity.User)(nil)).
		Set("password = ?", hash).
		Set(queryUtil.TouchUpdatedAt).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

// DeleteCascade removes the user together with the tasks they created, clears
// their assignments and drops their sessions. Nothing is committed when the
// user does not exist.
func (r DefaultUserRepository) DeleteCascade(ctx context.Context, id int64) (*entity.User, error) {
	var u entity.User
	err := r.res.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*entity.Task)(nil)).
			Where("created_by = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete created tasks: %w", err)
		}

		if _, err := tx.NewUpdate().
			Model((*entity.Task)(nil)).
			Set("assignee = NULL").
			Set(queryUtil.TouchUpdatedAt).
			Where("assignee = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("clear assignments: %w", err)
		}

		if _, err := tx.NewDelete().
			Model((*entity.Session)(nil)).
			Where("user_id = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}

		return tx.NewDelete().
			Model(&u).
			Where("id = ?", id).
			Returning("*").
			Scan(ctx, &u)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r DefaultUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	u := new(entity.User)
	err := r.res.DB.
		ReplicaNewSelect().
		Model(u).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r DefaultUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	u := new(entity.User)
	err := r.res.DB.
		ReplicaNewSelect().
		Model(u).
		Where("username = ?", username).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r DefaultUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := new(entity.User)
	err := r.res.DB.
		ReplicaNewSelect().
		Model(u).
		Where("lower(email) = lower(?)", email).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// FindByIdentifier matches either the email or the username. An email match
// wins when one account's username equals another account's email. Reads go
// to the primary so a just-approved account can log in immediately.
func (r DefaultUserRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	u := new(entity.User)
	err := r.res.DB.
		NewSelect().
		Model(u).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("lower(email) = lower(?)", identifier).
				WhereOr("username = ?", identifier)
		}).
		OrderExpr("CASE WHEN lower(email) = lower(?) THEN 0 ELSE 1 END", identifier).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r DefaultUserRepository) ExistsByUsernameOrEmail(
	ctx context.Context,
	username, email string,
) (usernameTaken bool, emailTaken bool, err error) {
	usernameTaken, err = queryUtil.CheckExist[entity.User](ctx, r.res.DB, struct {
		Username string `mapstructure:"username"`
	}{Username: username})
	if err != nil {
		return false, false, err
	}
	emailTaken, err = r.res.DB.
		NewSelect().
		Model((*entity.User)(nil)).
		Where("lower(email) = lower(?)", email).
		Exists(ctx)
	if err != nil {
		return false, false, err
	}
	return usernameTaken, emailTaken, nil
}
