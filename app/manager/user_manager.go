package manager

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"backend/gestion-platform/app/api/client/request"
	"backend/gestion-platform/app/database/constant/role"
	"backend/gestion-platform/app/database/entity"
	"backend/gestion-platform/app/database/repository"
	"backend/gestion-platform/app/internal/authz"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/pkg/password"
	"backend/gestion-platform/app/pkg/util/optional"
)

type UserManager interface {
	List(ctx context.Context, actor authz.Actor, req request.ListUsersRequest) ([]entity.User, int, error)
	Get(ctx context.Context, actor authz.Actor, id int64) (*entity.User, error)
	Create(ctx context.Context, actor authz.Actor, req request.CreateUserRequest) (*entity.User, error)
	Update(ctx context.Context, actor authz.Actor, id int64, req request.UpdateUserRequest) (*entity.User, error)
	Delete(ctx context.Context, actor authz.Actor, id int64) (*entity.User, error)
}

type DefaultUserManager struct {
	logger       *zap.Logger
	hasher       password.Hasher
	gate         *authz.Gate
	stats        StatsManager
	repositories *repository.Repositories
}

func NewUserManager(
	res runtime.Resource,
	hasher password.Hasher,
	gate *authz.Gate,
	stats StatsManager,
	repositories *repository.Repositories,
) UserManager {
	return &DefaultUserManager{
		logger:       res.Logger,
		hasher:       hasher,
		gate:         gate,
		stats:        stats,
		repositories: repositories,
	}
}

// List returns active users unless the caller may see every account and asks for it.
func (d *DefaultUserManager) List(ctx context.Context, actor authz.Actor, req request.ListUsersRequest) ([]entity.User, int, error) {
	if err := d.gate.Authorize(actor, authz.UserList); err != nil {
		return nil, 0, err
	}

	filter := repository.UserFilter{Paging: req.ToPage()}
	if req.Role != "" {
		r, err := role.Parse(req.Role)
		if err != nil {
			return nil, 0, InvalidFields("role")
		}
		filter.Role = &r
	}
	if req.Pole != "" {
		filter.Pole = &req.Pole
	}
	if req.Email != "" {
		filter.Email = &req.Email
	}

	active := true
	if req.IsActive != "" {
		parsed, err := strconv.ParseBool(req.IsActive)
		if err != nil {
			return nil, 0, InvalidFields("is_active")
		}
		active = parsed
	}
	if req.All || !active {
		if err := d.gate.Authorize(actor, authz.UserListAll); err != nil {
			return nil, 0, err
		}
	}
	if !req.All || req.IsActive != "" {
		filter.IsActive = &active
	}

	users, total, err := d.repositories.UserRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, storeError(err, "user")
	}
	return users, total, nil
}

func (d *DefaultUserManager) Get(ctx context.Context, actor authz.Actor, id int64) (*entity.User, error) {
	if err := d.gate.Authorize(actor, authz.UserView, id); err != nil {
		return nil, err
	}
	u, err := d.repositories.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "user")
	}
	return u, nil
}

func (d *DefaultUserManager) Create(ctx context.Context, actor authz.Actor, req request.CreateUserRequest) (*entity.User, error) {
	if err := d.gate.Authorize(actor, authz.UserCreate); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if missing := missingStrings(map[string]string{
		"username": username,
		"email":    email,
		"password": req.Password,
	}); len(missing) > 0 {
		return nil, MissingFields(missing...)
	}

	userRole := role.Utilisateur
	if req.Role != "" {
		parsed, err := role.Parse(req.Role)
		if err != nil {
			return nil, InvalidFields("role")
		}
		userRole = parsed
	}

	usernameTaken, emailTaken, err := d.repositories.UserRepository.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("check user uniqueness: %w", err)
	}
	if usernameTaken || emailTaken {
		var fields []string
		if usernameTaken {
			fields = append(fields, "username")
		}
		if emailTaken {
			fields = append(fields, "email")
		}
		return nil, ConflictingFields(fields...)
	}

	hashed, err := d.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	isActive := false
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	u, err := d.repositories.UserRepository.Insert(ctx, &entity.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     userRole,
		Pole:     trimmedOrNil(req.Pole),
		Phone:    trimmedOrNil(req.Phone),
		IsActive: isActive,
	})
	if err != nil {
		return nil, storeError(err, "user")
	}

	d.logger.Info("user created",
		zap.String("operation", "user.create"),
		zap.Int64("actor_id", actor.ID),
		zap.Int64("user_id", u.ID),
	)
	return u, nil
}

func (d *DefaultUserManager) Update(
	ctx context.Context,
	actor authz.Actor,
	id int64,
	req request.UpdateUserRequest,
) (*entity.User, error) {
	if err := d.gate.Authorize(actor, authz.UserUpdate, id); err != nil {
		return nil, err
	}
	if req.Role.Set || req.IsActive.Set {
		if err := d.gate.Authorize(actor, authz.UserChangeRole); err != nil {
			return nil, err
		}
	}

	changes, err := d.userChanges(req)
	if err != nil {
		return nil, err
	}

	u, err := d.repositories.UserRepository.Update(ctx, id, changes)
	if err != nil {
		return nil, storeError(err, "user")
	}

	d.logger.Info("user updated",
		zap.String("operation", "user.update"),
		zap.Int64("actor_id", actor.ID),
		zap.Int64("user_id", id),
		changedColumns(changes),
	)
	return u, nil
}

func (d *DefaultUserManager) userChanges(req request.UpdateUserRequest) (map[string]any, error) {
	changes := make(map[string]any)
	var invalid []string

	if req.Username.Set {
		if !req.Username.Valid || strings.TrimSpace(req.Username.Value) == "" {
			invalid = append(invalid, "username")
		} else {
			changes["username"] = strings.TrimSpace(req.Username.Value)
		}
	}
	if req.Email.Set {
		email := strings.TrimSpace(req.Email.Value)
		if !req.Email.Valid || !isEmail(email) {
			invalid = append(invalid, "email")
		} else {
			changes["email"] = email
		}
	}
	if req.Password.Set {
		if !req.Password.Valid || len(req.Password.Value) < 6 {
			invalid = append(invalid, "password")
		} else {
			hashed, err := d.hasher.HashPassword(req.Password.Value)
			if err != nil {
				return nil, fmt.Errorf("hash password: %w", err)
			}
			changes["password"] = hashed
		}
	}
	if req.Role.Set {
		r, err := role.Parse(req.Role.Value)
		if !req.Role.Valid || err != nil {
			invalid = append(invalid, "role")
		} else {
			changes["role"] = r
		}
	}
	if req.IsActive.Set {
		if !req.IsActive.Valid {
			invalid = append(invalid, "is_active")
		} else {
			changes["is_active"] = req.IsActive.Value
		}
	}
	optional.Put(changes, "pole", req.Pole, trimmedValue)
	optional.Put(changes, "phone", req.Phone, trimmedValue)

	if len(invalid) > 0 {
		return nil, InvalidFields(invalid...)
	}
	return changes, nil
}

// Delete removes the user, the tasks they created and their assignments in one transaction.
func (d *DefaultUserManager) Delete(ctx context.Context, actor authz.Actor, id int64) (*entity.User, error) {
	if err := d.gate.Authorize(actor, authz.UserDelete); err != nil {
		return nil, err
	}

	u, err := d.repositories.UserRepository.DeleteCascade(ctx, id)
	if err != nil {
		d.logger.Warn("user delete rolled back",
			zap.String("operation", "user.delete"),
			zap.Int64("user_id", id),
			zap.Error(err),
		)
		return nil, storeError(err, "user")
	}
	d.stats.Invalidate(ctx)

	d.logger.Info("user deleted",
		zap.String("operation", "user.delete"),
		zap.Int64("actor_id", actor.ID),
		zap.Int64("user_id", id),
	)
	return u, nil
}

// trimmedValue stores blank strings as NULL.
func trimmedValue(v string) any {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return v
}
