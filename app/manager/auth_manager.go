package manager

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"backend/gestion-platform/app/api/client/request"
	"backend/gestion-platform/app/api/client/response"
	"backend/gestion-platform/app/database/constant/role"
	"backend/gestion-platform/app/database/entity"
	"backend/gestion-platform/app/database/repository"
	"backend/gestion-platform/app/internal/authz"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/pkg/jwt"
	"backend/gestion-platform/app/pkg/password"
)

type AuthManager interface {
	Register(ctx context.Context, req request.RegisterRequest) (*entity.User, error)
	Login(ctx context.Context, req request.LoginRequest) (*response.AuthResponse, error)
	RefreshToken(ctx context.Context, req request.RefreshTokenRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, req request.LogoutRequest) error
	Me(ctx context.Context, userID int64) (*entity.User, error)
	Approve(ctx context.Context, actor authz.Actor, userID int64) (*entity.User, error)
	Reject(ctx context.Context, actor authz.Actor, userID int64) (*entity.User, error)
}

type DefaultAuthManager struct {
	logger       *zap.Logger
	res          runtime.Resource
	hasher       password.Hasher
	jwtManager   jwt.Jwt
	gate         *authz.Gate
	repositories *repository.Repositories
}

func NewAuthManager(
	res runtime.Resource,
	hasher password.Hasher,
	jwtManager jwt.Jwt,
	gate *authz.Gate,
	repositories *repository.Repositories,
) AuthManager {
	return &DefaultAuthManager{
		res:          res,
		logger:       res.Logger,
		hasher:       hasher,
		jwtManager:   jwtManager,
		gate:         gate,
		repositories: repositories,
	}
}

// Register creates an inactive account that an admin has to approve.
func (d *DefaultAuthManager) Register(ctx context.Context, req request.RegisterRequest) (*entity.User, error) {
	userRole := role.Utilisateur
	if req.Role != "" {
		parsed, err := role.Parse(req.Role)
		if err != nil {
			return nil, InvalidFields("role")
		}
		if parsed == role.Admin {
			return nil, &FieldsError{Kind: ErrValidation, Reason: "admin accounts cannot be self-registered", Fields: []string{"role"}}
		}
		userRole = parsed
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

	if err := d.checkAvailable(ctx, username, email); err != nil {
		return nil, err
	}

	hashed, err := d.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := d.repositories.UserRepository.Insert(ctx, &entity.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     userRole,
		Pole:     trimmedOrNil(req.Pole),
		Phone:    trimmedOrNil(req.Phone),
		IsActive: false,
	})
	if err != nil {
		return nil, storeError(err, "user")
	}

	d.logger.Info("user registered",
		zap.String("operation", "register"),
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)
	return user, nil
}

func (d *DefaultAuthManager) checkAvailable(ctx context.Context, username, email string) error {
	usernameTaken, emailTaken, err := d.repositories.UserRepository.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return fmt.Errorf("check user uniqueness: %w", err)
	}
	var fields []string
	if usernameTaken {
		fields = append(fields, "username")
	}
	if emailTaken {
		fields = append(fields, "email")
	}
	if len(fields) > 0 {
		return ConflictingFields(fields...)
	}
	return nil
}

func (d *DefaultAuthManager) Login(ctx context.Context, req request.LoginRequest) (*response.AuthResponse, error) {
	identifier := req.LoginID()
	if identifier == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := d.repositories.UserRepository.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	valid, err := d.hasher.CheckPassword(req.Password, u.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to check password: %w", err)
	}
	if !valid {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrInactiveAccount
	}

	if d.hasher.NeedsRehash(u.Password) {
		d.rehash(ctx, u.ID, req.Password)
	}

	accessToken, err := d.generateUserAccessToken(u)
	if err != nil {
		return nil, err
	}
	refreshToken, err := d.createSession(ctx, u)
	if err != nil {
		return nil, err
	}

	d.logger.Info("user logged in", zap.String("operation", "login"), zap.Int64("user_id", u.ID))
	return d.createAuthResponse(u, accessToken.Token, refreshToken), nil
}

// rehash upgrades a legacy or weaker stored hash. Failing to store it does not fail the login.
func (d *DefaultAuthManager) rehash(ctx context.Context, userID int64, plain string) {
	hashed, err := d.hasher.HashPassword(plain)
	if err == nil {
		err = d.repositories.UserRepository.UpdatePassword(ctx, userID, hashed)
	}
	if err != nil {
		d.logger.Warn("failed to upgrade password hash",
			zap.String("operation", "login"),
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return
	}
	d.logger.Info("password hash upgraded", zap.Int64("user_id", userID))
}

func (d *DefaultAuthManager) RefreshToken(
	ctx context.Context,
	req request.RefreshTokenRequest,
) (*response.AuthResponse, error) {
	session, err := d.validateSession(ctx, req.RefreshToken)
	if err != nil {
		return nil, err
	}

	u, err := d.repositories.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !u.IsActive {
		return nil, ErrInactiveAccount
	}

	accessToken, err := d.generateUserAccessToken(u)
	if err != nil {
		return nil, err
	}
	return d.createAuthResponse(u, accessToken.Token, req.RefreshToken), nil
}

func (d *DefaultAuthManager) Logout(ctx context.Context, req request.LogoutRequest) error {
	claims, err := d.jwtManager.ValidateToken(req.RefreshToken)
	if err != nil || claims.RefreshTokenBase64 == nil || *claims.RefreshTokenBase64 == "" {
		return ErrInvalidRefreshToken
	}
	if err := d.repositories.SessionRepository.RevokeByToken(ctx, hashToken(*claims.RefreshTokenBase64)); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (d *DefaultAuthManager) Me(ctx context.Context, userID int64) (*entity.User, error) {
	u, err := d.repositories.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, storeError(err, "user")
	}
	return u, nil
}

func (d *DefaultAuthManager) Approve(ctx context.Context, actor authz.Actor, userID int64) (*entity.User, error) {
	if err := d.gate.Authorize(actor, authz.UserApprove); err != nil {
		return nil, err
	}
	return d.setActive(ctx, actor, userID, true)
}

// Reject puts the account back in the pending state. It never deletes it.
func (d *DefaultAuthManager) Reject(ctx context.Context, actor authz.Actor, userID int64) (*entity.User, error) {
	if err := d.gate.Authorize(actor, authz.UserReject); err != nil {
		return nil, err
	}
	u, err := d.setActive(ctx, actor, userID, false)
	if err != nil {
		return nil, err
	}
	if err := d.repositories.SessionRepository.RevokeByUserID(ctx, userID); err != nil {
		d.logger.Warn("failed to revoke sessions of rejected user", zap.Int64("user_id", userID), zap.Error(err))
	}
	return u, nil
}

func (d *DefaultAuthManager) setActive(ctx context.Context, actor authz.Actor, userID int64, active bool) (*entity.User, error) {
	u, err := d.repositories.UserRepository.SetActive(ctx, userID, active)
	if err != nil {
		return nil, storeError(err, "user")
	}
	d.logger.Info("user activation changed",
		zap.String("operation", "user_validation"),
		zap.Int64("actor_id", actor.ID),
		zap.Int64("user_id", userID),
		zap.Bool("is_active", active),
	)
	return u, nil
}

func (d *DefaultAuthManager) validateSession(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := d.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if claims.RefreshTokenBase64 == nil || *claims.RefreshTokenBase64 == "" {
		return nil, ErrInvalidRefreshToken
	}
	session, err := d.repositories.SessionRepository.FindByToken(ctx, hashToken(*claims.RefreshTokenBase64))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	if session.Revoked {
		return nil, ErrRefreshTokenRevoked
	}
	if session.ExpiresAt != nil && session.ExpiresAt.Before(time.Now()) {
		return nil, ErrRefreshTokenExpired
	}
	return session, nil
}

func (d *DefaultAuthManager) createSession(ctx context.Context, user *entity.User) (string, error) {
	roleStr := string(user.Role)
	refreshToken, err := d.jwtManager.GenerateRefreshToken(&user.ID, &user.Username, &user.Email, &roleStr, user.Pole)
	if err != nil {
		return "", err
	}

	exp := refreshToken.ExpiredAt
	_, err = d.repositories.SessionRepository.Insert(ctx, &entity.Session{
		UserID:    user.ID,
		Token:     hashToken(refreshToken.TokenBase64),
		ExpiresAt: &exp,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return refreshToken.Token, nil
}

func (d *DefaultAuthManager) createAuthResponse(user *entity.User, accessToken string, refreshToken string) *response.AuthResponse {
	return &response.AuthResponse{
		User:         response.NewUserResponse(user),
		AccessToken:  accessToken,
		ExpiresIn:    d.jwtManager.GetExpirationTime(),
		TokenType:    jwt.TokenTypeBearer,
		RefreshToken: refreshToken,
	}
}

func (d *DefaultAuthManager) generateUserAccessToken(user *entity.User) (*jwt.AccessToken, error) {
	roleStr := string(user.Role)
	accessToken, err := d.jwtManager.GenerateAccessToken(&user.ID, &user.Username, &user.Email, &roleStr, user.Pole)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

// hashToken is the form refresh secrets are stored in.
func hashToken(secret string) string {
	h := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(h[:])
}
