package manager_test

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"backend/gestion-platform/app/api/client/request"
	"backend/gestion-platform/app/database/constant/role"
	"backend/gestion-platform/app/database/entity"
	"backend/gestion-platform/app/internal/authz"
	"backend/gestion-platform/app/manager"
	"backend/gestion-platform/app/pkg/password"
)

type AuthManagerSuite struct {
	ManagerSuite
	m manager.AuthManager
}

func TestAuthManagerSuite(t *testing.T) {
	suite.Run(t, new(AuthManagerSuite))
}

func (s *AuthManagerSuite) SetupTest() {
	s.ManagerSuite.SetupTest()
	s.m = manager.NewAuthManager(s.res, s.hasher, s.jwt, s.gate, s.repos)
}

func sessionHash(secret string) string {
	h := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(h[:])
}

func (s *AuthManagerSuite) TestRegister_CreatesPendingAccount() {
	s.users.EXPECT().ExistsByUsernameOrEmail(mock.Anything, "alice", "alice@example.com").Return(false, false, nil)
	s.users.EXPECT().
		Insert(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			ok, _ := s.hasher.CheckPassword("secret1", u.Password)
			return !u.IsActive && u.Role == role.Utilisateur && ok && u.Password != "secret1"
		})).
		RunAndReturn(func(_ context.Context, u *entity.User) (*entity.User, error) {
			u.ID = 10
			return u, nil
		})

	u, err := s.m.Register(s.ctx, request.RegisterRequest{
		Username: " alice ",
		Email:    "alice@example.com",
		Password: "secret1",
	})

	s.r.NoError(err)
	s.a.Equal(int64(10), u.ID)
	s.a.Equal("alice", u.Username)
	s.a.False(u.IsActive)
}

func (s *AuthManagerSuite) TestRegister_AdminRoleRejected() {
	_, err := s.m.Register(s.ctx, request.RegisterRequest{
		Username: "mallory",
		Email:    "mallory@example.com",
		Password: "secret1",
		Role:     "admin",
	})

	s.r.ErrorIs(err, manager.ErrValidation)
}

func (s *AuthManagerSuite) TestRegister_Conflict() {
	s.users.EXPECT().ExistsByUsernameOrEmail(mock.Anything, "alice", "alice@example.com").Return(false, true, nil)

	_, err := s.m.Register(s.ctx, request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})

	s.r.ErrorIs(err, manager.ErrConflict)
	var fe *manager.FieldsError
	s.r.ErrorAs(err, &fe)
	s.a.Equal([]string{"email"}, fe.Fields)
}

func (s *AuthManagerSuite) TestLogin_UnknownUser() {
	s.users.EXPECT().FindByIdentifier(mock.Anything, "ghost").Return(nil, sql.ErrNoRows)

	_, err := s.m.Login(s.ctx, request.LoginRequest{Identifier: "ghost", Password: "secret1"})

	s.r.ErrorIs(err, manager.ErrInvalidCredentials)
}

func (s *AuthManagerSuite) TestLogin_WrongPasswordBeforeInactive() {
	s.users.EXPECT().FindByIdentifier(mock.Anything, "bob").Return(&entity.User{
		ID: 5, Username: "bob", Password: s.hash("right-one"), IsActive: false,
	}, nil)

	_, err := s.m.Login(s.ctx, request.LoginRequest{Username: "bob", Password: "wrong-one"})

	s.r.ErrorIs(err, manager.ErrInvalidCredentials)
}

func (s *AuthManagerSuite) TestLogin_InactiveAccount() {
	s.users.EXPECT().FindByIdentifier(mock.Anything, "bob@example.com").Return(&entity.User{
		ID: 5, Username: "bob", Password: s.hash("right-one"), IsActive: false,
	}, nil)

	_, err := s.m.Login(s.ctx, request.LoginRequest{Email: "bob@example.com", Password: "right-one"})

	s.r.ErrorIs(err, manager.ErrInactiveAccount)
}

func (s *AuthManagerSuite) TestLogin_LegacyDigestIsUpgraded() {
	user := &entity.User{
		ID:       7,
		Username: "carol",
		Email:    "carol@example.com",
		Password: password.LegacyDigest("secret1"),
		Role:     role.Responsable,
		Pole:     ptr("Communication"),
		IsActive: true,
	}
	s.users.EXPECT().FindByIdentifier(mock.Anything, "carol").Return(user, nil)
	s.users.EXPECT().
		UpdatePassword(mock.Anything, int64(7), mock.MatchedBy(func(h string) bool {
			ok, _ := s.hasher.CheckPassword("secret1", h)
			return ok && !s.hasher.NeedsRehash(h)
		})).
		Return(nil)
	s.sessions.EXPECT().
		Insert(mock.Anything, mock.MatchedBy(func(sess *entity.Session) bool {
			return sess.UserID == 7 && len(sess.Token) == 64 && sess.ExpiresAt != nil
		})).
		RunAndReturn(func(_ context.Context, sess *entity.Session) (*entity.Session, error) { return sess, nil })

	resp, err := s.m.Login(s.ctx, request.LoginRequest{Identifier: "carol", Password: "secret1"})

	s.r.NoError(err)
	s.a.NotEmpty(resp.AccessToken)
	s.a.NotEmpty(resp.RefreshToken)
	s.a.Equal("Bearer", resp.TokenType)
	s.a.Equal(int64(3600), resp.ExpiresIn)
	s.a.Equal(int64(7), resp.User.ID)

	claims, err := s.jwt.ValidateToken(resp.AccessToken)
	s.r.NoError(err)
	s.a.Equal(int64(7), *claims.UserID)
	s.a.Equal("responsable", *claims.Role)
	s.a.Equal("Communication", *claims.Pole)
}

func (s *AuthManagerSuite) TestLogin_RehashFailureDoesNotFailLogin() {
	s.users.EXPECT().FindByIdentifier(mock.Anything, "carol").Return(&entity.User{
		ID: 7, Username: "carol", Password: password.LegacyDigest("secret1"), Role: role.Utilisateur, IsActive: true,
	}, nil)
	s.users.EXPECT().UpdatePassword(mock.Anything, int64(7), mock.Anything).Return(sql.ErrConnDone)
	s.sessions.EXPECT().Insert(mock.Anything, mock.Anything).Return(&entity.Session{}, nil)

	resp, err := s.m.Login(s.ctx, request.LoginRequest{Identifier: "carol", Password: "secret1"})

	s.r.NoError(err)
	s.a.NotEmpty(resp.AccessToken)
}

func (s *AuthManagerSuite) refreshToken(userID int64) (token string, secretHash string) {
	username, email, r := "dave", "dave@example.com", "utilisateur"
	rt, err := s.jwt.GenerateRefreshToken(&userID, &username, &email, &r, nil)
	s.r.NoError(err)
	return rt.Token, sessionHash(rt.TokenBase64)
}

func (s *AuthManagerSuite) TestRefreshToken() {
	token, hash := s.refreshToken(8)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name    string
		session *entity.Session
		wantErr error
	}{
		{name: "valid", session: &entity.Session{UserID: 8, Token: hash, ExpiresAt: &future}},
		{name: "revoked", session: &entity.Session{UserID: 8, Token: hash, Revoked: true, ExpiresAt: &future}, wantErr: manager.ErrRefreshTokenRevoked},
		{name: "expired", session: &entity.Session{UserID: 8, Token: hash, ExpiresAt: ptr(time.Now().Add(-time.Minute))}, wantErr: manager.ErrRefreshTokenExpired},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.sessions.EXPECT().FindByToken(mock.Anything, hash).Return(tt.session, nil)
			if tt.wantErr == nil {
				s.users.EXPECT().FindByID(mock.Anything, int64(8)).Return(&entity.User{
					ID: 8, Username: "dave", Email: "dave@example.com", Role: role.Utilisateur, IsActive: true,
				}, nil)
			}

			resp, err := s.m.RefreshToken(s.ctx, request.RefreshTokenRequest{RefreshToken: token})

			if tt.wantErr != nil {
				s.r.ErrorIs(err, tt.wantErr)
				return
			}
			s.r.NoError(err)
			s.a.NotEmpty(resp.AccessToken)
			s.a.Equal(token, resp.RefreshToken)
		})
	}
}

func (s *AuthManagerSuite) TestRefreshToken_AccessTokenRefused() {
	id, username, email, r := int64(8), "dave", "dave@example.com", "utilisateur"
	access, err := s.jwt.GenerateAccessToken(&id, &username, &email, &r, nil)
	s.r.NoError(err)

	_, err = s.m.RefreshToken(s.ctx, request.RefreshTokenRequest{RefreshToken: access.Token})

	s.r.ErrorIs(err, manager.ErrInvalidRefreshToken)
}

func (s *AuthManagerSuite) TestLogout_RevokesSession() {
	token, hash := s.refreshToken(8)
	s.sessions.EXPECT().RevokeByToken(mock.Anything, hash).Return(nil)

	s.r.NoError(s.m.Logout(s.ctx, request.LogoutRequest{RefreshToken: token}))
}

func (s *AuthManagerSuite) TestLogout_GarbageToken() {
	err := s.m.Logout(s.ctx, request.LogoutRequest{RefreshToken: "not-a-token"})

	s.r.ErrorIs(err, manager.ErrInvalidRefreshToken)
}

func (s *AuthManagerSuite) TestMe_NotFound() {
	s.users.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, sql.ErrNoRows)

	_, err := s.m.Me(s.ctx, 99)

	s.r.ErrorIs(err, manager.ErrNotFound)
}

func (s *AuthManagerSuite) TestApprove() {
	s.users.EXPECT().SetActive(mock.Anything, int64(5), true).Return(&entity.User{ID: 5, IsActive: true}, nil)

	u, err := s.m.Approve(s.ctx, admin, 5)

	s.r.NoError(err)
	s.a.True(u.IsActive)
}

func (s *AuthManagerSuite) TestApprove_ForbiddenForResponsable() {
	_, err := s.m.Approve(s.ctx, responsable, 5)

	s.r.ErrorIs(err, authz.ErrForbidden)
}

func (s *AuthManagerSuite) TestReject_ReturnsAccountToPending() {
	s.users.EXPECT().SetActive(mock.Anything, int64(5), false).Return(&entity.User{ID: 5, IsActive: false}, nil)
	s.sessions.EXPECT().RevokeByUserID(mock.Anything, int64(5)).Return(nil)

	u, err := s.m.Reject(s.ctx, admin, 5)

	s.r.NoError(err)
	s.a.False(u.IsActive)
}

func (s *AuthManagerSuite) TestReject_UnknownUser() {
	s.users.EXPECT().SetActive(mock.Anything, int64(404), false).Return(nil, sql.ErrNoRows)

	_, err := s.m.Reject(s.ctx, admin, 404)

	s.r.ErrorIs(err, manager.ErrNotFound)
}
