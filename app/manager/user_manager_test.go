package manager_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"backend/gestion-platform/app/api/client/request"
	"backend/gestion-platform/app/database/constant/role"
	"backend/gestion-platform/app/database/entity"
	"backend/gestion-platform/app/database/repository"
	queryUtil "backend/gestion-platform/app/database/repository/query_utils"
	"backend/gestion-platform/app/internal/authz"
	"backend/gestion-platform/app/manager"
	"backend/gestion-platform/app/pkg/util/optional"
)

type UserManagerSuite struct {
	ManagerSuite
	m manager.UserManager
}

func TestUserManagerSuite(t *testing.T) {
	suite.Run(t, new(UserManagerSuite))
}

func (s *UserManagerSuite) SetupTest() {
	s.ManagerSuite.SetupTest()
	stats := manager.NewStatsManager(s.res, s.gate, s.repos)
	s.m = manager.NewUserManager(s.res, s.hasher, s.gate, stats, s.repos)
}

func (s *UserManagerSuite) TestList_Filters() {
	tests := []struct {
		name       string
		actor      authz.Actor
		req        request.ListUsersRequest
		wantActive *bool
		wantErr    error
	}{
		{name: "active by default", actor: member, wantActive: ptr(true)},
		{name: "all needs list_all", actor: member, req: request.ListUsersRequest{All: true}, wantErr: authz.ErrForbidden},
		{name: "inactive needs list_all", actor: member, req: request.ListUsersRequest{IsActive: "false"}, wantErr: authz.ErrForbidden},
		{name: "responsable lists pending", actor: responsable, req: request.ListUsersRequest{IsActive: "false"}, wantActive: ptr(false)},
		{name: "admin lists everyone", actor: admin, req: request.ListUsersRequest{All: true}},
		{name: "bad role", actor: admin, req: request.ListUsersRequest{Role: "boss"}, wantErr: manager.ErrValidation},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			if tt.wantErr == nil {
				s.users.EXPECT().
					List(mock.Anything, mock.MatchedBy(func(f repository.UserFilter) bool {
						if tt.wantActive == nil {
							return f.IsActive == nil
						}
						return f.IsActive != nil && *f.IsActive == *tt.wantActive
					})).
					Return([]entity.User{{ID: 1}}, 1, nil)
			}

			users, total, err := s.m.List(s.ctx, tt.actor, tt.req)

			if tt.wantErr != nil {
				s.r.ErrorIs(err, tt.wantErr)
				return
			}
			s.r.NoError(err)
			s.a.Len(users, 1)
			s.a.Equal(1, total)
		})
	}
}

func (s *UserManagerSuite) TestList_Paged() {
	s.users.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f repository.UserFilter) bool {
			return f.Paging != nil && f.Paging.Limit == 5 && f.Paging.Offset == 10 && *f.Role == role.Responsable
		})).
		Return([]entity.User{}, 12, nil)

	_, total, err := s.m.List(s.ctx, member, request.ListUsersRequest{
		PaginationRequest: request.PaginationRequest{Page: 3, Size: 5},
		Role:              "Responsable",
	})

	s.r.NoError(err)
	s.a.Equal(12, total)
}

func (s *UserManagerSuite) TestCreate() {
	s.users.EXPECT().ExistsByUsernameOrEmail(mock.Anything, "erin", "erin@example.com").Return(false, false, nil)
	s.users.EXPECT().
		Insert(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == role.Responsable && u.IsActive && u.Password != "secret1" && *u.Pole == "Logistique"
		})).
		RunAndReturn(func(_ context.Context, u *entity.User) (*entity.User, error) {
			u.ID = 11
			return u, nil
		})

	u, err := s.m.Create(s.ctx, admin, request.CreateUserRequest{
		Username: "erin",
		Email:    "erin@example.com",
		Password: "secret1",
		Role:     "responsable",
		Pole:     ptr(" Logistique "),
		IsActive: ptr(true),
	})

	s.r.NoError(err)
	s.a.Equal(int64(11), u.ID)
}

func (s *UserManagerSuite) TestCreate_Forbidden() {
	_, err := s.m.Create(s.ctx, responsable, request.CreateUserRequest{
		Username: "erin", Email: "erin@example.com", Password: "secret1",
	})

	s.r.ErrorIs(err, authz.ErrForbidden)
}

func (s *UserManagerSuite) TestCreate_BothFieldsConflict() {
	s.users.EXPECT().ExistsByUsernameOrEmail(mock.Anything, "erin", "erin@example.com").Return(true, true, nil)

	_, err := s.m.Create(s.ctx, admin, request.CreateUserRequest{
		Username: "erin", Email: "erin@example.com", Password: "secret1",
	})

	var fe *manager.FieldsError
	s.r.ErrorAs(err, &fe)
	s.a.ErrorIs(err, manager.ErrConflict)
	s.a.Equal([]string{"username", "email"}, fe.Fields)
}

func (s *UserManagerSuite) TestUpdate_OwnProfile() {
	s.users.EXPECT().
		Update(mock.Anything, member.ID, map[string]any{"phone": "0550 00 00 00", "pole": nil}).
		Return(&entity.User{ID: member.ID}, nil)

	_, err := s.m.Update(s.ctx, member, member.ID, request.UpdateUserRequest{
		Phone: optional.Of("0550 00 00 00"),
		Pole:  optional.Null[string](),
	})

	s.r.NoError(err)
}

func (s *UserManagerSuite) TestUpdate_Authorization() {
	tests := []struct {
		name  string
		actor authz.Actor
		id    int64
		req   request.UpdateUserRequest
	}{
		{name: "another user", actor: member, id: outsider.ID, req: request.UpdateUserRequest{Phone: optional.Of("1")}},
		{name: "own role", actor: member, id: member.ID, req: request.UpdateUserRequest{Role: optional.Of("admin")}},
		{name: "own activation", actor: member, id: member.ID, req: request.UpdateUserRequest{IsActive: optional.Of(true)}},
		{name: "responsable on other", actor: responsable, id: member.ID, req: request.UpdateUserRequest{Phone: optional.Of("1")}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.m.Update(s.ctx, tt.actor, tt.id, tt.req)
			s.r.ErrorIs(err, authz.ErrForbidden)
		})
	}
}

func (s *UserManagerSuite) TestUpdate_Password() {
	s.users.EXPECT().
		Update(mock.Anything, int64(9), mock.MatchedBy(func(changes map[string]any) bool {
			h, ok := changes["password"].(string)
			if !ok {
				return false
			}
			valid, _ := s.hasher.CheckPassword("new-secret", h)
			return valid
		})).
		Return(&entity.User{ID: 9}, nil)

	_, err := s.m.Update(s.ctx, admin, 9, request.UpdateUserRequest{Password: optional.Of("new-secret")})

	s.r.NoError(err)
}

func (s *UserManagerSuite) TestUpdate_InvalidFields() {
	_, err := s.m.Update(s.ctx, admin, 9, request.UpdateUserRequest{
		Email:    optional.Of("not-an-email"),
		Username: optional.Of("  "),
	})

	var fe *manager.FieldsError
	s.r.ErrorAs(err, &fe)
	s.a.ErrorIs(err, manager.ErrValidation)
	s.a.ElementsMatch([]string{"email", "username"}, fe.Fields)
}

func (s *UserManagerSuite) TestUpdate_NothingToChange() {
	s.users.EXPECT().Update(mock.Anything, int64(9), map[string]any{}).Return(nil, queryUtil.ErrEmptyUpdate)

	_, err := s.m.Update(s.ctx, admin, 9, request.UpdateUserRequest{})

	s.r.ErrorIs(err, manager.ErrValidation)
}

func (s *UserManagerSuite) TestDelete_InvalidatesStats() {
	s.r.NoError(s.redis.Set(s.ctx, manager.TaskStatsCacheKey, manager.TaskStats{Total: 3}, 0))
	s.users.EXPECT().DeleteCascade(mock.Anything, int64(9)).Return(&entity.User{ID: 9}, nil)

	u, err := s.m.Delete(s.ctx, admin, 9)

	s.r.NoError(err)
	s.a.Equal(int64(9), u.ID)
	cached, err := s.redis.Exists(s.ctx, manager.TaskStatsCacheKey)
	s.r.NoError(err)
	s.a.False(cached)
}

func (s *UserManagerSuite) TestDelete_RolledBack() {
	s.r.NoError(s.redis.Set(s.ctx, manager.TaskStatsCacheKey, manager.TaskStats{Total: 3}, 0))
	s.users.EXPECT().DeleteCascade(mock.Anything, int64(9)).Return(nil, errors.New("connection reset"))

	_, err := s.m.Delete(s.ctx, admin, 9)

	s.r.Error(err)
	s.a.NotErrorIs(err, manager.ErrNotFound)
	cached, _ := s.redis.Exists(s.ctx, manager.TaskStatsCacheKey)
	s.a.True(cached)
}

func (s *UserManagerSuite) TestDelete_NotFound() {
	s.users.EXPECT().DeleteCascade(mock.Anything, int64(404)).Return(nil, sql.ErrNoRows)

	_, err := s.m.Delete(s.ctx, admin, 404)

	s.r.ErrorIs(err, manager.ErrNotFound)
}

func (s *UserManagerSuite) TestDelete_Forbidden() {
	_, err := s.m.Delete(s.ctx, responsable, 9)

	s.r.ErrorIs(err, authz.ErrForbidden)
}
