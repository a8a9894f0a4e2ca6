//go:build integration

package integration

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"backend/gestion-platform/app/api/client/request"
	"backend/gestion-platform/app/api/client/response"
	"backend/gestion-platform/app/database/constant/role"
	"backend/gestion-platform/app/database/constant/task"
	"backend/gestion-platform/app/database/entity"
	queryUtil "backend/gestion-platform/app/database/repository/query_utils"
	"backend/gestion-platform/app/pkg/password"
	httputil "backend/gestion-platform/app/test/util"
)

type FlowSuite struct {
	RouterSuite
}

func TestFlowSuite(t *testing.T) {
	suite.Run(t, new(FlowSuite))
}

func (s *FlowSuite) TestRegisterApproveLoginRefreshLogout() {
	admin := s.createUser("it_admin", role.Admin, true, "")
	adminSession, rec := s.login(admin.Username, "secret123")
	s.r.Equal(http.StatusOK, rec.Code)

	registered, code, err := httputil.RequestHTTP[response.GeneralResponse[response.UserResponse]](s.e, http.MethodPost, "/api/v1/auth/register", nil,
		request.RegisterRequest{Username: "it_bob", Email: "it_bob@example.org", Password: "secret123"})
	s.r.NoError(err)
	s.r.Equal(http.StatusCreated, code)
	s.r.False(registered.Data.IsActive)
	s.r.Equal(role.Utilisateur, registered.Data.Role)

	_, rec = s.login("it_bob@example.org", "secret123")
	s.r.Equal(http.StatusUnauthorized, rec.Code)
	s.r.Contains(rec.Body.String(), "inactive_account")

	_, code, err = httputil.RequestHTTP[response.GeneralResponse[response.UserResponse]](s.e, http.MethodPut,
		fmt.Sprintf("/api/v1/user-validation/%d/approve", registered.Data.ID), &adminSession.access, nil)
	s.r.NoError(err)
	s.r.Equal(http.StatusOK, code)

	bob, rec := s.login("it_bob", "secret123")
	s.r.Equal(http.StatusOK, rec.Code)
	s.r.NotEmpty(bob.access)
	s.r.NotEmpty(bob.refresh)

	me, code, err := httputil.RequestHTTP[response.GeneralResponse[response.UserResponse]](s.e, http.MethodGet, "/api/v1/auth/me", &bob.access, nil)
	s.r.NoError(err)
	s.r.Equal(http.StatusOK, code)
	s.r.Equal("it_bob", me.Data.Username)

	refreshReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	refreshReq.AddCookie(&http.Cookie{Name: "refresh_token", Value: bob.refresh})
	s.r.Equal(http.StatusOK, httputil.Recorder(s.e, refreshReq).Code)

	logoutReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	logoutReq.AddCookie(&http.Cookie{Name: "refresh_token", Value: bob.refresh})
	s.r.Equal(http.StatusOK, httputil.Recorder(s.e, logoutReq).Code)

	again := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	again.AddCookie(&http.Cookie{Name: "refresh_token", Value: bob.refresh})
	s.r.Equal(http.StatusUnauthorized, httputil.Recorder(s.e, again).Code)
}

func (s *FlowSuite) TestRejectDeactivatesWithoutDeleting() {
	admin := s.createUser("it_admin2", role.Admin, true, "")
	adminSession, _ := s.login(admin.Username, "secret123")
	pending := s.createUser("it_pending", role.Utilisateur, true, "")

	_, code, err := httputil.RequestHTTP[response.GeneralResponse[response.UserResponse]](s.e, http.MethodPut,
		fmt.Sprintf("/api/v1/user-validation/%d/reject", pending.ID), &adminSession.access, nil)
	s.r.NoError(err)
	s.r.Equal(http.StatusOK, code)

	stored, err := s.repositories.UserRepository.FindByID(s.ctx, pending.ID)
	s.r.NoError(err)
	s.r.False(stored.IsActive)
}

func (s *FlowSuite) TestLegacyPasswordIsUpgradedOnLogin() {
	legacy := s.createUser("it_legacy", role.Utilisateur, true, password.LegacyDigest("oldpass1"))

	_, rec := s.login(legacy.Username, "oldpass1")
	s.r.Equal(http.StatusOK, rec.Code)

	stored, err := s.repositories.UserRepository.FindByID(s.ctx, legacy.ID)
	s.r.NoError(err)
	s.r.True(strings.HasPrefix(stored.Password, "$2"))
}

func (s *FlowSuite) TestTaskSoftDelete() {
	member := s.createUser("it_member", role.Utilisateur, true, "")
	sess, _ := s.login(member.Username, "secret123")

	created, code, err := httputil.RequestHTTP[response.GeneralResponse[response.TaskResponse]](s.e, http.MethodPost, "/api/v1/tasks", &sess.access,
		map[string]any{"title": "T", "status": "pending", "priority": "Normal", "pole": "Koutoub"})
	s.r.NoError(err)
	s.r.Equal(http.StatusCreated, code)
	s.r.True(created.Data.IsActive)
	s.r.Equal(member.ID, created.Data.CreatedBy)

	target := fmt.Sprintf("/api/v1/tasks/%d", created.Data.ID)
	deleted, code, err := httputil.RequestHTTP[response.GeneralResponse[response.TaskResponse]](s.e, http.MethodDelete, target, &sess.access, nil)
	s.r.NoError(err)
	s.r.Equal(http.StatusOK, code)
	s.r.False(deleted.Data.IsActive)

	// Deleting twice still succeeds.
	_, code, err = httputil.RequestHTTP[response.GeneralResponse[response.TaskResponse]](s.e, http.MethodDelete, target, &sess.access, nil)
	s.r.NoError(err)
	s.r.Equal(http.StatusOK, code)

	list, code, err := httputil.RequestHTTP[response.GeneralResponse[[]response.TaskResponse]](s.e, http.MethodGet, "/api/v1/tasks?created_by="+fmt.Sprint(member.ID), &sess.access, nil)
	s.r.NoError(err)
	s.r.Equal(http.StatusOK, code)
	s.r.Empty(list.Data)

	got, code, err := httputil.RequestHTTP[response.GeneralResponse[response.TaskResponse]](s.e, http.MethodGet, target, &sess.access, nil)
	s.r.NoError(err)
	s.r.Equal(http.StatusOK, code)
	s.r.False(got.Data.IsActive)
}

func (s *FlowSuite) TestDeleteUserCascadesToTasks() {
	admin := s.createUser("it_admin3", role.Admin, true, "")
	adminSession, _ := s.login(admin.Username, "secret123")
	victim := s.createUser("it_victim", role.Utilisateur, true, "")
	victimSession, _ := s.login(victim.Username, "secret123")

	own, _, err := httputil.RequestHTTP[response.GeneralResponse[response.TaskResponse]](s.e, http.MethodPost, "/api/v1/tasks", &victimSession.access,
		map[string]any{"title": "own", "status": "draft", "priority": "Faible", "pole": "Koutoub"})
	s.r.NoError(err)
	assigned, _, err := httputil.RequestHTTP[response.GeneralResponse[response.TaskResponse]](s.e, http.MethodPost, "/api/v1/tasks", &adminSession.access,
		map[string]any{"title": "assigned", "status": "pending", "priority": "Urgent", "pole": "Koutoub", "assignee": victim.ID})
	s.r.NoError(err)

	_, code, err := httputil.RequestHTTP[response.GeneralResponse[response.UserResponse]](s.e, http.MethodDelete,
		fmt.Sprintf("/api/v1/users/%d", victim.ID), &adminSession.access, nil)
	s.r.NoError(err)
	s.r.Equal(http.StatusOK, code)

	_, err = s.repositories.TaskRepository.FindByID(s.ctx, own.Data.ID)
	s.r.Error(err)

	kept, err := s.repositories.TaskRepository.FindByID(s.ctx, assigned.Data.ID)
	s.r.NoError(err)
	s.r.Nil(kept.Assignee)
}

func (s *FlowSuite) TestPoleSlugAndSoftDelete() {
	admin := s.createUser("it_admin4", role.Admin, true, "")
	sess, _ := s.login(admin.Username, "secret123")

	created, code, err := httputil.RequestHTTP[response.GeneralResponse[response.PoleResponse]](s.e, http.MethodPost, "/api/v1/poles", &sess.access,
		request.CreatePoleRequest{Name: "Médias Numériques"})
	s.r.NoError(err)
	s.r.Equal(http.StatusCreated, code)
	s.r.Equal("medias-numeriques", created.Data.Slug)

	_, code, err = httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodPost, "/api/v1/poles", &sess.access,
		request.CreatePoleRequest{Name: "Médias Numériques"})
	s.r.NoError(err)
	s.r.Equal(http.StatusConflict, code)

	target := fmt.Sprintf("/api/v1/poles/%d", created.Data.ID)
	for range 2 {
		deleted, code, err := httputil.RequestHTTP[response.GeneralResponse[response.PoleResponse]](s.e, http.MethodDelete, target, &sess.access, nil)
		s.r.NoError(err)
		s.r.Equal(http.StatusOK, code)
		s.r.False(deleted.Data.IsActive)
		s.r.Equal(created.Data.ID, deleted.Data.ID)
	}
}

func (s *FlowSuite) TestStatsAreInvalidatedByMutations() {
	lead := s.createUser("it_lead", role.Responsable, true, "")
	sess, _ := s.login(lead.Username, "secret123")

	before, code, err := httputil.RequestHTTP[response.GeneralResponse[response.TaskStatsResponse]](s.e, http.MethodGet, "/api/v1/stats/tasks", &sess.access, nil)
	s.r.NoError(err)
	s.r.Equal(http.StatusOK, code)

	_, code, err = httputil.RequestHTTP[response.GeneralResponse[response.TaskResponse]](s.e, http.MethodPost, "/api/v1/tasks", &sess.access,
		map[string]any{"title": "counted", "status": string(task.InProgress), "priority": "Normal", "pole": "Logistique"})
	s.r.NoError(err)
	s.r.Equal(http.StatusCreated, code)

	after, code, err := httputil.RequestHTTP[response.GeneralResponse[response.TaskStatsResponse]](s.e, http.MethodGet, "/api/v1/stats/tasks", &sess.access, nil)
	s.r.NoError(err)
	s.r.Equal(http.StatusOK, code)
	s.r.Equal(before.Data.Total+1, after.Data.Total)
}

func (s *FlowSuite) getTask(id int64, token *string) response.TaskResponse {
	got, code, err := httputil.RequestHTTP[response.GeneralResponse[response.TaskResponse]](s.e, http.MethodGet,
		fmt.Sprintf("/api/v1/tasks/%d", id), token, nil)
	s.r.NoError(err)
	s.r.Equal(http.StatusOK, code)
	return got.Data
}

func (s *FlowSuite) TestTaskUpdateRoundTrip() {
	member := s.createUser("it_writer", role.Utilisateur, true, "")
	helper := s.createUser("it_helper", role.Utilisateur, true, "")
	sess, _ := s.login(member.Username, "secret123")

	created, code, err := httputil.RequestHTTP[response.GeneralResponse[response.TaskResponse]](s.e, http.MethodPost, "/api/v1/tasks", &sess.access,
		map[string]any{"title": "T1", "description": "d", "status": "pending", "priority": "Urgent", "pole": "Koutoub", "assignee": helper.ID})
	s.r.NoError(err)
	s.r.Equal(http.StatusCreated, code)
	target := fmt.Sprintf("/api/v1/tasks/%d", created.Data.ID)
	previous := s.getTask(created.Data.ID, &sess.access)

	for _, title := range []string{"T2", "T3"} {
		updated, code, err := httputil.RequestHTTP[response.GeneralResponse[response.TaskResponse]](s.e, http.MethodPut, target, &sess.access,
			map[string]any{"title": title})
		s.r.NoError(err)
		s.r.Equal(http.StatusOK, code)
		s.r.NotNil(updated.Data.AssigneeUsername)
		s.a.Equal("it_helper", *updated.Data.AssigneeUsername)
		s.r.NotNil(updated.Data.CreatedByUsername)
		s.a.Equal("it_writer", *updated.Data.CreatedByUsername)

		got := s.getTask(created.Data.ID, &sess.access)
		s.a.Equal(title, got.Title)
		s.a.Equal(previous.Description, got.Description)
		s.a.Equal(previous.Status, got.Status)
		s.a.Equal(previous.Priority, got.Priority)
		s.a.Equal(previous.Pole, got.Pole)
		s.a.Equal(previous.Assignee, got.Assignee)
		s.a.Equal(previous.CreatedBy, got.CreatedBy)
		s.a.True(got.UpdatedAt.After(previous.UpdatedAt), "updated_at %s is not after %s", got.UpdatedAt, previous.UpdatedAt)
		previous = got
	}

	// null clears the column, an absent key leaves it alone.
	_, code, err = httputil.RequestHTTP[response.GeneralResponse[response.TaskResponse]](s.e, http.MethodPut, target, &sess.access,
		map[string]any{"description": nil})
	s.r.NoError(err)
	s.r.Equal(http.StatusOK, code)

	got := s.getTask(created.Data.ID, &sess.access)
	s.a.Nil(got.Description)
	s.a.Equal("T3", got.Title)
	s.a.Equal(previous.Assignee, got.Assignee)
	s.a.True(got.UpdatedAt.After(previous.UpdatedAt))
}

func (s *FlowSuite) countUsersByEmail(email string) int {
	n, err := s.resource.DB.PrimaryConn().NewSelect().
		TableExpr("users").
		Where("lower(email) = lower(?)", email).
		Count(s.ctx)
	s.r.NoError(err)
	return n
}

func (s *FlowSuite) TestDuplicateEmailRegistration() {
	register := func(username, email string) int {
		_, code, err := httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodPost, "/api/v1/auth/register", nil,
			request.RegisterRequest{Username: username, Email: email, Password: "secret123"})
		s.r.NoError(err)
		return code
	}

	s.r.Equal(http.StatusCreated, register("it_dup1", "it_dup@example.org"))
	s.a.Equal(http.StatusConflict, register("it_dup2", "it_dup@example.org"))
	s.a.Equal(http.StatusConflict, register("it_dup3", "IT_Dup@Example.org"))

	s.a.Equal(1, s.countUsersByEmail("it_dup@example.org"))
}

func (s *FlowSuite) TestEmailUniquenessIgnoresCaseInStore() {
	_, err := s.repositories.UserRepository.Insert(s.ctx, &entity.User{
		Username: "it_case1", Email: "it_case@example.org", Password: "x", Role: role.Utilisateur,
	})
	s.r.NoError(err)

	_, err = s.repositories.UserRepository.Insert(s.ctx, &entity.User{
		Username: "it_case2", Email: "IT_CASE@example.org", Password: "x", Role: role.Utilisateur,
	})
	s.r.Error(err)
	s.a.True(queryUtil.IsUniqueViolation(err))
	s.a.Equal("users_email_key", queryUtil.ConstraintName(err))
	s.a.Equal(1, s.countUsersByEmail("it_case@example.org"))
}

func (s *FlowSuite) TestLoginPrefersEmailOverMatchingUsername() {
	owner := s.createUser("it_owner", role.Utilisateur, true, "")
	// Another account whose username is the owner's email.
	s.createUser(owner.Email, role.Utilisateur, true, s.hash("different-pass"))

	sess, rec := s.login(owner.Email, "secret123")
	s.r.Equal(http.StatusOK, rec.Code)

	me, code, err := httputil.RequestHTTP[response.GeneralResponse[response.UserResponse]](s.e, http.MethodGet, "/api/v1/auth/me", &sess.access, nil)
	s.r.NoError(err)
	s.r.Equal(http.StatusOK, code)
	s.a.Equal(owner.ID, me.Data.ID)
}
