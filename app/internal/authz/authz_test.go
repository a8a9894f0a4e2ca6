package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backend/gestion-platform/app/database/constant/role"
	"backend/gestion-platform/app/internal/authz"
)

func TestGate_Authorize(t *testing.T) {
	gate := authz.NewDefaultGate()

	user := authz.Actor{ID: 10, Role: role.Utilisateur}
	manager := authz.Actor{ID: 20, Role: role.Responsable}
	admin := authz.Actor{ID: 30, Role: role.Admin}

	tests := []struct {
		name     string
		actor    authz.Actor
		action   authz.Action
		owners   []int64
		expected error
	}{
		{name: "anyone lists tasks", actor: user, action: authz.TaskList},
		{name: "user cannot list deleted tasks", actor: user, action: authz.TaskListAll, expected: authz.ErrForbidden},
		{name: "manager lists deleted tasks", actor: manager, action: authz.TaskListAll},
		{name: "creator updates own task", actor: user, action: authz.TaskUpdate, owners: []int64{10, 99}},
		{name: "assignee updates task", actor: user, action: authz.TaskUpdate, owners: []int64{99, 10}},
		{name: "stranger cannot update task", actor: user, action: authz.TaskUpdate, owners: []int64{99}, expected: authz.ErrForbidden},
		{name: "manager updates any task", actor: manager, action: authz.TaskUpdate, owners: []int64{99}},
		{name: "user cannot validate tasks", actor: user, action: authz.TaskValidate, expected: authz.ErrForbidden},
		{name: "admin approves users", actor: admin, action: authz.UserApprove},
		{name: "manager cannot approve users", actor: manager, action: authz.UserApprove, expected: authz.ErrForbidden},
		{name: "user cannot approve self", actor: user, action: authz.UserApprove, owners: []int64{10}, expected: authz.ErrForbidden},
		{name: "user updates own profile", actor: user, action: authz.UserUpdate, owners: []int64{10}},
		{name: "user cannot update someone else", actor: user, action: authz.UserUpdate, owners: []int64{11}, expected: authz.ErrForbidden},
		{name: "user cannot change own role", actor: user, action: authz.UserChangeRole, owners: []int64{10}, expected: authz.ErrForbidden},
		{name: "user cannot delete users", actor: user, action: authz.UserDelete, expected: authz.ErrForbidden},
		{name: "manager cannot create poles", actor: manager, action: authz.PoleCreate, expected: authz.ErrForbidden},
		{name: "admin deletes poles", actor: admin, action: authz.PoleDelete},
		{name: "anonymous actor", actor: authz.Actor{}, action: authz.TaskList, expected: authz.ErrUnauthenticated},
		{name: "unknown action", actor: admin, action: authz.Action("task.explode"), expected: authz.ErrNoRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gate.Authorize(tt.actor, tt.action, tt.owners...)
			if tt.expected == nil {
				assert.NoError(t, err)
				assert.True(t, gate.Can(tt.actor, tt.action, tt.owners...))
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestDefaultRules_CoverEveryRole(t *testing.T) {
	for action, rule := range authz.DefaultRules() {
		assert.NotEmpty(t, rule.Roles, action)
		assert.Contains(t, rule.Roles, role.Admin, action)
	}
}
