// Package authz holds the role policy table every manager consults before
// touching a resource.
package authz

import (
	"errors"
	"fmt"

	"backend/gestion-platform/app/database/constant/role"
)

var (
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNoRule          = errors.New("no rule defined for action")
)

type Action string

const (
	UserList       Action = "user.list"
	UserListAll    Action = "user.list_all"
	UserView       Action = "user.view"
	UserCreate     Action = "user.create"
	UserUpdate     Action = "user.update"
	UserChangeRole Action = "user.change_role"
	UserDelete     Action = "user.delete"
	UserApprove    Action = "user.approve"
	UserReject     Action = "user.reject"

	TaskList     Action = "task.list"
	TaskListAll  Action = "task.list_all"
	TaskView     Action = "task.view"
	TaskCreate   Action = "task.create"
	TaskUpdate   Action = "task.update"
	TaskDelete   Action = "task.delete"
	TaskValidate Action = "task.validate"
	TaskStats    Action = "task.stats"

	PoleList    Action = "pole.list"
	PoleListAll Action = "pole.list_all"
	PoleView    Action = "pole.view"
	PoleCreate  Action = "pole.create"
	PoleUpdate  Action = "pole.update"
	PoleDelete  Action = "pole.delete"
)

// Actor is the authenticated caller.
type Actor struct {
	ID   int64
	Role role.Role
}

func (a Actor) IsZero() bool {
	return a.ID == 0
}

// Rule grants an action to a set of roles. When Owner is set the resource
// owner is also allowed whatever their role.
type Rule struct {
	Roles []role.Role
	Owner bool
}

var everyone = []role.Role{role.Utilisateur, role.Responsable, role.Admin}
var managers = []role.Role{role.Responsable, role.Admin}
var admins = []role.Role{role.Admin}

// DefaultRules is the policy table of the platform.
func DefaultRules() map[Action]Rule {
	return map[Action]Rule{
		UserList:       {Roles: everyone},
		UserListAll:    {Roles: managers},
		UserView:       {Roles: everyone},
		UserCreate:     {Roles: admins},
		UserUpdate:     {Roles: admins, Owner: true},
		UserChangeRole: {Roles: admins},
		UserDelete:     {Roles: admins},
		UserApprove:    {Roles: admins},
		UserReject:     {Roles: admins},

		TaskList:     {Roles: everyone},
		TaskListAll:  {Roles: managers},
		TaskView:     {Roles: everyone},
		TaskCreate:   {Roles: everyone},
		TaskUpdate:   {Roles: managers, Owner: true},
		TaskDelete:   {Roles: managers, Owner: true},
		TaskValidate: {Roles: managers},
		TaskStats:    {Roles: everyone},

		PoleList:    {Roles: everyone},
		PoleListAll: {Roles: admins},
		PoleView:    {Roles: everyone},
		PoleCreate:  {Roles: admins},
		PoleUpdate:  {Roles: admins},
		PoleDelete:  {Roles: admins},
	}
}

type Gate struct {
	rules map[Action]Rule
}

func NewGate(rules map[Action]Rule) *Gate {
	return &Gate{rules: rules}
}

func NewDefaultGate() *Gate {
	return NewGate(DefaultRules())
}

// Authorize returns nil when actor may perform action. ownerIDs lists the
// users owning the resource (creator, assignee, the user itself).
func (g *Gate) Authorize(actor Actor, action Action, ownerIDs ...int64) error {
	if actor.IsZero() {
		return ErrUnauthenticated
	}
	rule, ok := g.rules[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoRule, action)
	}
	for _, r := range rule.Roles {
		if actor.Role == r {
			return nil
		}
	}
	if rule.Owner {
		for _, id := range ownerIDs {
			if id == actor.ID {
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %s", ErrForbidden, action)
}

func (g *Gate) Can(actor Actor, action Action, ownerIDs ...int64) bool {
	return g.Authorize(actor, action, ownerIDs...) == nil
}
