package controller

import (
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/manager"
)

type Controllers struct {
	AuthController       *AuthController
	UserController       *UserController
	TaskController       *TaskController
	PoleController       *PoleController
	ValidationController *ValidationController
	StatsController      *StatsController
	HealthController     *HealthController
}

func NewControllers(managers *manager.Managers, res runtime.Resource) *Controllers {
	return &Controllers{
		AuthController:       NewAuthController(managers, res),
		UserController:       NewUserController(managers, res),
		TaskController:       NewTaskController(managers, res),
		PoleController:       NewPoleController(managers, res),
		ValidationController: NewValidationController(managers, res),
		StatsController:      NewStatsController(managers, res),
		HealthController:     NewHealthController(res),
	}
}
