package repository

import (
	"backend/gestion-platform/app/internal/runtime"
)

type Repositories struct {
	UserRepository    UserRepository
	TaskRepository    TaskRepository
	PoleRepository    PoleRepository
	SessionRepository SessionRepository
}

func NewRepositories(res runtime.Resource) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(res),
		TaskRepository:    NewTaskRepository(res),
		PoleRepository:    NewPoleRepository(res),
		SessionRepository: NewSessionRepository(res),
	}
}
