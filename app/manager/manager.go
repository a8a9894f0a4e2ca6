package manager

import (
	"backend/gestion-platform/app/database/repository"
	"backend/gestion-platform/app/internal/authz"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/pkg/jwt"
	"backend/gestion-platform/app/pkg/notifier"
	"backend/gestion-platform/app/pkg/password"
)

type Managers struct {
	AuthManager  AuthManager
	UserManager  UserManager
	TaskManager  TaskManager
	PoleManager  PoleManager
	StatsManager StatsManager
	Jwt          jwt.Jwt
	Gate         *authz.Gate
}

func NewManagers(res runtime.Resource, repositories *repository.Repositories) *Managers {
	// Accepts bcrypt hashes and, while migrating, legacy sha256 digests
	hasher := password.NewMigratingHasher(res.Config.PasswordConfig.Cost, res.Config.PasswordConfig.AcceptLegacy)

	jwtManager := jwt.NewJwt(res.Config.JwtConfig)
	gate := authz.NewDefaultGate()
	stats := NewStatsManager(res, gate, repositories)
	assignmentNotifier := notifier.NewNotifier(res.Config.NotifierConfig, res.HttpClient, res.Logger)

	return &Managers{
		AuthManager:  NewAuthManager(res, hasher, jwtManager, gate, repositories),
		UserManager:  NewUserManager(res, hasher, gate, stats, repositories),
		TaskManager:  NewTaskManager(res, gate, stats, assignmentNotifier, repositories),
		PoleManager:  NewPoleManager(res, gate, repositories),
		StatsManager: stats,
		Jwt:          jwtManager,
		Gate:         gate,
	}
}
