package manager_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"backend/gestion-platform/app/database/constant/role"
	"backend/gestion-platform/app/database/repository"
	"backend/gestion-platform/app/internal/authz"
	"backend/gestion-platform/app/internal/config"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/pkg/jwt"
	"backend/gestion-platform/app/pkg/notifier"
	"backend/gestion-platform/app/pkg/password"
	redisMock "backend/gestion-platform/app/test/mocks/redis"
	mocks "backend/gestion-platform/app/test/mocks/repositories"
)

var (
	admin       = authz.Actor{ID: 1, Role: role.Admin}
	responsable = authz.Actor{ID: 2, Role: role.Responsable}
	member      = authz.Actor{ID: 3, Role: role.Utilisateur}
	outsider    = authz.Actor{ID: 4, Role: role.Utilisateur}
)

type ManagerSuite struct {
	suite.Suite
	r *require.Assertions
	a *assert.Assertions

	ctx      context.Context
	res      runtime.Resource
	redis    *redisMock.InMemoryRedis
	hasher   *password.MigratingHasher
	jwt      jwt.Jwt
	gate     *authz.Gate
	notifier *recordingNotifier

	users    *mocks.MockUserRepository
	tasks    *mocks.MockTaskRepository
	poles    *mocks.MockPoleRepository
	sessions *mocks.MockSessionRepository
	repos    *repository.Repositories
}

func (s *ManagerSuite) SetupTest() {
	s.r = s.Require()
	s.a = s.Assert()
	s.ctx = context.Background()
	s.redis = redisMock.NewInMemoryRedis()
	s.res = runtime.Resource{
		Config: config.ApplicationConfig{
			JwtConfig: config.JwtConfig{
				Issuer:            "gestion-platform-test",
				SecretKey:         "manager-test-secret",
				AccessExpiration:  time.Hour,
				RefreshExpiration: 24 * time.Hour,
			},
			CacheConfig:    config.CacheConfig{StatsTTL: time.Minute},
			NotifierConfig: config.NotifierConfig{Timeout: time.Second},
		},
		Logger: zap.NewNop(),
		Redis:  s.redis,
	}
	// Lowest bcrypt cost keeps the suite fast.
	s.hasher = password.NewMigratingHasher(4, true)
	s.jwt = jwt.NewJwt(s.res.Config.JwtConfig)
	s.gate = authz.NewDefaultGate()
	s.notifier = newRecordingNotifier()

	s.users = mocks.NewMockUserRepository(s.T())
	s.tasks = mocks.NewMockTaskRepository(s.T())
	s.poles = mocks.NewMockPoleRepository(s.T())
	s.sessions = mocks.NewMockSessionRepository(s.T())
	s.repos = &repository.Repositories{
		UserRepository:    s.users,
		TaskRepository:    s.tasks,
		PoleRepository:    s.poles,
		SessionRepository: s.sessions,
	}
}

func (s *ManagerSuite) hash(plain string) string {
	h, err := s.hasher.HashPassword(plain)
	s.r.NoError(err)
	return h
}

type recordingNotifier struct {
	mu     sync.Mutex
	events chan notifier.AssignmentEvent
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{events: make(chan notifier.AssignmentEvent, 8)}
}

func (n *recordingNotifier) NotifyAssignment(_ context.Context, event notifier.AssignmentEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events <- event
	return nil
}

func (n *recordingNotifier) next(timeout time.Duration) (notifier.AssignmentEvent, bool) {
	select {
	case e := <-n.events:
		return e, true
	case <-time.After(timeout):
		return notifier.AssignmentEvent{}, false
	}
}

func ptr[T any](v T) *T {
	return &v
}
