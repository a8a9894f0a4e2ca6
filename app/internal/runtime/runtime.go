package runtime

import (
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"backend/gestion-platform/app/internal/config"
	"backend/gestion-platform/app/pkg/db"
	"backend/gestion-platform/app/pkg/redis"
)

// Resource is the process-scoped dependency set built once in main and
// handed to every layer.
type Resource struct {
	Config     config.ApplicationConfig
	Logger     *zap.Logger
	DB         *db.DB
	Redis      redis.Redis
	HttpClient *resty.Client
}
