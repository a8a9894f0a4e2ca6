package ctxutil

import (
	"context"
	"os"
	"strings"
)

type AppMode string

const (
	AppModeLocal AppMode = "local"
	AppModeTest  AppMode = "test"
	AppModeDev   AppMode = "dev"
	AppModeProd  AppMode = "production"
)

const appModeKey ContextKey[AppMode] = "app_mode"

func SetAppMode(ctx context.Context, appMode AppMode) context.Context {
	return appModeKey.Set(ctx, appMode)
}

func GetAppMode(ctx context.Context) AppMode {
	mode, ok := appModeKey.Get(ctx)
	if !ok {
		return AppModeLocal
	}
	return mode
}

func GetAppModeFromEnv() AppMode {
	env := strings.ToLower(os.Getenv("APP_ENV"))
	switch env {
	case string(AppModeTest):
		return AppModeTest
	case string(AppModeDev):
		return AppModeDev
	case string(AppModeProd), "prod":
		return AppModeProd
	default:
		return AppModeLocal
	}
}
