package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	ctxutil "backend/gestion-platform/app/pkg/util/context"
)

type LogConfig struct {
	ServiceName string
	Env         ctxutil.AppMode
}

func NewLogConfig(serviceName string, appMode ctxutil.AppMode) *LogConfig {
	return &LogConfig{
		ServiceName: serviceName,
		Env:         appMode,
	}
}

func (cfg *LogConfig) NewLogging() (*zap.Logger, error) {
	logLevel := getLogLevel(cfg.Env)
	encoderConfig := newEncoderConfig()

	if cfg.Env == ctxutil.AppModeLocal {
		zapConfig := zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(logLevel)
		zapConfig.EncoderConfig = encoderConfig
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err := zapConfig.Build()
		if err != nil {
			return nil, err
		}
		return logger.Named(cfg.ServiceName), nil
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		logLevel,
	)
	return zap.New(
		core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(zap.String("env", string(cfg.Env))),
	).Named(cfg.ServiceName), nil
}

func newEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func getLogLevel(appMode ctxutil.AppMode) zapcore.Level {
	switch appMode {
	case ctxutil.AppModeProd, ctxutil.AppModeTest:
		return zapcore.WarnLevel
	case ctxutil.AppModeDev:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}
