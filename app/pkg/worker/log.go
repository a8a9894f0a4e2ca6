package worker

import (
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// WorkerLog adapts a sugared zap logger to gocron.Logger. gocron passes
// alternating key/value pairs after the message.
type WorkerLog struct {
	logger *zap.SugaredLogger
}

func (w *WorkerLog) Debug(msg string, args ...any) {
	w.logger.Debugw(msg, args...)
}

func (w *WorkerLog) Error(msg string, args ...any) {
	w.logger.Errorw(msg, args...)
}

func (w *WorkerLog) Info(msg string, args ...any) {
	w.logger.Infow(msg, args...)
}

func (w *WorkerLog) Warn(msg string, args ...any) {
	w.logger.Warnw(msg, args...)
}

func NewWorkerLog(logger *zap.SugaredLogger) gocron.Logger {
	return &WorkerLog{logger}
}
