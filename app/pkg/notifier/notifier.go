package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"backend/gestion-platform/app/internal/config"
)

const EventTaskAssigned = "task.assigned"

type AssignmentEvent struct {
	ID         string    `json:"id"`
	Event      string    `json:"event"`
	TaskID     int64     `json:"task_id"`
	Title      string    `json:"title"`
	Assignee   int64     `json:"assignee"`
	Pole       string    `json:"pole"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewAssignmentEvent(taskID int64, title string, assignee int64, pole string) AssignmentEvent {
	return AssignmentEvent{
		ID:         uuid.NewString(),
		Event:      EventTaskAssigned,
		TaskID:     taskID,
		Title:      title,
		Assignee:   assignee,
		Pole:       pole,
		OccurredAt: time.Now().UTC(),
	}
}

type Notifier interface {
	NotifyAssignment(ctx context.Context, event AssignmentEvent) error
}

// NewNotifier returns a webhook notifier, or a no-op one when no URL is configured.
func NewNotifier(cfg config.NotifierConfig, client *resty.Client, logger *zap.Logger) Notifier {
	if cfg.WebhookURL == "" || client == nil {
		return NopNotifier{}
	}
	return &WebhookNotifier{
		cfg:    cfg,
		client: client,
		logger: logger.Named("notifier"),
	}
}

type NopNotifier struct{}

func (NopNotifier) NotifyAssignment(context.Context, AssignmentEvent) error {
	return nil
}

type WebhookNotifier struct {
	cfg    config.NotifierConfig
	client *resty.Client
	logger *zap.Logger
}

func (n *WebhookNotifier) NotifyAssignment(ctx context.Context, event AssignmentEvent) error {
	req := n.client.R().
		SetContext(ctx).
		SetHeader("X-Event-Id", event.ID).
		SetBody(event)
	if n.cfg.Token != "" {
		req = req.SetAuthToken(n.cfg.Token)
	}

	resp, err := req.Post(n.cfg.WebhookURL)
	if err != nil {
		return fmt.Errorf("post assignment event: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("post assignment event: unexpected status %d", resp.StatusCode())
	}

	n.logger.Debug("assignment event delivered",
		zap.String("event_id", event.ID),
		zap.Int64("task_id", event.TaskID),
		zap.Int64("assignee", event.Assignee),
	)
	return nil
}
