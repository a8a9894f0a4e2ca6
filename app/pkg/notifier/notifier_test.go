package notifier_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"backend/gestion-platform/app/internal/config"
	"backend/gestion-platform/app/pkg/notifier"
)

func TestNewNotifier_NoURLIsNop(t *testing.T) {
	n := notifier.NewNotifier(config.NotifierConfig{}, resty.New(), zap.NewNop())

	assert.IsType(t, notifier.NopNotifier{}, n)
	assert.NoError(t, n.NotifyAssignment(context.Background(), notifier.NewAssignmentEvent(1, "T", 2, "Koutoub")))
}

func TestWebhookNotifier_NotifyAssignment(t *testing.T) {
	received := make(chan notifier.AssignmentEvent, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		var event notifier.AssignmentEvent
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&event))
		assert.Equal(t, event.ID, r.Header.Get("X-Event-Id"))
		received <- event
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	n := notifier.NewNotifier(config.NotifierConfig{
		WebhookURL: server.URL,
		Token:      "secret",
	}, resty.New(), zap.NewNop())

	event := notifier.NewAssignmentEvent(12, "Préparer la réunion", 4, "Tanzim")
	require.NoError(t, n.NotifyAssignment(context.Background(), event))

	select {
	case got := <-received:
		assert.Equal(t, notifier.EventTaskAssigned, got.Event)
		assert.Equal(t, int64(12), got.TaskID)
		assert.Equal(t, int64(4), got.Assignee)
		assert.Equal(t, "Tanzim", got.Pole)
	case <-time.After(time.Second):
		t.Fatal("webhook was not called")
	}
}

func TestWebhookNotifier_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	n := notifier.NewNotifier(config.NotifierConfig{WebhookURL: server.URL}, resty.New(), zap.NewNop())

	err := n.NotifyAssignment(context.Background(), notifier.NewAssignmentEvent(1, "T", 2, "Koutoub"))
	assert.Error(t, err)
}
