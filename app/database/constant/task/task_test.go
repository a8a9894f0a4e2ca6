package task_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/gestion-platform/app/database/constant/task"
	"backend/gestion-platform/app/pkg/i18n"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected task.Status
		wantErr  bool
	}{
		{input: "pending", expected: task.Pending},
		{input: " IN_PROGRESS ", expected: task.InProgress},
		{input: "En cours", expected: task.InProgress},
		{input: "en attente", expected: task.Pending},
		{input: "مكتملة", expected: task.Completed},
		{input: "مرفوضة", expected: task.Rejected},
		{input: "Brouillon", expected: task.Draft},
		{input: "done", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := task.ParseStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStatus_Label(t *testing.T) {
	for _, s := range task.Statuses() {
		assert.NotEmpty(t, s.Label(i18n.French), s)
		assert.NotEmpty(t, s.Label(i18n.Arabic), s)
		assert.NotEqual(t, s.Label(i18n.French), s.Label(i18n.Arabic), s)

		roundTrip, err := task.ParseStatus(s.Label(i18n.Arabic))
		require.NoError(t, err)
		assert.Equal(t, s, roundTrip)
	}
	assert.Equal(t, "unknown", task.Status("unknown").Label(i18n.French))
}

func TestStatus_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Status task.Status `json:"status"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"status":"قيد التنفيذ"}`), &payload))
	assert.Equal(t, task.InProgress, payload.Status)

	assert.Error(t, json.Unmarshal([]byte(`{"status":"whatever"}`), &payload))
	assert.Error(t, json.Unmarshal([]byte(`{"status":3}`), &payload))
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input    string
		expected task.Priority
		wantErr  bool
	}{
		{input: "Normal", expected: task.PriorityNormal},
		{input: "urgent", expected: task.PriorityUrgent},
		{input: "faible", expected: task.PriorityLow},
		{input: "مهمة", expected: task.PriorityImportant},
		{input: "high", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := task.ParsePriority(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
