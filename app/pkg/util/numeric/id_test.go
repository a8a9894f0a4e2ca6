package numeric_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/gestion-platform/app/pkg/util/numeric"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		wantErr  bool
	}{
		{input: "12", expected: 12},
		{input: " 7 ", expected: 7},
		{input: "abc", wantErr: true},
		{input: "1.5", wantErr: true},
		{input: "0", wantErr: true},
		{input: "-3", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := numeric.ParseID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, numeric.ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestID_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Assignee numeric.ID `json:"assignee"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"assignee": 5}`), &payload))
	assert.Equal(t, int64(5), payload.Assignee.Int64())

	require.NoError(t, json.Unmarshal([]byte(`{"assignee": "9"}`), &payload))
	assert.Equal(t, int64(9), payload.Assignee.Int64())

	assert.ErrorIs(t, json.Unmarshal([]byte(`{"assignee": "nine"}`), &payload), numeric.ErrInvalidID)
	assert.Error(t, json.Unmarshal([]byte(`{"assignee": 1.5}`), &payload))
}

func TestID_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		ID numeric.ID `json:"id"`
	}{ID: 42})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":42}`, string(out))
}
