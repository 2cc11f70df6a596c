package model_test

import (
	"encoding/json"
	"lodgehub/shared/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabels_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected model.Labels
		wantErr  bool
	}{
		{name: "strings", input: `["101","102"]`, expected: model.Labels{"101", "102"}},
		{name: "numbers", input: `[101, 102]`, expected: model.Labels{"101", "102"}},
		{name: "mixed", input: `["A1", 7]`, expected: model.Labels{"A1", "7"}},
		{name: "single scalar", input: `305`, expected: model.Labels{"305"}},
		{name: "null", input: `null`, expected: nil},
		{name: "nested array", input: `[["101"]]`, wantErr: true},
		{name: "object", input: `{"a":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var labels model.Labels

			err := json.Unmarshal([]byte(tt.input), &labels)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, labels)
		})
	}
}

func TestLabels_Scan(t *testing.T) {
	var labels model.Labels

	require.NoError(t, labels.Scan([]byte(`[1,2,3]`)))
	assert.Equal(t, model.Labels{"1", "2", "3"}, labels)

	value, err := labels.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["1","2","3"]`, string(value.([]byte)))
}

func TestRawJSON(t *testing.T) {
	var raw model.RawJSON

	require.NoError(t, raw.Scan(nil))
	assert.True(t, raw.IsEmpty())

	value, err := raw.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, json.Unmarshal([]byte(`{"minibar":120}`), &raw))
	assert.False(t, raw.IsEmpty())

	encoded, err := json.Marshal(struct {
		Reason model.RawJSON `json:"reason"`
	}{Reason: raw})
	require.NoError(t, err)
	assert.JSONEq(t, `{"reason":{"minibar":120}}`, string(encoded))

	assert.True(t, model.RawJSON(`{}`).IsEmpty())
	assert.True(t, model.RawJSON(`""`).IsEmpty())
}
