package otel

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, use func(scope Scope)) trace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(t.Context(), "span")
	scope := NewScope(span)
	use(scope)
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	return ended[0]
}

func TestScope_Attributes(t *testing.T) {
	span := record(t, func(scope Scope) {
		scope.SetAttribute("booking.id", "B-42")
		scope.SetAttributes(map[string]any{
			"lodge.id":  int64(6),
			"rooms":     []string{"101", "102"},
			"nights":    2,
			"billed":    true,
			"wait":      1500 * time.Millisecond,
			"gst.rate":  18.0,
			"room.kind": struct{ Name string }{"AC"},
		})
	})

	got := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		got[kv.Key] = kv.Value
	}

	assert.Equal(t, "B-42", got["booking.id"].AsString())
	assert.Equal(t, int64(6), got["lodge.id"].AsInt64())
	assert.Equal(t, []string{"101", "102"}, got["rooms"].AsStringSlice())
	assert.Equal(t, int64(2), got["nights"].AsInt64())
	assert.True(t, got["billed"].AsBool())
	assert.Equal(t, int64(1500), got["wait_ms"].AsInt64())
	assert.InDelta(t, 18.0, got["gst.rate"].AsFloat64(), 0)
	assert.Equal(t, "{AC}", got["room.kind"].AsString())
}

func TestScope_TraceIfError(t *testing.T) {
	clean := record(t, func(scope Scope) {
		scope.TraceIfError(nil)
	})
	assert.Equal(t, codes.Unset, clean.Status().Code)
	assert.Empty(t, clean.Events())

	failed := record(t, func(scope Scope) {
		scope.TraceIfError(errors.New("room 101 is taken"))
	})
	assert.Equal(t, codes.Error, failed.Status().Code)
	assert.Equal(t, "room 101 is taken", failed.Status().Description)
	require.Len(t, failed.Events(), 1)
	assert.Equal(t, "exception", failed.Events()[0].Name)
}
