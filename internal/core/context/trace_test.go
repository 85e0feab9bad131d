package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceRoundTrip(t *testing.T) {
	trace := &TraceContext{TraceID: "t1", RequestID: "r1"}
	ctx := WithTrace(context.Background(), trace)

	got := GetTrace(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "t1", got.TraceID)
	assert.Equal(t, "r1", got.RequestID)
}

func TestGetTraceOutsideRequest(t *testing.T) {
	assert.Nil(t, GetTrace(context.Background()))
}
