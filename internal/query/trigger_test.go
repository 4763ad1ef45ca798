package query

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrigger_RefetchesObservedStaleQueries(t *testing.T) {
	c := NewClient()
	var media, members, hidden atomic.Int32

	_, err := c.Fetch(context.Background(), NewKey("media", "v1"), counting(&media, 1), DefaultOptions())
	require.NoError(t, err)
	_, err = c.Fetch(context.Background(), NewKey("members", "v1"), counting(&members, 1),
		Options{StaleTime: time.Minute})
	require.NoError(t, err)
	_, err = c.Fetch(context.Background(), NewKey("audit", "v1"), counting(&hidden, 1), DefaultOptions())
	require.NoError(t, err)

	defer c.Observe(NewKey("media", "v1"))()
	defer c.Observe(NewKey("members", "v1"))()

	n := c.Trigger(context.Background(), EventFocus)

	assert.Equal(t, 1, n)
	assert.Equal(t, int32(2), media.Load())
	assert.Equal(t, int32(1), members.Load(), "members opt out of focus refetch")
	assert.Equal(t, int32(1), hidden.Load(), "unobserved queries are not refetched")
}

func TestTrigger_SwallowsErrors(t *testing.T) {
	c := NewClient(WithTriggerConcurrency(2))
	var calls atomic.Int32
	fn := func(context.Context) (any, error) {
		if calls.Add(1) > 1 {
			return nil, errors.New("offline")
		}
		return "ok", nil
	}

	_, err := c.Fetch(context.Background(), NewKey("notifications"), fn, DefaultOptions())
	require.NoError(t, err)
	defer c.Observe(NewKey("notifications"))()

	assert.Equal(t, 1, c.Trigger(context.Background(), EventReconnect))
	data, ok := c.GetQueryData(NewKey("notifications"))
	assert.True(t, ok)
	assert.Equal(t, "ok", data)
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "focus", EventFocus.String())
	assert.Equal(t, "reconnect", EventReconnect.String())
	assert.Equal(t, "mount", EventMount.String())
	assert.Equal(t, "unknown", Event(0).String())
}
