package ratelimit

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestFixedWindowLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	limiter, err := NewFixedWindowLimiter(mr.Addr(), "", "test:ratelimit", 2, time.Second)
	require.NoError(t, err)

	require.True(t, limiter.Allow("ip-1"))
	require.True(t, limiter.Allow("ip-1"))
	require.False(t, limiter.Allow("ip-1"), "third request in the window must be blocked")

	require.True(t, limiter.Allow("ip-2"), "a different key has its own counter")
}

func TestFixedWindowLimiterFailsClosed(t *testing.T) {
	mr := miniredis.RunT(t)
	limiter, err := NewFixedWindowLimiter(mr.Addr(), "", "test:ratelimit", 1, time.Second)
	require.NoError(t, err)

	mr.Close()
	require.False(t, limiter.Allow("ip-1"))
}

func TestFixedWindowLimiterValidation(t *testing.T) {
	_, err := NewFixedWindowLimiter("", "", "test:ratelimit", 1, time.Second)
	require.Error(t, err)

	_, err = NewFixedWindowLimiter("localhost:6379", "", "test:ratelimit", 0, time.Second)
	require.Error(t, err)
}
