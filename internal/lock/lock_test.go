package lock

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	hour := time.Date(2024, 6, 4, 13, 0, 0, 0, time.UTC)

	assert.Equal(t, "slot:carlão:1717506000", SlotKey("Carlão", hour))
	assert.Equal(t, SlotKey("carlão", hour), SlotKey("CARLÃO", hour))
	assert.Equal(t, "sweep:2024-06-04", SweepKey(hour))
}

func TestNoop(t *testing.T) {
	release, ok, err := Noop{}.Acquire(context.Background(), "k", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, release(context.Background()))
}

func TestRedisLocker_Integration(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	client, err := Open(ctx, url)
	require.NoError(t, err)
	defer client.Close()

	l := NewRedisLocker(client, "barber-test:")
	key := "slot:test:" + time.Now().Format("150405.000000")

	release, ok, err := l.Acquire(ctx, key, 5*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = l.Acquire(ctx, key, 5*time.Second)
	require.NoError(t, err)
	assert.False(t, ok, "second acquire must fail while held")

	require.NoError(t, release(ctx))

	release2, ok, err := l.Acquire(ctx, key, 5*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, release2(ctx))
}
