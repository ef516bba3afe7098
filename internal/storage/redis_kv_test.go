package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisKV(t *testing.T) *RedisKV {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisKVFromClient(client)
}

func TestRedisKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newTestRedisKV(t)

	_, ok, err := kv.Get(ctx, "lembrete-consorcio-client-boletos")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "lembrete-consorcio-client-boletos", "[]"))

	got, ok, err := kv.Get(ctx, "lembrete-consorcio-client-boletos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", got)
}

func TestRedisKVPing(t *testing.T) {
	kv := newTestRedisKV(t)
	assert.NoError(t, kv.Ping(context.Background()))
}
