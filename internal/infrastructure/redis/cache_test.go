package redis

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pluginCalc/internal/testutil"
)

// redisContainer поднимается один раз в TestMain; nil — Docker недоступен или режим -short.
var redisContainer *testutil.RedisContainer

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), testutil.StartupTimeout)
	defer cancel()

	var err error
	redisContainer, err = testutil.NewRedisContainer(ctx)
	if err != nil {
		log.Printf("redis container unavailable: %v", err)
	}

	code := m.Run()

	if redisContainer != nil {
		if err := redisContainer.Terminate(context.Background()); err != nil {
			log.Printf("redis terminate: %v", err)
		}
	}
	os.Exit(code)
}

// setupRedisCache подключается к тестовому Redis и очищает его.
func setupRedisCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}
	if redisContainer == nil {
		t.Skip("контейнер Redis не поднят")
	}

	ctx := context.Background()
	client, err := New(ctx, &Config{Host: redisContainer.Host, Port: redisContainer.Port})
	require.NoError(t, err, "не удалось подключиться к Redis")
	require.NoError(t, client.FlushDB(ctx).Err(), "не удалось очистить Redis")

	t.Cleanup(func() {
		client.Close()
	})

	return NewCache(client, ttl, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCache_SetAndGet(t *testing.T) {
	cache := setupRedisCache(t, 0)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "10 add 5", decimal.NewFromInt(15)))

	value, found, err := cache.Get(ctx, "10 add 5")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, value.Equal(decimal.NewFromInt(15)))
}

func TestCache_GetNotFound(t *testing.T) {
	cache := setupRedisCache(t, 0)

	value, found, err := cache.Get(context.Background(), "нет такого ключа")

	require.NoError(t, err, "отсутствие ключа — не ошибка")
	assert.False(t, found)
	assert.True(t, value.IsZero())
}

func TestCache_Overwrite(t *testing.T) {
	cache := setupRedisCache(t, 0)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", decimal.NewFromInt(100)))
	require.NoError(t, cache.Set(ctx, "key", decimal.NewFromInt(200)))

	value, found, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, value.Equal(decimal.NewFromInt(200)), "значение должно быть перезаписано")
}

func TestCache_DecimalPrecision(t *testing.T) {
	cache := setupRedisCache(t, 0)
	ctx := context.Background()

	for _, s := range []string{
		"0.3",
		"0.3333333333333333333333333333",
		"3.14159265358979323846264338327950288",
		"-42.5",
		"100000000000000000000000000001",
		"0.0000000001",
	} {
		expected := decimal.RequireFromString(s)
		require.NoError(t, cache.Set(ctx, "precision", expected))

		value, found, err := cache.Get(ctx, "precision")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, expected.String(), value.String(), "значение %s должно сохраняться точно", s)
	}
}

func TestCache_TTL(t *testing.T) {
	cache := setupRedisCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "ttl", decimal.NewFromInt(1)))

	ttl, err := cache.cli.TTL(ctx, "ttl").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestNew_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := New(ctx, &Config{Host: "127.0.0.1", Port: "1"})
	assert.ErrorContains(t, err, "redis ping")
}
