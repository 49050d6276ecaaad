package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"pluginCalc/internal/ports"
)

var _ ports.ICache = (*Cache)(nil)

// Cache реализует ports.ICache через Redis. Ключ — "<a> <op> <b>", значение — результат в десятичной записи.
type Cache struct {
	cli *Client
	ttl time.Duration
	log *slog.Logger
}

// NewCache возвращает кэш, реализующий ports.ICache. ttl == 0 — ключи без срока жизни.
func NewCache(cli *Client, ttl time.Duration, log *slog.Logger) *Cache {
	return &Cache{cli: cli, ttl: ttl, log: log}
}

// Get возвращает результат по ключу. Если ключа нет — found == false.
func (c *Cache) Get(ctx context.Context, key string) (value decimal.Decimal, found bool, err error) {
	s, err := c.cli.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) { // ключа нет
			return decimal.Decimal{}, false, nil
		}
		c.log.Debug("cache get failed", "key", key, "error", err)
		return decimal.Decimal{}, false, err
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		c.log.Debug("cache parse failed", "key", key, "error", err)
		return decimal.Decimal{}, false, fmt.Errorf("cache parse value: %w", err)
	}
	return v, true, nil
}

// Set сохраняет результат по ключу. Дубликаты перезаписываются.
func (c *Cache) Set(ctx context.Context, key string, value decimal.Decimal) error {
	if err := c.cli.Set(ctx, key, value.String(), c.ttl).Err(); err != nil {
		c.log.Debug("cache set failed", "key", key, "error", err)
		return err
	}
	return nil
}
