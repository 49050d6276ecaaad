package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"
)

// ICache — контракт кэша результатов операций. Ключ — операция с операндами, значение — результат.
// Операции чистые, поэтому закэшированный результат всегда совпадает с вычисленным.
type ICache interface {
	Get(ctx context.Context, key string) (value decimal.Decimal, found bool, err error)
	Set(ctx context.Context, key string, value decimal.Decimal) error
}
