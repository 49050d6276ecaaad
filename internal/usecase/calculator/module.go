package calculator

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"pluginCalc/internal/pkg/metrics"
	"pluginCalc/internal/ports"
)

var _ ports.ICalculatorUseCase = (*UseCase)(nil)

// cacheKey формирует читаемый ключ вычисления для кэша, например "1 add 1".
func cacheKey(operand1, operand2 decimal.Decimal, operation string) string {
	return operand1.String() + " " + operation + " " + operand2.String()
}

// UseCase — движок выполнения: разбирает операнды, находит операцию в реестре,
// выполняет её синхронно или в изолированном воркере и пишет результат в историю.
// cache, broker и analytics необязательны (nil — выключено).
type UseCase struct {
	registry  ports.IRegistry
	history   ports.IHistoryStore
	cache     ports.ICache
	broker    ports.IProducer
	analytics ports.IAnalytics
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// New создаёт движок калькулятора.
func New(
	registry ports.IRegistry,
	history ports.IHistoryStore,
	cache ports.ICache,
	broker ports.IProducer,
	analytics ports.IAnalytics,
	m *metrics.Metrics,
	log *slog.Logger,
) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{
		registry:  registry,
		history:   history,
		cache:     cache,
		broker:    broker,
		analytics: analytics,
		metrics:   m,
		log:       log,
	}
}
