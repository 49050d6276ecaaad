package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"pluginCalc/internal/domain"
)

// IAnalytics — запись событий вычислений в хранилище для аналитики (ClickHouse).
type IAnalytics interface {
	WriteCalculation(ctx context.Context, ev domain.CalculationEvent) error
}
