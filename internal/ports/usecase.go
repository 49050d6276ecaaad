package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"pluginCalc/internal/domain"
)

// ICalculatorUseCase — контракт движка выполнения: расчёт по имени операции, список операций, обработка событий из Kafka.
type ICalculatorUseCase interface {
	Run(ctx context.Context, operand1, operand2, operation string, isolated bool) (*domain.Record, error)
	Operations() []string
	HandleCalculationEvent(ctx context.Context, ev domain.CalculationEvent) error
}
