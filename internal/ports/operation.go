package ports

//go:generate mockgen -source=operation.go -destination=../mocks/operation_mock.go -package=mocks

import (
	"github.com/shopspring/decimal"

	"pluginCalc/internal/domain"
)

// IOperation — операция калькулятора: чистая бинарная функция над десятичными числами.
// ExecuteIsolated выполняет то же вычисление в отдельном воркере и кладёт ровно одно сообщение в out.
type IOperation interface {
	Name() string
	Execute(operand1, operand2 decimal.Decimal) (decimal.Decimal, error)
	ExecuteIsolated(operand1, operand2 decimal.Decimal, out chan<- domain.Outcome)
}

// IRegistry — реестр операций: имя -> операция, порядок регистрации сохраняется.
type IRegistry interface {
	Lookup(name string) (IOperation, bool)
	Names() []string
	Len() int
}
