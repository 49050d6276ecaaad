package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// OutcomeKind — тег результата, который воркер кладёт в канал.
type OutcomeKind int

const (
	OutcomeOK OutcomeKind = iota
	OutcomeDivisionByZero
	OutcomePanic
)

// Outcome — сообщение из изолированного воркера: либо число, либо ошибка в виде данных (Kind + Message).
// Ошибка не пересекает границу изоляции как значение error, потребитель смотрит на Kind.
type Outcome struct {
	Kind    OutcomeKind
	Value   decimal.Decimal
	Message string
}

// OK собирает успешный результат.
func OK(v decimal.Decimal) Outcome {
	return Outcome{Kind: OutcomeOK, Value: v}
}

// Failed переводит ошибку операции в тегированный результат.
func Failed(err error) Outcome {
	kind := OutcomePanic
	if errors.Is(err, ErrDivisionByZero) {
		kind = OutcomeDivisionByZero
	}
	return Outcome{Kind: kind, Message: err.Error()}
}

// Err восстанавливает ошибку по тегу. Для OutcomeOK возвращает nil.
func (o Outcome) Err() error {
	switch o.Kind {
	case OutcomeOK:
		return nil
	case OutcomeDivisionByZero:
		return ErrDivisionByZero
	default:
		return fmt.Errorf("%w: %s", ErrOperationPanic, o.Message)
	}
}
