package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Ошибки калькулятора. Проверяются через errors.Is.
var (
	// ErrUnknownOperation возвращается, когда операции нет в реестре.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrDivisionByZero — деление на ноль (одна и та же ошибка в синхронном и изолированном режиме).
	ErrDivisionByZero = errors.New("division by zero is not allowed")
	// ErrInvalidNumber — операнд не распознан как десятичное число.
	ErrInvalidNumber = errors.New("invalid numeric input")
	// ErrInvalidIndex — позиция для удаления вне диапазона истории.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrExecutionFailed — изолированный воркер завершился, не отправив результат.
	ErrExecutionFailed = errors.New("isolated execution failed")
	// ErrOperationPanic — операция упала с паникой.
	ErrOperationPanic = errors.New("operation panicked")
	// ErrMalformedHistory — файл истории не соответствует формату.
	ErrMalformedHistory = errors.New("malformed history file")
)

// Record — запись истории: снимок выполненного вычисления.
type Record struct {
	Operation string
	Operand1  decimal.Decimal
	Operand2  decimal.Decimal
	Result    decimal.Decimal
}

// Equal сравнивает записи по значениям (2.0 и 2 считаются равными).
func (r Record) Equal(other Record) bool {
	return r.Operation == other.Operation &&
		r.Operand1.Equal(other.Operand1) &&
		r.Operand2.Equal(other.Operand2) &&
		r.Result.Equal(other.Result)
}

func (r Record) String() string {
	return r.Operation + "(" + r.Operand1.String() + ", " + r.Operand2.String() + ") = " + r.Result.String()
}
