package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculationEvent — событие о выполненном вычислении, публикуется в брокер и пишется в аналитику.
type CalculationEvent struct {
	ID        string          `json:"id"`
	Operation string          `json:"operation"`
	Operand1  decimal.Decimal `json:"operand1"`
	Operand2  decimal.Decimal `json:"operand2"`
	Result    decimal.Decimal `json:"result"`
	Isolated  bool            `json:"isolated"`
	CreatedAt time.Time       `json:"created_at"`
}
