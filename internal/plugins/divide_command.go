package plugins

import (
	"github.com/shopspring/decimal"

	"pluginCalc/internal/domain"
	"pluginCalc/internal/ports"
)

// DivisionPrecision — сколько знаков после запятой сохраняет частное.
// Если частное конечно в этих пределах, результат точный.
const DivisionPrecision = 28

func init() {
	Register(Unit{Module: "divide_command", Type: "DivideCommand", New: func() ports.IOperation { return DivideCommand{} }})
}

// DivideCommand — деление. Делитель, равный нулю, даёт domain.ErrDivisionByZero.
type DivideCommand struct{}

func (DivideCommand) Name() string { return "divide" }

func (DivideCommand) Execute(operand1, operand2 decimal.Decimal) (decimal.Decimal, error) {
	if operand2.IsZero() {
		return decimal.Decimal{}, domain.ErrDivisionByZero
	}
	return operand1.DivRound(operand2, DivisionPrecision), nil
}

func (c DivideCommand) ExecuteIsolated(operand1, operand2 decimal.Decimal, out chan<- domain.Outcome) {
	executeIsolated(c, operand1, operand2, out)
}
