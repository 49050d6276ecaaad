package plugins

import (
	"github.com/shopspring/decimal"

	"pluginCalc/internal/domain"
	"pluginCalc/internal/ports"
)

func init() {
	Register(Unit{Module: "multiply_command", Type: "MultiplyCommand", New: func() ports.IOperation { return MultiplyCommand{} }})
}

type MultiplyCommand struct{}

func (MultiplyCommand) Name() string { return "multiply" }

func (MultiplyCommand) Execute(operand1, operand2 decimal.Decimal) (decimal.Decimal, error) {
	return operand1.Mul(operand2), nil
}

func (c MultiplyCommand) ExecuteIsolated(operand1, operand2 decimal.Decimal, out chan<- domain.Outcome) {
	executeIsolated(c, operand1, operand2, out)
}
