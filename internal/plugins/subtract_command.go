package plugins

import (
	"github.com/shopspring/decimal"

	"pluginCalc/internal/domain"
	"pluginCalc/internal/ports"
)

func init() {
	Register(Unit{Module: "subtract_command", Type: "SubtractCommand", New: func() ports.IOperation { return SubtractCommand{} }})
}

// SubtractCommand — вычитание второго операнда из первого.
type SubtractCommand struct{}

func (SubtractCommand) Name() string { return "subtract" }

func (SubtractCommand) Execute(operand1, operand2 decimal.Decimal) (decimal.Decimal, error) {
	return operand1.Sub(operand2), nil
}

func (c SubtractCommand) ExecuteIsolated(operand1, operand2 decimal.Decimal, out chan<- domain.Outcome) {
	executeIsolated(c, operand1, operand2, out)
}
