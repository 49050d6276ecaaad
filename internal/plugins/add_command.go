package plugins

import (
	"github.com/shopspring/decimal"

	"pluginCalc/internal/domain"
	"pluginCalc/internal/ports"
)

func init() {
	Register(Unit{Module: "add_command", Type: "AddCommand", New: func() ports.IOperation { return AddCommand{} }})
}

// AddCommand — сложение.
type AddCommand struct{}

func (AddCommand) Name() string { return "add" }

func (AddCommand) Execute(operand1, operand2 decimal.Decimal) (decimal.Decimal, error) {
	return operand1.Add(operand2), nil
}

func (c AddCommand) ExecuteIsolated(operand1, operand2 decimal.Decimal, out chan<- domain.Outcome) {
	executeIsolated(c, operand1, operand2, out)
}
