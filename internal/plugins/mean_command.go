package plugins

import (
	"github.com/shopspring/decimal"

	"pluginCalc/internal/domain"
	"pluginCalc/internal/ports"
)

// half — 1/2 точно представима, поэтому умножение на неё делит на два без округления.
var half = decimal.New(5, -1)

func init() {
	Register(Unit{Module: "mean_command", Type: "MeanCommand", New: func() ports.IOperation { return MeanCommand{} }})
}

// MeanCommand — среднее арифметическое двух чисел: (a+b)/2.
type MeanCommand struct{}

func (MeanCommand) Name() string { return "mean" }

func (MeanCommand) Execute(operand1, operand2 decimal.Decimal) (decimal.Decimal, error) {
	return mean(operand1, operand2), nil
}

func (c MeanCommand) ExecuteIsolated(operand1, operand2 decimal.Decimal, out chan<- domain.Outcome) {
	executeIsolated(c, operand1, operand2, out)
}

func mean(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b).Mul(half)
}
