package plugins

import (
	"github.com/shopspring/decimal"

	"pluginCalc/internal/domain"
	"pluginCalc/internal/ports"
)

func init() {
	Register(Unit{
		Module: "standard_deviation_command",
		Type:   "StandardDeviationCommand",
		New:    func() ports.IOperation { return StandardDeviationCommand{} },
	})
}

// StandardDeviationCommand — стандартное отклонение двух чисел (генеральная совокупность, n=2).
// Оба отклонения от среднего равны ±(a-b)/2, поэтому корень из дисперсии — ровно |a-b|/2:
// результат точный для любых операндов, без перехода во float64.
type StandardDeviationCommand struct{}

func (StandardDeviationCommand) Name() string { return "standard_deviation" }

func (StandardDeviationCommand) Execute(operand1, operand2 decimal.Decimal) (decimal.Decimal, error) {
	return operand1.Sub(operand2).Abs().Mul(half), nil
}

func (c StandardDeviationCommand) ExecuteIsolated(operand1, operand2 decimal.Decimal, out chan<- domain.Outcome) {
	executeIsolated(c, operand1, operand2, out)
}
