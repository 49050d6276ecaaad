package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pluginCalc/internal/domain"
	"pluginCalc/internal/ports"
)

// Calculation — два операнда и операция; результат появляется после выполнения.
// Операция не принадлежит вычислению, ей владеет реестр.
type Calculation struct {
	Operand1  decimal.Decimal
	Operand2  decimal.Decimal
	Operation ports.IOperation

	result   decimal.Decimal
	executed bool
}

// New создаёт невыполненное вычисление.
func New(operand1, operand2 decimal.Decimal, op ports.IOperation) *Calculation {
	return &Calculation{Operand1: operand1, Operand2: operand2, Operation: op}
}

// FromResult создаёт вычисление с уже известным результатом (операция повторно не вызывается).
func FromResult(operand1, operand2 decimal.Decimal, op ports.IOperation, result decimal.Decimal) *Calculation {
	return &Calculation{Operand1: operand1, Operand2: operand2, Operation: op, result: result, executed: true}
}

// Operate выполняет операцию синхронно и запоминает результат. Повторный вызов пересчитывает и перезаписывает его.
func (c *Calculation) Operate() (decimal.Decimal, error) {
	result, err := c.Operation.Execute(c.Operand1, c.Operand2)
	if err != nil {
		return decimal.Decimal{}, err
	}
	c.result, c.executed = result, true
	return result, nil
}

// Result возвращает результат; ok == false, пока вычисление не выполнено.
func (c *Calculation) Result() (decimal.Decimal, bool) {
	return c.result, c.executed
}

// Record — снимок для истории: имя операции, операнды, результат.
func (c *Calculation) Record() domain.Record {
	return domain.Record{
		Operation: c.Operation.Name(),
		Operand1:  c.Operand1,
		Operand2:  c.Operand2,
		Result:    c.result,
	}
}

func (c *Calculation) String() string {
	return fmt.Sprintf("Calculation(%s, %s, %s)", c.Operand1, c.Operand2, c.Operation.Name())
}
