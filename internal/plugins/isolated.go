package plugins

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pluginCalc/internal/domain"
	"pluginCalc/internal/ports"
)

// executeIsolated — общее тело изолированного выполнения: считает через Execute и кладёт
// в out ровно одно сообщение. Ошибка и паника уходят в канал как данные.
func executeIsolated(op ports.IOperation, operand1, operand2 decimal.Decimal, out chan<- domain.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out <- domain.Outcome{Kind: domain.OutcomePanic, Message: fmt.Sprint(r)}
		}
	}()

	result, err := op.Execute(operand1, operand2)
	if err != nil {
		out <- domain.Failed(err)
		return
	}
	out <- domain.OK(result)
}
