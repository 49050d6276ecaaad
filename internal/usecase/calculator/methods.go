package calculator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"pluginCalc/internal/calculation"
	"pluginCalc/internal/domain"
	"pluginCalc/internal/pkg/metrics"
	"pluginCalc/internal/ports"
)

// Run выполняет операцию по имени над двумя операндами в текстовом виде.
// Ошибки ввода (ErrInvalidNumber, ErrUnknownOperation) возвращаются до любых побочных эффектов.
// Ошибка операции (ErrDivisionByZero, ErrOperationPanic, ErrExecutionFailed) не создаёт записи в истории.
func (u *UseCase) Run(ctx context.Context, operand1, operand2, operation string, isolated bool) (*domain.Record, error) {
	a, err := parseOperand(operand1)
	if err != nil {
		u.log.Error("invalid input values", "operand1", operand1, "operand2", operand2)
		return nil, err
	}
	b, err := parseOperand(operand2)
	if err != nil {
		u.log.Error("invalid input values", "operand1", operand1, "operand2", operand2)
		return nil, err
	}

	op, ok := u.registry.Lookup(operation)
	if !ok {
		u.log.Warn("unknown operation", "operation", operation)
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownOperation, operation)
	}

	mode := metrics.ModeSync
	if isolated {
		mode = metrics.ModeIsolated
	}
	u.log.Info("running", "operation", operation, "operand1", a, "operand2", b, "mode", mode)
	start := time.Now()

	key := cacheKey(a, b, operation)
	result, cached := u.cached(ctx, key)
	if cached {
		mode = metrics.ModeCached
	} else {
		if isolated {
			result, err = u.executeIsolated(op, a, b)
		} else {
			result, err = u.execute(op, a, b)
		}
		if err != nil {
			u.metrics.Observe(operation, mode, metrics.StatusError, time.Since(start))
			u.log.Error("calculation failed", "operation", operation, "mode", mode, "error", err)
			return nil, err
		}
	}
	u.metrics.Observe(operation, mode, metrics.StatusOK, time.Since(start))
	u.log.Info("result", "operation", operation, "result", result, "mode", mode)

	calc := calculation.FromResult(a, b, op, result)
	rec := calc.Record()
	u.history.Append(rec)
	u.log.Debug("calculation added to history", "records", u.history.Len())

	if !cached && u.cache != nil {
		if err := u.cache.Set(ctx, key, result); err != nil {
			u.log.Warn("cache set", "key", key, "error", err)
		}
	}
	u.publish(ctx, rec, isolated)

	return &rec, nil
}

// Operations — имена зарегистрированных операций в порядке реестра.
func (u *UseCase) Operations() []string {
	return u.registry.Names()
}

// HandleCalculationEvent вызывается консьюмером при получении события из топика (часть ICalculatorUseCase).
func (u *UseCase) HandleCalculationEvent(ctx context.Context, ev domain.CalculationEvent) error {
	if u.analytics == nil {
		return fmt.Errorf("analytics is not configured")
	}
	if err := u.analytics.WriteCalculation(ctx, ev); err != nil {
		u.log.Warn("analytics write", "id", ev.ID, "error", err)
		return err
	}
	u.log.Info("calculation stored to click", "id", ev.ID, "operation", ev.Operation, "result", ev.Result)
	return nil
}

func parseOperand(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", domain.ErrInvalidNumber, s)
	}
	return v, nil
}

// cached проверяет кэш. Ошибка кэша — промах.
func (u *UseCase) cached(ctx context.Context, key string) (decimal.Decimal, bool) {
	if u.cache == nil {
		return decimal.Decimal{}, false
	}
	v, found, err := u.cache.Get(ctx, key)
	if err != nil {
		u.log.Warn("cache get", "key", key, "error", err)
		return decimal.Decimal{}, false
	}
	if found {
		u.log.Debug("cache hit", "key", key)
	}
	return v, found
}

// execute — синхронное выполнение в текущей горутине. Паника операции превращается в ошибку.
func (u *UseCase) execute(op ports.IOperation, a, b decimal.Decimal) (result decimal.Decimal, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", domain.ErrOperationPanic, r)
		}
	}()
	return op.Execute(a, b)
}

// executeIsolated запускает воркер со своими копиями операндов, ждёт его завершения
// и читает одно сообщение из канала. Воркер, не отправивший ничего, — ErrExecutionFailed.
func (u *UseCase) executeIsolated(op ports.IOperation, a, b decimal.Decimal) (decimal.Decimal, error) {
	out := make(chan domain.Outcome, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func(a, b decimal.Decimal) {
		defer wg.Done()
		defer close(out)
		defer func() {
			if r := recover(); r != nil {
				select {
				case out <- domain.Outcome{Kind: domain.OutcomePanic, Message: fmt.Sprint(r)}:
				default:
				}
			}
		}()
		op.ExecuteIsolated(a, b, out)
	}(clone(a), clone(b))
	wg.Wait()

	outcome, ok := <-out
	if !ok {
		u.log.Error("failed to fetch result from isolated worker")
		return decimal.Decimal{}, domain.ErrExecutionFailed
	}
	if err := outcome.Err(); err != nil {
		return decimal.Decimal{}, err
	}
	return outcome.Value, nil
}

// clone — независимая копия числа (Coefficient возвращает новый big.Int).
func clone(d decimal.Decimal) decimal.Decimal {
	return decimal.NewFromBigInt(d.Coefficient(), d.Exponent())
}

// publish отправляет событие о вычислении в брокер. Ошибка логируется и не влияет на результат.
func (u *UseCase) publish(ctx context.Context, rec domain.Record, isolated bool) {
	if u.broker == nil {
		return
	}
	ev := domain.CalculationEvent{
		ID:        ulid.Make().String(),
		Operation: rec.Operation,
		Operand1:  rec.Operand1,
		Operand2:  rec.Operand2,
		Result:    rec.Result,
		Isolated:  isolated,
		CreatedAt: time.Now().UTC(),
	}
	value, err := json.Marshal(ev)
	if err != nil {
		u.log.Warn("event marshal", "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(ev.ID), value); err != nil {
		u.log.Warn("broker send", "id", ev.ID, "error", err)
		return
	}
	u.log.Info("calculation published", "id", ev.ID, "operation", rec.Operation)
}
