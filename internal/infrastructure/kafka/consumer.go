package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"

	"pluginCalc/internal/domain"
	"pluginCalc/internal/ports"
)

// Message — сообщение из Kafka (ключ, тело, топик, партиция, offset).
type Message = kafka.Message

// reader — часть kafka.Reader, которой пользуется консьюмер.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer декодирует сообщения в domain.CalculationEvent и передаёт их в use case.
type Consumer struct {
	r          reader
	uc         ports.ICalculatorUseCase
	log        *slog.Logger
	newBackOff func() backoff.BackOff
}

// NewConsumer создаёт консьюмера по конфигу, use case и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, uc ports.ICalculatorUseCase, log *slog.Logger) *Consumer {
	return newConsumer(New(cfg).Reader(), uc, log)
}

func newConsumer(r reader, uc ports.ICalculatorUseCase, log *slog.Logger) *Consumer {
	if log == nil {
		log = slog.Default()
	}
	return &Consumer{r: r, uc: uc, log: log, newBackOff: handleBackOff}
}

// handleBackOff — паузы между повторами обработчика: от 200ms до 30s, без общего лимита времени.
func handleBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0
	return b
}

// Run в цикле читает сообщения, декодирует JSON в domain.CalculationEvent, вызывает uc.HandleCalculationEvent и коммитит при успехе.
// Нечитаемое сообщение коммитится и пропускается. Ошибка обработчика повторяется на том же сообщении
// с экспоненциальной паузой, пока обработка не пройдёт или не отменят ctx; до успеха offset не коммитится.
// Выход по отмене ctx или при ошибке чтения.
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Info("kafka consumer started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		var ev domain.CalculationEvent
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			c.log.Warn("kafka unmarshal error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			_ = c.r.CommitMessages(ctx, msg)
			continue
		}

		if err := c.handle(ctx, msg, ev); err != nil {
			return err
		}

		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// handle вызывает обработчик до успеха; ошибка — только при отмене ctx или исчерпанном backoff.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message, ev domain.CalculationEvent) error {
	op := func() error {
		return c.uc.HandleCalculationEvent(ctx, ev)
	}
	notify := func(err error, wait time.Duration) {
		c.log.Warn("kafka handle error, retrying", "error", err, "id", ev.ID, "offset", msg.Offset, "backoff", wait)
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(c.newBackOff(), ctx), notify); err != nil {
		if ctx.Err() != nil {
			c.log.Info("kafka consumer stopped, event left uncommitted", "id", ev.ID, "offset", msg.Offset)
			return ctx.Err()
		}
		return err
	}
	return nil
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
