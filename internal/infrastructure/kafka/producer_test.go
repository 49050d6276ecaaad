package kafka

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pluginCalc/internal/domain"
	"pluginCalc/internal/mocks"
	"pluginCalc/internal/testutil"
)

// kafkaContainer поднимается один раз в TestMain; nil — Docker недоступен или режим -short.
var kafkaContainer *testutil.KafkaContainer

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), testutil.StartupTimeout)
	defer cancel()

	var err error
	kafkaContainer, err = testutil.NewKafkaContainer(ctx)
	if err != nil {
		log.Printf("kafka container unavailable: %v", err)
	}

	code := m.Run()

	if kafkaContainer != nil {
		if err := kafkaContainer.Terminate(context.Background()); err != nil {
			log.Printf("kafka terminate: %v", err)
		}
	}
	os.Exit(code)
}

func TestProducerConsumer_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}
	if kafkaContainer == nil {
		t.Skip("контейнер Kafka не поднят")
	}

	cfg := &Config{
		Enabled: true,
		Brokers: strings.Join(kafkaContainer.Brokers, ","),
		Topic:   "calculations-" + strings.ToLower(ulid.Make().String()),
		GroupID: "calculator-test",
	}

	ev := domain.CalculationEvent{
		ID:        ulid.Make().String(),
		Operation: "mean",
		Operand1:  decimal.NewFromInt(10),
		Operand2:  decimal.NewFromInt(20),
		Result:    decimal.NewFromInt(15),
		Isolated:  true,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	value, err := json.Marshal(ev)
	require.NoError(t, err)

	producer := NewProducer(cfg)
	t.Cleanup(func() { producer.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// первая запись может упасть, пока топик создаётся автоматически
	require.Eventually(t, func() bool {
		return producer.Send(ctx, []byte(ev.ID), value) == nil
	}, 30*time.Second, time.Second)

	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockICalculatorUseCase(ctrl)
	got := make(chan domain.CalculationEvent, 1)
	mockUC.EXPECT().HandleCalculationEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e domain.CalculationEvent) error {
			got <- e
			cancel()
			return nil
		})

	consumer := NewConsumer(cfg, mockUC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { consumer.Close() })

	err = consumer.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	select {
	case e := <-got:
		assert.Equal(t, ev.ID, e.ID)
		assert.Equal(t, "mean", e.Operation)
		assert.True(t, e.Result.Equal(ev.Result))
		assert.True(t, e.Isolated)
		assert.True(t, ev.CreatedAt.Equal(e.CreatedAt))
	default:
		t.Fatal("событие не получено")
	}
}
