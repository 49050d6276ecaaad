package click

import (
	"context"
	"fmt"

	"pluginCalc/internal/domain"
	"pluginCalc/internal/ports"
)

// Table — таблица событий вычислений.
const Table = "calculations_analytics"

var _ ports.IAnalytics = (*CalculationWriter)(nil)

// CalculationWriter пишет события вычислений в ClickHouse в виде, удобном для аналитики
// (GROUP BY operation, по времени, доля изолированных запусков).
// Числа хранятся строкой без потери точности и дублируются во Float64 для агрегатов.
type CalculationWriter struct {
	db    *Client
	table string
}

// NewCalculationWriter создаёт писатель событий в базе клиента.
func NewCalculationWriter(db *Client) *CalculationWriter {
	return &CalculationWriter{db: db, table: db.database + "." + Table}
}

// EnsureTable создаёт таблицу, если её ещё нет. Вызови один раз перед чтением топика.
func (w *CalculationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id String,
			operation LowCardinality(String),
			operand1 String,
			operand2 String,
			result String,
			result_value Float64,
			isolated Bool,
			created_at DateTime64(3)
		) ENGINE = ReplacingMergeTree()
		PARTITION BY toYYYYMM(created_at)
		ORDER BY (operation, created_at, id)`,
		w.table,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteCalculation реализует ports.IAnalytics: пишет одно событие.
// Повторная доставка того же события схлопывается движком ReplacingMergeTree по ключу сортировки.
func (w *CalculationWriter) WriteCalculation(ctx context.Context, ev domain.CalculationEvent) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (id, operation, operand1, operand2, result, result_value, isolated, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		w.table,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		ev.ID, ev.Operation, ev.Operand1.String(), ev.Operand2.String(), ev.Result.String(),
		ev.Result.InexactFloat64(), ev.Isolated, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}

// CountByOperation возвращает число событий по каждой операции.
func (w *CalculationWriter) CountByOperation(ctx context.Context) (map[string]uint64, error) {
	rows, err := w.db.DB().QueryContext(ctx,
		fmt.Sprintf("SELECT operation, count() FROM %s FINAL GROUP BY operation", w.table))
	if err != nil {
		return nil, fmt.Errorf("count calculations: %w", err)
	}
	defer rows.Close()

	out := make(map[string]uint64)
	for rows.Next() {
		var (
			op string
			n  uint64
		)
		if err := rows.Scan(&op, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		out[op] = n
	}
	return out, rows.Err()
}
