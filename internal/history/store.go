// Package history хранит упорядоченную историю вычислений и сохраняет её в CSV.
package history

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"

	"pluginCalc/internal/domain"
	"pluginCalc/internal/ports"
)

var _ ports.IHistoryStore = (*Store)(nil)

// Header — заголовок файла истории. Load принимает только его.
var Header = []string{"operation", "operand1", "operand2", "result"}

// Store — история вычислений в памяти. Порядок вставки — единственный порядок,
// позиция (с нуля) — адрес для удаления; после удаления индексы сдвигаются.
// Все операции под одним мьютексом.
type Store struct {
	mu      sync.Mutex
	fs      afero.Fs
	records []domain.Record
}

// NewStore создаёт пустую историю поверх файловой системы fs.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs, records: []domain.Record{}}
}

// Append добавляет запись в конец.
func (s *Store) Append(rec domain.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// Clear удаляет все записи.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = []domain.Record{}
}

// All возвращает копию всех записей в порядке вставки.
func (s *Store) All() []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.records)
}

// Filter возвращает записи с данной операцией в исходном порядке; пустой срез, если совпадений нет.
func (s *Store) Filter(operation string) []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Record{}
	for _, rec := range s.records {
		if rec.Operation == operation {
			out = append(out, rec)
		}
	}
	return out
}

// Delete удаляет запись по позиции. Вне диапазона — domain.ErrInvalidIndex, история не меняется.
func (s *Store) Delete(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.records) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidIndex, index)
	}
	s.records = slices.Delete(s.records, index, index+1)
	return nil
}

// Latest возвращает последнюю запись.
func (s *Store) Latest() (domain.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return domain.Record{}, false
	}
	return s.records[len(s.records)-1], true
}

// Len — количество записей.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Save записывает историю в CSV с заголовком operation,operand1,operand2,result. Существующий файл перезаписывается.
func (s *Store) Save(path string) error {
	s.mu.Lock()
	rows := make([][]string, 0, len(s.records)+1)
	rows = append(rows, Header)
	for _, rec := range s.records {
		rows = append(rows, []string{rec.Operation, rec.Operand1.String(), rec.Operand2.String(), rec.Result.String()})
	}
	s.mu.Unlock()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := writeFileAtomic(s.fs, path, buf.Bytes()); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// Load полностью заменяет историю содержимым файла. Файл читается целиком до замены:
// при любой ошибке текущая история остаётся нетронутой.
func (s *Store) Load(path string) error {
	f, err := s.fs.Open(path)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	defer f.Close()

	records, err := decode(f)
	if err != nil {
		return fmt.Errorf("load history %s: %w", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	return nil
}

func decode(f afero.File) ([]domain.Record, error) {
	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Header)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedHistory, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header", domain.ErrMalformedHistory)
	}
	if !slices.Equal(rows[0], Header) {
		return nil, fmt.Errorf("%w: unexpected header %v", domain.ErrMalformedHistory, rows[0])
	}

	records := make([]domain.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrMalformedHistory, i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string) (domain.Record, error) {
	values := make([]decimal.Decimal, 3)
	for i, field := range row[1:] {
		v, err := decimal.NewFromString(field)
		if err != nil {
			return domain.Record{}, fmt.Errorf("column %s: %w", Header[i+1], err)
		}
		values[i] = v
	}
	return domain.Record{Operation: row[0], Operand1: values[0], Operand2: values[1], Result: values[2]}, nil
}
