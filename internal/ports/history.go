package ports

//go:generate mockgen -source=history.go -destination=../mocks/history_mock.go -package=mocks

import "pluginCalc/internal/domain"

// IHistoryStore — упорядоченная история вычислений с сохранением в файл.
type IHistoryStore interface {
	Append(rec domain.Record)
	Clear()
	All() []domain.Record
	Filter(operation string) []domain.Record
	Delete(index int) error
	Latest() (domain.Record, bool)
	Len() int
	Save(path string) error
	Load(path string) error
}
