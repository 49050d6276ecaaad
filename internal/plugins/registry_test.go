package plugins

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pluginCalc/internal/ports"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		operation string
		want      string
	}{
		{operation: "add", want: "AddCommand"},
		{operation: "mean", want: "MeanCommand"},
		{operation: "standard_deviation", want: "StandardDeviationCommand"},
		{operation: "a_b_c", want: "ABCCommand"},
	}
	for _, tt := range tests {
		t.Run(tt.operation, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeName(tt.operation))
		})
	}
}

func TestDiscover_Default(t *testing.T) {
	reg := Discover(newTestLogger(), Default)

	assert.Equal(t, []string{"add", "divide", "mean", "multiply", "standard_deviation", "subtract"}, reg.Names())
	for _, name := range reg.Names() {
		op, ok := reg.Lookup(name)
		require.True(t, ok)
		assert.Equal(t, name, op.Name())
	}
}

func TestDiscover_MissingSource(t *testing.T) {
	reg := Discover(newTestLogger(), nil)

	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.Names())
}

func TestDiscover_SkipsBrokenUnits(t *testing.T) {
	catalog := NewCatalog(
		Unit{Module: "add_command", Type: "AddCommand", New: func() ports.IOperation { return AddCommand{} }},
		// тип не соответствует соглашению
		Unit{Module: "mean_command", Type: "AverageCommand", New: func() ports.IOperation { return MeanCommand{} }},
		// нет конструктора
		Unit{Module: "divide_command", Type: "DivideCommand"},
		// конструктор паникует
		Unit{Module: "multiply_command", Type: "MultiplyCommand", New: func() ports.IOperation { panic("broken") }},
		// конструктор вернул nil
		Unit{Module: "subtract_command", Type: "SubtractCommand", New: func() ports.IOperation { return nil }},
		// не подходит под соглашение об именах — игнорируется
		Unit{Module: "helpers", Type: "HelpersCommand", New: func() ports.IOperation { return AddCommand{} }},
		// пустое имя операции
		Unit{Module: "_command", Type: "Command", New: func() ports.IOperation { return AddCommand{} }},
	)

	reg := Discover(newTestLogger(), catalog)

	assert.Equal(t, []string{"add"}, reg.Names())
	_, ok := reg.Lookup("mean")
	assert.False(t, ok)
}

func TestDiscover_LaterRegistrationWins(t *testing.T) {
	catalog := NewCatalog(
		Unit{Module: "add_command", Type: "AddCommand", New: func() ports.IOperation { return AddCommand{} }},
		Unit{Module: "mean_command", Type: "MeanCommand", New: func() ports.IOperation { return MeanCommand{} }},
		Unit{Module: "add_command", Type: "AddCommand", New: func() ports.IOperation { return SubtractCommand{} }},
	)

	reg := Discover(newTestLogger(), catalog)

	assert.Equal(t, []string{"add", "mean"}, reg.Names(), "позиция первой регистрации сохраняется")
	op, ok := reg.Lookup("add")
	require.True(t, ok)
	assert.Equal(t, "subtract", op.Name(), "значение берётся из последней регистрации")
}

func TestCatalog_UnitsSortedByModule(t *testing.T) {
	catalog := NewCatalog(
		Unit{Module: "subtract_command"},
		Unit{Module: "add_command"},
		Unit{Module: "mean_command"},
	)

	var modules []string
	for _, u := range catalog.Units() {
		modules = append(modules, u.Module)
	}
	assert.Equal(t, []string{"add_command", "mean_command", "subtract_command"}, modules)
}
