package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/chzyer/readline"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pluginCalc/internal/domain"
	"pluginCalc/internal/history"
	"pluginCalc/internal/mocks"
	"pluginCalc/internal/plugins"
	calclUsecase "pluginCalc/internal/usecase/calculator"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// scriptReader отдаёт заранее заданные строки, затем io.EOF.
type scriptReader struct {
	lines []string
	errs  map[int]error
	pos   int
}

func (r *scriptReader) Readline() (string, error) {
	i := r.pos
	r.pos++
	if err, ok := r.errs[i]; ok {
		return "", err
	}
	if i >= len(r.lines) {
		return "", io.EOF
	}
	return r.lines[i], nil
}

// newShell собирает REPL поверх настоящего движка и истории в памяти.
func newShell(lines ...string) (*Shell, *history.Store, afero.Fs, *bytes.Buffer) {
	fs := afero.NewMemMapFs()
	store := history.NewStore(fs)
	uc := calclUsecase.New(plugins.Discover(newTestLogger(), plugins.Default), store, nil, nil, nil, nil, newTestLogger())
	out := &bytes.Buffer{}
	return New(uc, store, &scriptReader{lines: lines}, out, newTestLogger()), store, fs, out
}

func TestRun_Session(t *testing.T) {
	sh, store, _, out := newShell(
		"add 2 3",
		"divide 6 0",
		"mean 10 20 mp",
		"exit",
		"add 1 1", // после exit не выполняется
	)

	require.NoError(t, sh.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Calculator REPL started. Type 'exit' to quit.")
	assert.Contains(t, text, "2 add 3 = 5\n")
	assert.Contains(t, text, "Error: division by zero is not allowed\n")
	assert.Contains(t, text, "10 mean 20 (isolated) = 15\n")
	assert.Contains(t, text, "Exiting REPL mode.")
	assert.Equal(t, 2, store.Len())
}

func TestRun_EOFAndInterrupt(t *testing.T) {
	sh, store, _, out := newShell("add 1 2")
	sh.in = &scriptReader{
		lines: []string{"", "add 1 2"},
		errs:  map[int]error{0: readline.ErrInterrupt},
	}

	require.NoError(t, sh.Run(context.Background()))

	assert.Contains(t, out.String(), "1 add 2 = 3")
	assert.Contains(t, out.String(), "Exiting REPL mode.")
	assert.Equal(t, 1, store.Len())
}

func TestRun_ReadError(t *testing.T) {
	sh, _, _, _ := newShell()
	boom := errors.New("terminal gone")
	sh.in = &scriptReader{errs: map[int]error{0: boom}}

	err := sh.Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestRun_CancelledContext(t *testing.T) {
	sh, store, _, out := newShell("add 1 2")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, sh.Run(ctx))
	assert.Contains(t, out.String(), "Exiting REPL mode.")
	assert.Equal(t, 0, store.Len())
}

func TestExec(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "меню в порядке реестра",
			lines: []string{"menu"},
			want:  []string{"Available Commands:\n- add\n- divide\n- mean\n- multiply\n- standard_deviation\n- subtract\n"},
		},
		{
			name:  "пустая история",
			lines: []string{"history"},
			want:  []string{"No calculations recorded."},
		},
		{
			name:  "история таблицей",
			lines: []string{"add 2 3", "multiply 4 5", "history"},
			want:  []string{"operation", "add", "multiply", "20"},
		},
		{
			name:  "latest без истории",
			lines: []string{"latest"},
			want:  []string{"No history available."},
		},
		{
			name:  "latest",
			lines: []string{"add 2 3", "subtract 2 3", "latest"},
			want:  []string{"Latest calculation: subtract(2, 3) = -1"},
		},
		{
			name:  "неверное число токенов",
			lines: []string{"add 2"},
			want:  []string{"Usage: <command> <num1> <num2> [mp]"},
		},
		{
			name:  "неизвестная команда",
			lines: []string{"power 2 3"},
			want:  []string{"Unknown command 'power'. Type 'menu' to list commands."},
		},
		{
			name:  "невалидное число",
			lines: []string{"add two 3"},
			want:  []string{"Error: One or both inputs are not valid numbers."},
		},
		{
			name:  "незакрытая кавычка",
			lines: []string{`save_history "oops`},
			want:  []string{"Error: "},
		},
		{
			name:  "очистка",
			lines: []string{"add 2 3", "clear_history", "history"},
			want:  []string{"Calculation history cleared.", "No calculations recorded."},
		},
		{
			name:  "фильтр",
			lines: []string{"add 2 3", "mean 1 3", "add 1 1", "filter_with_operation add"},
			want:  []string{"add", "2"},
		},
		{
			name:  "фильтр без совпадений",
			lines: []string{"add 2 3", "filter_with_operation divide"},
			want:  []string{"No records found for operation 'divide'."},
		},
		{
			name:  "фильтр без аргумента",
			lines: []string{"filter_with_operation"},
			want:  []string{"Usage: filter_with_operation <operation>"},
		},
		{
			name:  "удаление",
			lines: []string{"add 2 3", "delete_history 0", "history"},
			want:  []string{"Deleted calculation at index 0.", "No calculations recorded."},
		},
		{
			name:  "удаление по неверному индексу",
			lines: []string{"add 2 3", "delete_history 5"},
			want:  []string{"Invalid index: 5. No record deleted."},
		},
		{
			name:  "удаление без индекса",
			lines: []string{"delete_history abc"},
			want:  []string{"Usage: delete_history <index>"},
		},
		{
			name:  "загрузка отсутствующего файла",
			lines: []string{"load_history missing.csv"},
			want:  []string{"File 'missing.csv' not found."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, _, _, out := newShell()
			for _, line := range tt.lines {
				require.True(t, sh.Exec(context.Background(), line))
			}
			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

// Встроенные команды и таблица диспетчеризации: каждое имя из builtins (кроме exit) имеет обработчик.
func TestCommands_Dispatch(t *testing.T) {
	for _, name := range builtins {
		if name == "exit" {
			continue
		}
		assert.Contains(t, commands, name)
	}

	sh, store, _, out := newShell()
	store.Append(domain.Record{
		Operation: "divide",
		Operand1:  decimal.RequireFromString("1"),
		Operand2:  decimal.RequireFromString("4"),
		Result:    decimal.RequireFromString("0.25"),
	})

	commands["history"](sh, nil)

	assert.Contains(t, out.String(), "divide")
	assert.Contains(t, out.String(), "0.25")
}

func TestExec_Exit(t *testing.T) {
	sh, _, _, _ := newShell()

	assert.False(t, sh.Exec(context.Background(), "exit"))
	assert.False(t, sh.Exec(context.Background(), "  EXIT "))
	assert.True(t, sh.Exec(context.Background(), "   "))
}

func TestExec_SaveAndLoad(t *testing.T) {
	sh, store, fs, out := newShell()
	ctx := context.Background()

	sh.Exec(ctx, "add 2 3")
	sh.Exec(ctx, "divide 1 4")
	sh.Exec(ctx, `save_history "my history.csv"`)
	assert.Contains(t, out.String(), "History saved to my history.csv")

	data, err := afero.ReadFile(fs, "my history.csv")
	require.NoError(t, err)
	assert.Equal(t, "operation,operand1,operand2,result\nadd,2,3,5\ndivide,1,4,0.25\n", string(data))

	sh.Exec(ctx, "clear_history")
	sh.Exec(ctx, `load_history "my history.csv"`)
	assert.Contains(t, out.String(), "History loaded from my history.csv")
	require.Equal(t, 2, store.Len())
	assert.Equal(t, "divide", store.All()[1].Operation)
}

func TestExec_LoadMalformedKeepsHistory(t *testing.T) {
	sh, store, fs, out := newShell()
	ctx := context.Background()
	require.NoError(t, afero.WriteFile(fs, "bad.csv", []byte("op,a,b\nadd,1,2\n"), 0o644))

	sh.Exec(ctx, "add 2 3")
	sh.Exec(ctx, "load_history bad.csv")

	assert.Contains(t, out.String(), "Error: failed to load history:")
	assert.Equal(t, 1, store.Len())
}

func TestExec_EngineErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockICalculatorUseCase(ctrl)
	mockUC.EXPECT().Operations().Return([]string{"add"}).AnyTimes()
	mockUC.EXPECT().Run(gomock.Any(), "1", "2", "add", true).Return(nil, domain.ErrExecutionFailed)

	out := &bytes.Buffer{}
	sh := New(mockUC, history.NewStore(afero.NewMemMapFs()), &scriptReader{}, out, newTestLogger())

	sh.Exec(context.Background(), "add 1 2 MP")
	assert.Equal(t, "Isolated calculation failed.\n", out.String())
}

func TestCalculate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockICalculatorUseCase(ctrl)
	rec := &domain.Record{Operation: "add"}
	gomock.InOrder(
		mockUC.EXPECT().Run(gomock.Any(), "0", "0", "add", false).Return(rec, nil),
		mockUC.EXPECT().Run(gomock.Any(), "1", "2", "power", false).Return(nil, domain.ErrUnknownOperation),
	)

	out := &bytes.Buffer{}
	require.NoError(t, Calculate(context.Background(), out, mockUC, "0", "0", "add", false))
	err := Calculate(context.Background(), out, mockUC, "1", "2", "power", false)

	assert.ErrorIs(t, err, domain.ErrUnknownOperation)
	assert.Equal(t, "0 add 0 = 0\nError: Unknown operation 'power'\n", out.String())
}
