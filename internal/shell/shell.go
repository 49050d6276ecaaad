// Package shell — интерактивный режим калькулятора (REPL) и общий вывод результатов для CLI.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/shlex"

	"pluginCalc/internal/ports"
)

// Prompt — приглашение ввода REPL.
const Prompt = ">> "

// LineReader — источник строк для REPL. В терминале это *readline.Instance, в тестах — фейк.
type LineReader interface {
	Readline() (string, error)
}

// Shell читает команды построчно и выполняет их через движок и хранилище истории.
type Shell struct {
	uc      ports.ICalculatorUseCase
	history ports.IHistoryStore
	in      LineReader
	out     io.Writer
	log     *slog.Logger
}

// New создаёт REPL. Хранилище то же, в которое пишет движок.
func New(uc ports.ICalculatorUseCase, history ports.IHistoryStore, in LineReader, out io.Writer, log *slog.Logger) *Shell {
	if log == nil {
		log = slog.Default()
	}
	return &Shell{uc: uc, history: history, in: in, out: out, log: log}
}

// NewTerminal открывает readline-терминал с автодополнением команд и имён операций. После использования вызови Close().
func NewTerminal(operations []string) (*readline.Instance, error) {
	items := make([]readline.PrefixCompleterInterface, 0, len(builtins)+len(operations))
	for _, name := range builtins {
		items = append(items, readline.PcItem(name))
	}
	for _, name := range operations {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewEx(&readline.Config{
		Prompt:          Prompt,
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// Run крутит цикл до команды exit, конца ввода или отмены ctx.
// Ctrl+C сбрасывает текущую строку и не завершает цикл.
func (s *Shell) Run(ctx context.Context) error {
	s.println("Calculator REPL started. Type 'exit' to quit.")
	s.println("Append 'mp' at the end of a command to use isolated execution.")

	for {
		if ctx.Err() != nil {
			s.println("Exiting REPL mode.")
			return nil
		}
		line, err := s.in.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				s.println("Exiting REPL mode.")
				return nil
			}
			return fmt.Errorf("read line: %w", err)
		}
		if !s.Exec(ctx, line) {
			s.println("Exiting REPL mode.")
			return nil
		}
	}
}

// Exec выполняет одну строку ввода. Возвращает false, если пользователь попросил выход.
func (s *Shell) Exec(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	if strings.EqualFold(line, "exit") {
		return false
	}

	args, err := shlex.Split(line)
	if err != nil {
		s.log.Warn("tokenize failed", "line", line, "error", err)
		s.printf("Error: %v\n", err)
		return true
	}
	if len(args) == 0 {
		return true
	}

	if cmd, ok := commands[args[0]]; ok {
		cmd(s, args[1:])
		return true
	}
	s.calculate(ctx, args)
	return true
}

// calculate разбирает "<op> <num1> <num2> [mp]" и передаёт в движок.
func (s *Shell) calculate(ctx context.Context, args []string) {
	if len(args) != 3 && len(args) != 4 {
		s.println("Usage: <command> <num1> <num2> [mp]")
		return
	}
	name, num1, num2 := args[0], args[1], args[2]
	isolated := len(args) == 4 && strings.EqualFold(args[3], "mp")

	if !s.known(name) {
		s.log.Warn("unknown command", "command", name)
		s.printf("Unknown command '%s'. Type 'menu' to list commands.\n", name)
		return
	}
	Calculate(ctx, s.out, s.uc, num1, num2, name, isolated)
}

func (s *Shell) known(name string) bool {
	for _, op := range s.uc.Operations() {
		if op == name {
			return true
		}
	}
	return false
}

func (s *Shell) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}
