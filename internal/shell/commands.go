package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"pluginCalc/internal/domain"
)

// command — встроенная команда REPL; args без имени команды.
type command func(s *Shell, args []string)

// builtins — имена встроенных команд в порядке вывода автодополнения.
var builtins = []string{
	"menu", "history", "latest", "clear_history", "save_history",
	"load_history", "delete_history", "filter_with_operation", "exit",
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"menu":                  menu,
		"history":               showHistory,
		"latest":                latest,
		"clear_history":         clearHistory,
		"save_history":          saveHistory,
		"load_history":          loadHistory,
		"delete_history":        deleteHistory,
		"filter_with_operation": filterWithOperation,
	}
}

func menu(s *Shell, _ []string) {
	s.println("Available Commands:")
	for _, name := range s.uc.Operations() {
		s.printf("- %s\n", name)
	}
}

func showHistory(s *Shell, _ []string) {
	records := s.history.All()
	if len(records) == 0 {
		s.println("No calculations recorded.")
		return
	}
	writeTable(s.out, records)
}

func latest(s *Shell, _ []string) {
	rec, ok := s.history.Latest()
	if !ok {
		s.println("No history available.")
		return
	}
	s.printf("Latest calculation: %s\n", rec)
}

func clearHistory(s *Shell, _ []string) {
	s.history.Clear()
	s.log.Info("history cleared")
	s.println("Calculation history cleared.")
}

func saveHistory(s *Shell, args []string) {
	if len(args) != 1 {
		s.println("Usage: save_history <path>")
		return
	}
	if err := s.history.Save(args[0]); err != nil {
		s.log.Error("history save failed", "path", args[0], "error", err)
		s.printf("Error: failed to save history: %v\n", err)
		return
	}
	s.log.Info("history saved", "path", args[0], "records", s.history.Len())
	s.printf("History saved to %s\n", args[0])
}

func loadHistory(s *Shell, args []string) {
	if len(args) != 1 {
		s.println("Usage: load_history <path>")
		return
	}
	if err := s.history.Load(args[0]); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.printf("File '%s' not found.\n", args[0])
			return
		}
		s.log.Error("history load failed", "path", args[0], "error", err)
		s.printf("Error: failed to load history: %v\n", err)
		return
	}
	s.log.Info("history loaded", "path", args[0], "records", s.history.Len())
	s.printf("History loaded from %s\n", args[0])
}

func deleteHistory(s *Shell, args []string) {
	if len(args) != 1 {
		s.println("Usage: delete_history <index>")
		return
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		s.println("Usage: delete_history <index>")
		return
	}
	if err := s.history.Delete(index); err != nil {
		if errors.Is(err, domain.ErrInvalidIndex) {
			s.printf("Invalid index: %d. No record deleted.\n", index)
			return
		}
		s.printf("Error: %v\n", err)
		return
	}
	s.printf("Deleted calculation at index %d.\n", index)
}

func filterWithOperation(s *Shell, args []string) {
	if len(args) != 1 {
		s.println("Usage: filter_with_operation <operation>")
		return
	}
	records := s.history.Filter(args[0])
	if len(records) == 0 {
		s.printf("No records found for operation '%s'.\n", args[0])
		return
	}
	writeTable(s.out, records)
}

// writeTable печатает записи таблицей с индексами, которые принимает delete_history.
func writeTable(w io.Writer, records []domain.Record) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "#\toperation\toperand1\toperand2\tresult")
	for i, r := range records {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i, r.Operation, r.Operand1, r.Operand2, r.Result)
	}
	_ = tw.Flush()
}
