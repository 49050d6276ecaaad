package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"pluginCalc/internal/domain"
	"pluginCalc/internal/ports"
)

// Calculate выполняет вычисление и печатает результат или понятную пользователю ошибку.
// Используется и в REPL, и в однократном режиме CLI. Возвращает ошибку движка (nil при успехе).
func Calculate(ctx context.Context, w io.Writer, uc ports.ICalculatorUseCase, num1, num2, operation string, isolated bool) error {
	rec, err := uc.Run(ctx, num1, num2, operation, isolated)
	if err != nil {
		_, _ = fmt.Fprintln(w, describe(err, operation))
		return err
	}
	if isolated {
		_, _ = fmt.Fprintf(w, "%s %s %s (isolated) = %s\n", num1, operation, num2, rec.Result)
		return nil
	}
	_, _ = fmt.Fprintf(w, "%s %s %s = %s\n", num1, operation, num2, rec.Result)
	return nil
}

func describe(err error, operation string) string {
	switch {
	case errors.Is(err, domain.ErrInvalidNumber):
		return "Error: One or both inputs are not valid numbers."
	case errors.Is(err, domain.ErrUnknownOperation):
		return fmt.Sprintf("Error: Unknown operation '%s'", operation)
	case errors.Is(err, domain.ErrExecutionFailed):
		return "Isolated calculation failed."
	default:
		return "Error: " + err.Error()
	}
}
