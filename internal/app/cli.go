package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"pluginCalc/internal/infrastructure/click"
	"pluginCalc/internal/infrastructure/kafka"
	"pluginCalc/internal/shell"
	calclUsecase "pluginCalc/internal/usecase/calculator"
)

const usage = `Usage:
  calculator repl
  calculator <number1> <number2> <operation> [mp]
  calculator consume
  calculator env
`

// rootCmd — однократный режим на корневой команде и подкоманды repl, consume и env.
// Разбор флагов выключен, чтобы отрицательные числа доходили до аргументов.
// Имя repl сравнивается без учёта регистра: "REPL" тоже открывает сессию.
func (a *App) rootCmd(d *deps) *cobra.Command {
	root := &cobra.Command{
		Use:                "calculator <number1> <number2> <operation> [mp]",
		Short:              "Decimal calculator with pluggable operations",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && strings.EqualFold(args[0], "repl") {
				return a.runRepl(cmd, d)
			}
			if len(args) != 3 && len(args) != 4 {
				cmd.Print(usage)
				return nil
			}
			isolated := len(args) == 4 && strings.EqualFold(args[3], "mp")
			// ошибка уже выведена пользователю; код выхода не меняется
			_ = shell.Calculate(cmd.Context(), cmd.OutOrStdout(), d.uc, args[0], args[1], args[2], isolated)
			return nil
		},
	}
	root.AddCommand(a.replCmd(d), a.consumeCmd(d), a.envCmd())
	return root
}

// noArgs — обёртка для подкоманд без аргументов: лишние аргументы печатают usage, как и в однократном режиме.
func noArgs(run func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			cmd.Print(usage)
			return nil
		}
		return run(cmd)
	}
}

func (a *App) replCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:                "repl",
		Short:              "Interactive calculator session",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: noArgs(func(cmd *cobra.Command) error {
			return a.runRepl(cmd, d)
		}),
	}
}

func (a *App) runRepl(cmd *cobra.Command, d *deps) error {
	a.preloadHistory(cmd, d)

	term, err := a.newTerminal(d.uc.Operations())
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer term.Close()

	return shell.New(d.uc, d.history, term, cmd.OutOrStdout(), a.log).Run(cmd.Context())
}

// preloadHistory загружает HISTORY_FILE, если он задан и существует.
func (a *App) preloadHistory(cmd *cobra.Command, d *deps) {
	path := a.cfg.HistoryFile
	if path == "" {
		return
	}
	if err := d.history.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.log.Debug("history file not found", "path", path)
			return
		}
		a.log.Warn("history preload failed", "path", path, "error", err)
		cmd.Printf("Error: failed to load history: %v\n", err)
		return
	}
	a.log.Info("history loaded", "path", path, "records", d.history.Len())
}

func (a *App) consumeCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:                "consume",
		Short:              "Write calculation events from Kafka to ClickHouse",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: noArgs(func(cmd *cobra.Command) error {
			ctx := cmd.Context()

			db, err := click.New(ctx, &a.cfg.ClickHouse)
			if err != nil {
				return fmt.Errorf("clickhouse: %w", err)
			}
			defer db.Close()

			writer := click.NewCalculationWriter(db)
			if err := writer.EnsureTable(ctx); err != nil {
				return fmt.Errorf("clickhouse table: %w", err)
			}

			uc := calclUsecase.New(d.registry, d.history, nil, nil, writer, d.metrics, a.log)
			consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, a.log)
			defer consumer.Close()

			err = consumer.Run(ctx)
			if counts, cerr := writer.CountByOperation(context.WithoutCancel(ctx)); cerr == nil {
				a.log.Info("analytics summary", "calculations", counts)
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}),
	}
}

// envCmd печатает переменные окружения, которые читает приложение, их значения по умолчанию и итог текущего конфига.
func (a *App) envCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "env",
		Short:              "List configuration variables",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: noArgs(func(cmd *cobra.Command) error {
			if err := envconfig.Usagef(AppName, &Config{}, cmd.OutOrStdout(), envTable); err != nil {
				return err
			}
			cmd.Printf("\nenvironment=%s log_level=%s history_file=%q redis=%t kafka=%t\n",
				a.cfg.Environment, a.cfg.LogLevel, a.cfg.HistoryFile, a.cfg.Redis.Enabled, a.cfg.Kafka.Enabled)
			return nil
		}),
	}
}

const envTable = "VARIABLE\tTYPE\tDEFAULT\n{{range .}}{{usage_key .}}\t{{usage_type .}}\t{{usage_default .}}\n{{end}}"
