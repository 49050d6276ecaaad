package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"pluginCalc/internal/history"
	"pluginCalc/internal/infrastructure/kafka"
	"pluginCalc/internal/infrastructure/redis"
	"pluginCalc/internal/pkg/logger"
	"pluginCalc/internal/pkg/metrics"
	"pluginCalc/internal/plugins"
	"pluginCalc/internal/ports"
	"pluginCalc/internal/shell"
	calclUsecase "pluginCalc/internal/usecase/calculator"
)

// terminal — источник строк REPL, который нужно закрыть после использования.
type terminal interface {
	shell.LineReader
	Close() error
}

// App — приложение: конфиг и точки ввода-вывода.
type App struct {
	cfg         Config
	fs          afero.Fs
	out         io.Writer
	log         *slog.Logger
	catalog     *plugins.Catalog
	newTerminal func(operations []string) (terminal, error)
}

// New создаёт приложение с конфигом. Логгер, реестр и внешние зависимости поднимаются в Run.
func New(cfg Config) *App {
	return &App{
		cfg:     cfg,
		fs:      afero.NewOsFs(),
		out:     os.Stdout,
		catalog: plugins.Default,
		newTerminal: func(operations []string) (terminal, error) {
			return shell.NewTerminal(operations)
		},
	}
}

// deps — собранные зависимости движка.
type deps struct {
	registry *plugins.Registry
	history  *history.Store
	metrics  *metrics.Metrics
	uc       *calclUsecase.UseCase
}

// Run поднимает зависимости и выполняет команду CLI по аргументам (без имени программы).
// Ошибки ввода пользователя сообщаются в вывод и не считаются ошибкой запуска.
func (a *App) Run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.log == nil {
		a.log = logger.NewWithLevel(a.cfg.LogLevel, a.cfg.LogFile)
	}
	slog.SetDefault(a.log)
	a.log.Info("environment", "mode", a.cfg.Environment)
	a.log.Info("calculator application launched")

	d, cleanup := a.wire(ctx)
	defer cleanup()

	if args == nil {
		args = []string{} // nil заставит cobra взять os.Args
	}
	root := a.rootCmd(d)
	root.SetArgs(args)
	root.SetOut(a.out)
	return root.ExecuteContext(ctx)
}

// wire собирает реестр, историю, метрики и движок. Кэш и брокер необязательны:
// если они выключены или недоступны, движок работает без них.
func (a *App) wire(ctx context.Context) (*deps, func()) {
	var closers []func() error

	registry := plugins.Discover(a.log, a.catalog)
	store := history.NewStore(a.fs)
	m := metrics.New()

	var cache ports.ICache
	if a.cfg.Redis.Enabled {
		cli, err := redis.New(ctx, &a.cfg.Redis)
		if err != nil {
			a.log.Warn("redis unavailable, cache disabled", "addr", a.cfg.Redis.Addr(), "error", err)
		} else {
			cache = redis.NewCache(cli, a.cfg.Redis.TTL, a.log)
			closers = append(closers, cli.Close)
		}
	}

	var producer ports.IProducer
	if a.cfg.Kafka.Enabled {
		p := kafka.NewProducer(&a.cfg.Kafka)
		producer = p
		closers = append(closers, p.Close)
	}

	uc := calclUsecase.New(registry, store, cache, producer, nil, m, a.log)

	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				a.log.Warn("close failed", "error", err)
			}
		}
		if err := m.WriteFile(a.cfg.MetricsFile); err != nil {
			a.log.Warn("metrics write failed", "path", a.cfg.MetricsFile, "error", err)
		}
	}
	return &deps{registry: registry, history: store, metrics: m, uc: uc}, cleanup
}
