package app

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"pluginCalc/internal/infrastructure/click"
	"pluginCalc/internal/infrastructure/kafka"
	"pluginCalc/internal/infrastructure/redis"
)

const AppName = "CALCULATOR"

// Config — конфиг приложения. Заполняется через envconfig с префиксом CALCULATOR;
// для LOG_LEVEL, ENVIRONMENT и остальных верхнеуровневых полей работает и имя без префикса.
type Config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"INFO"`
	LogFile     string `envconfig:"LOG_FILE" default:"app.log"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"` // только для логов
	HistoryFile string `envconfig:"HISTORY_FILE"`                      // загружается при старте REPL, если существует
	MetricsFile string `envconfig:"METRICS_FILE"`                      // textfile prometheus, пишется при выходе

	Redis      redis.Config `envconfig:"REDIS"`
	Kafka      kafka.Config `envconfig:"KAFKA"`
	ClickHouse click.Config `envconfig:"CLICKHOUSE"`
}

// LoadCfg загружает конфиг: подтягивает .env из текущего каталога (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: .env не прочитан, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
