package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config описывает настройки запуска приложения. Все значения можно
// переопределить переменными окружения IMS_*.
type Config struct {
	// DataDir — каталог с CSV-таблицами.
	DataDir string `env:"IMS_DATA_DIR" envDefault:"data"`
	// ReportDir — каталог, куда пишутся PDF-отчёты.
	ReportDir string `env:"IMS_REPORT_DIR" envDefault:"."`
	// LogLevel — уровень логирования logrus (debug, info, warn, error).
	LogLevel string `env:"IMS_LOG_LEVEL" envDefault:"info"`
	// LowStockThreshold — порог low-stock по умолчанию для новых товаров.
	LowStockThreshold int `env:"IMS_LOW_STOCK_THRESHOLD" envDefault:"10"`
}

// LoadConfig читает конфигурацию из переменных окружения.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
