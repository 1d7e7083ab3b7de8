package env

import (
	"os"

	"funny_arcade/internal/config"
)

const (
	logLevelEnvName  = "LOG_LEVEL"
	logFormatEnvName = "LOG_FORMAT"
)

type logConfig struct {
	level  string
	format string
}

// NewLogConfig Без переменных окружения - info и json
func NewLogConfig() config.LogConfig {
	cfg := &logConfig{
		level:  os.Getenv(logLevelEnvName),
		format: os.Getenv(logFormatEnvName),
	}
	if cfg.level == "" {
		cfg.level = "info"
	}
	if cfg.format == "" {
		cfg.format = "json"
	}
	return cfg
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) Format() string {
	return cfg.format
}
