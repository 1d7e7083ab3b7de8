package logger

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"funny_arcade/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New создаёт корневой логгер и делает его глобальным
func New(cfg config.LogConfig) zerolog.Logger {
	return newWithWriter(cfg, os.Stdout)
}

func newWithWriter(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level()))
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}

	if cfg.Format() == "console" || cfg.Format() == "pretty" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	l := zerolog.New(out).
		With().
		Timestamp().
		Caller().
		Logger()

	log.Logger = l
	return l
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Component логгер компонента
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
