package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// SlotsConfig Настройки игрового автомата
type SlotsConfig interface {
	InitialCoins() int
	SpinCost() int
	HistoryLimit() int
	FreeCoinsMin() int
	FreeCoinsMax() int
}

type TerminalConfig interface {
	HistoryLimit() int
}

type HTTPConfig interface {
	Address() string
	ShutdownTimeout() time.Duration
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Addr() string
	Password() string
	DB() int
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type LogConfig interface {
	Level() string
	Format() string
}
