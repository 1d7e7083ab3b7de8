package env

import (
	"errors"
	"fmt"
	"os"

	"funny_arcade/internal/config"

	"gopkg.in/yaml.v3"
)

const (
	defaultInitialCoins        = 200
	defaultSpinCost            = 10
	defaultSlotsHistoryLimit   = 50
	defaultFreeCoinsMin        = 30
	defaultFreeCoinsMax        = 139
	defaultTerminalHistorySize = 50
)

type slotsYAML struct {
	InitialCoins int `yaml:"initial_coins"`
	SpinCost     int `yaml:"spin_cost"`
	HistoryLimit int `yaml:"history_limit"`
	FreeCoinsMin int `yaml:"free_coins_min"`
	FreeCoinsMax int `yaml:"free_coins_max"`
}

type terminalYAML struct {
	HistoryLimit int `yaml:"history_limit"`
}

type gameYAML struct {
	Slots    slotsYAML    `yaml:"slots"`
	Terminal terminalYAML `yaml:"terminal"`
}

type slotsConfig struct {
	initialCoins int
	spinCost     int
	historyLimit int
	freeCoinsMin int
	freeCoinsMax int
}

type terminalConfig struct {
	historyLimit int
}

func readGameYAML(path string) (*gameYAML, error) {
	var raw gameYAML

	data, err := os.ReadFile(path)
	if err != nil {
		// Без файла работаем на значениях по умолчанию
		if errors.Is(err, os.ErrNotExist) {
			return &raw, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &raw, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// NewSlotsConfigFromYAML читает секцию slots, незаданные поля берутся по умолчанию
func NewSlotsConfigFromYAML(path string) (config.SlotsConfig, error) {
	raw, err := readGameYAML(path)
	if err != nil {
		return nil, err
	}

	cfg := &slotsConfig{
		initialCoins: orDefault(raw.Slots.InitialCoins, defaultInitialCoins),
		spinCost:     orDefault(raw.Slots.SpinCost, defaultSpinCost),
		historyLimit: orDefault(raw.Slots.HistoryLimit, defaultSlotsHistoryLimit),
		freeCoinsMin: orDefault(raw.Slots.FreeCoinsMin, defaultFreeCoinsMin),
		freeCoinsMax: orDefault(raw.Slots.FreeCoinsMax, defaultFreeCoinsMax),
	}

	switch {
	case cfg.initialCoins < 0:
		return nil, errors.New("slots.initial_coins must not be negative")
	case cfg.spinCost < 0:
		return nil, errors.New("slots.spin_cost must be positive")
	case cfg.historyLimit < 0:
		return nil, errors.New("slots.history_limit must be positive")
	case cfg.freeCoinsMin < 0 || cfg.freeCoinsMax < cfg.freeCoinsMin:
		return nil, errors.New("slots.free_coins range is invalid")
	}

	return cfg, nil
}

func (c *slotsConfig) InitialCoins() int { return c.initialCoins }
func (c *slotsConfig) SpinCost() int     { return c.spinCost }
func (c *slotsConfig) HistoryLimit() int { return c.historyLimit }
func (c *slotsConfig) FreeCoinsMin() int { return c.freeCoinsMin }
func (c *slotsConfig) FreeCoinsMax() int { return c.freeCoinsMax }

func NewTerminalConfigFromYAML(path string) (config.TerminalConfig, error) {
	raw, err := readGameYAML(path)
	if err != nil {
		return nil, err
	}

	limit := orDefault(raw.Terminal.HistoryLimit, defaultTerminalHistorySize)
	if limit < 0 {
		return nil, errors.New("terminal.history_limit must be positive")
	}
	return &terminalConfig{historyLimit: limit}, nil
}

func (c *terminalConfig) HistoryLimit() int { return c.historyLimit }
