package model

import (
	"funny_arcade/internal/model"

	"github.com/shopspring/decimal"
)

// Mode Описание режима: размер поля и набор символов
type Mode struct {
	Name        string
	Description string
	Rows        int
	Cols        int
	Symbols     []string
	// LineBased Выплата по линиям, джекпота нет
	LineBased bool
}

// Все символы
var AllSymbols = []string{"🍎", "🍊", "🍋", "🍉", "🍓", "🍒", "🥝", "🍑", "🍇", "🍏", "🍐", "🍌", "🍍"}

// Modes Таблица режимов
var Modes = map[model.GameMode]Mode{
	model.ModeClassic: {
		Name:        "Classic",
		Description: "3 reels, 1 payline",
		Rows:        1,
		Cols:        3,
		Symbols:     []string{"🍋", "🍉", "🍓", "🍒"},
	},
	model.ModeGrid3x3: {
		Name:        "Grid 3×3",
		Description: "9 reels, 8 paylines",
		Rows:        3,
		Cols:        3,
		Symbols:     AllSymbols[:9],
		LineBased:   true,
	},
	model.ModeRetro: {
		Name:        "Retro",
		Description: "1 reel, 3 stops",
		Rows:        3,
		Cols:        1,
		Symbols:     []string{"🍎", "🍊", "🍋", "🍓", "🍒"},
	},
	model.ModeJackpot: {
		Name:        "Jackpot",
		Description: "5 reels, progressive",
		Rows:        1,
		Cols:        5,
		Symbols:     []string{"🍎", "🍊", "🍋", "🍉", "🍓", "🍒", "🥝"},
	},
}

// ModeOrder Порядок режимов для клиента
var ModeOrder = []model.GameMode{model.ModeClassic, model.ModeGrid3x3, model.ModeRetro, model.ModeJackpot}

var (
	// NormalMultiplier Одна линия в grid3x3
	NormalMultiplier = decimal.RequireFromString("5.5")
	// DualMultiplier Две и более линии, умножается на число линий
	DualMultiplier = decimal.RequireFromString("12.0")
)

// FruitMultipliers Выплата за символ в режимах без линий
var FruitMultipliers = map[string]decimal.Decimal{
	"🍎": decimal.RequireFromString("2.0"),
	"🍊": decimal.RequireFromString("4.0"),
	"🍋": decimal.RequireFromString("2.5"),
	"🍉": decimal.RequireFromString("3.0"),
	"🍓": decimal.RequireFromString("3.5"),
	"🍒": decimal.RequireFromString("5.0"),
	"🥝": decimal.RequireFromString("2.5"),
	"🍑": decimal.RequireFromString("4.0"),
}

// JackpotMultipliers Множитель джекпота по режиму (кроме линейных)
var JackpotMultipliers = map[model.GameMode]decimal.Decimal{
	model.ModeClassic: decimal.NewFromInt(15),
	model.ModeRetro:   decimal.NewFromInt(20),
	model.ModeJackpot: decimal.NewFromInt(150),
}

// Lookup возвращает описание режима
func Lookup(mode model.GameMode) (Mode, error) {
	m, ok := Modes[mode]
	if !ok {
		return Mode{}, model.ErrUnknownMode
	}
	return m, nil
}
