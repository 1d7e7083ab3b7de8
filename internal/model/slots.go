package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GameMode Режим игрового автомата
type GameMode string

const (
	ModeClassic GameMode = "classic"
	ModeGrid3x3 GameMode = "grid3x3"
	ModeRetro   GameMode = "retro"
	ModeJackpot GameMode = "jackpot"
)

// ReelGrid Игровое поле rows x cols (построчно)
type ReelGrid [][]string

// Clone возвращает независимую копию поля
func (g ReelGrid) Clone() ReelGrid {
	out := make(ReelGrid, len(g))
	for r, row := range g {
		out[r] = append([]string(nil), row...)
	}
	return out
}

// WinKind Тип выигрыша
type WinKind string

const (
	WinNone    WinKind = "none"
	WinSymbol  WinKind = "symbol"
	WinLine    WinKind = "line"
	WinJackpot WinKind = "jackpot"
)

type SlotsSpin struct {
	Mode GameMode
}

// SpinOutcome Результат оценки поля
type SpinOutcome struct {
	IsJackpot    bool
	Kind         WinKind
	MatchedLines int
	CoinsWon     int
	Multiplier   decimal.Decimal
}

// GameResult Запись в истории игр
type GameResult struct {
	ID         uuid.UUID
	Timestamp  time.Time
	Mode       GameMode
	Reels      ReelGrid
	IsJackpot  bool
	CoinsWon   int
	Multiplier decimal.Decimal
}

// SlotsState Сохраняемое состояние игрока
type SlotsState struct {
	Coins      int
	TotalGames int
	History    []GameResult
}

type SlotsSpinResult struct {
	Result     GameResult
	Outcome    SpinOutcome
	SpinCost   int
	Coins      int
	TotalGames int
}

type SlotsData struct {
	Coins         int
	TotalGames    int
	History       []GameResult
	CanClaimCoins bool
	SpinCost      int
	HistoryLimit  int
}

type FreeCoins struct {
	Granted int
	Coins   int
}

// ModeStats Статистика по режиму
type ModeStats struct {
	Mode        GameMode
	TotalSpins  int
	Jackpots    int
	TotalBet    int
	TotalPayout int
	RTP         float64
	WindowRTP   float64
}

// ModeInfo Описание режима для клиента
type ModeInfo struct {
	Mode        GameMode
	Name        string
	Description string
	Rows        int
	Cols        int
	Symbols     []string
	LineBased   bool
	// JackpotMultiplier нулевой для LineBased режимов
	JackpotMultiplier decimal.Decimal
}
