package slots

import "time"

type SpinRequest struct {
	Mode string `json:"mode"` // classic, grid3x3, retro, jackpot
}

type GameResult struct {
	ID         string     `json:"id"`
	Timestamp  time.Time  `json:"timestamp"`
	Mode       string     `json:"mode"`
	Reels      [][]string `json:"reels"`      // Поле, строки сверху вниз
	IsJackpot  bool       `json:"is_jackpot"` // Совпала хотя бы одна линия
	CoinsWon   int        `json:"coins_won"`  // Выигрыш
	Multiplier string     `json:"multiplier"` // Множитель, строкой без потери точности
}

type SpinResponse struct {
	Result       GameResult `json:"result"`
	WinKind      string     `json:"win_kind"`      // none, symbol, line, jackpot
	MatchedLines int        `json:"matched_lines"` // Совпавших линий
	SpinCost     int        `json:"spin_cost"`
	Coins        int        `json:"coins"` // Баланс после
	TotalGames   int        `json:"total_games"`
}

type DataResponse struct {
	Coins         int          `json:"coins"`
	TotalGames    int          `json:"total_games"`
	History       []GameResult `json:"history"` // Новые первыми
	CanClaimCoins bool         `json:"can_claim_coins"`
	SpinCost      int          `json:"spin_cost"`
	HistoryLimit  int          `json:"history_limit"`
}

type FreeCoinsResponse struct {
	Granted int `json:"granted"`
	Coins   int `json:"coins"`
}

type ModeResponse struct {
	Mode              string   `json:"mode"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Rows              int      `json:"rows"`
	Cols              int      `json:"cols"`
	Symbols           []string `json:"symbols"`
	LineBased         bool     `json:"line_based"`
	JackpotMultiplier string   `json:"jackpot_multiplier,omitempty"`
}

type StatsResponse struct {
	Mode        string  `json:"mode"`
	TotalSpins  int     `json:"total_spins"`
	Jackpots    int     `json:"jackpots"`
	TotalBet    int     `json:"total_bet"`
	TotalPayout int     `json:"total_payout"`
	RTP         float64 `json:"rtp"`        // Процент за всё время
	WindowRTP   float64 `json:"window_rtp"` // Процент по последним спинам
}
