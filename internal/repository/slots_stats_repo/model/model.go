package model

// ModeState Накопленная статистика режима
type ModeState struct {
	TotalSpins  int // Сколько всего спинов сделано
	Jackpots    int // Сколько из них джекпотов
	TotalBet    int // Сумма всех ставок
	TotalPayout int // Сумма всех выплат

	CurrentRTP float64 // TotalPayout/TotalBet*100

	SpinWindow []SpinResult // Окно последних спинов
	WindowRTP  float64      // RTP в окне
}

// SpinResult Результат спина для окна
type SpinResult struct {
	Bet    int
	Payout int
}
