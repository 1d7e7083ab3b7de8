package slots_stats_repo

import (
	"sync"

	"funny_arcade/internal/model"
	repoModel "funny_arcade/internal/repository/slots_stats_repo/model"
	servModel "funny_arcade/internal/service/slots/model"
)

// DefaultWindowSize Размер окна последних спинов
const DefaultWindowSize = 500

// StatsRepo Статистика выплат по режимам в памяти процесса
type StatsRepo struct {
	mtx        sync.RWMutex
	windowSize int
	modes      map[model.GameMode]*repoModel.ModeState
}

func NewSlotsStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	modes := make(map[model.GameMode]*repoModel.ModeState, len(servModel.ModeOrder))
	for _, m := range servModel.ModeOrder {
		modes[m] = &repoModel.ModeState{
			SpinWindow: make([]repoModel.SpinResult, 0, windowSize),
		}
	}
	return &StatsRepo{
		windowSize: windowSize,
		modes:      modes,
	}
}

// UpdateState Обновление статистики после спина
func (r *StatsRepo) UpdateState(mode model.GameMode, bet, payout int, jackpot bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	st, ok := r.modes[mode]
	if !ok {
		return
	}

	st.TotalSpins++
	st.TotalBet += bet
	st.TotalPayout += payout
	if jackpot {
		st.Jackpots++
	}
	st.CurrentRTP = rtp(st.TotalBet, st.TotalPayout)

	// Добавляем спин в окно и поддерживаем его размер
	st.SpinWindow = append(st.SpinWindow, repoModel.SpinResult{Bet: bet, Payout: payout})
	if len(st.SpinWindow) > r.windowSize {
		st.SpinWindow = st.SpinWindow[1:]
	}

	var windowBet, windowPayout int
	for _, spin := range st.SpinWindow {
		windowBet += spin.Bet
		windowPayout += spin.Payout
	}
	st.WindowRTP = rtp(windowBet, windowPayout)
}

// Stats Копия статистики в порядке режимов
func (r *StatsRepo) Stats() []model.ModeStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make([]model.ModeStats, 0, len(servModel.ModeOrder))
	for _, m := range servModel.ModeOrder {
		st := r.modes[m]
		out = append(out, model.ModeStats{
			Mode:        m,
			TotalSpins:  st.TotalSpins,
			Jackpots:    st.Jackpots,
			TotalBet:    st.TotalBet,
			TotalPayout: st.TotalPayout,
			RTP:         st.CurrentRTP,
			WindowRTP:   st.WindowRTP,
		})
	}
	return out
}

func rtp(bet, payout int) float64 {
	if bet <= 0 {
		return 0
	}
	return float64(payout) / float64(bet) * 100
}
