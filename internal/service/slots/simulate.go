package slots

import (
	"funny_arcade/internal/model"
	"funny_arcade/internal/repository"
	"funny_arcade/pkg/rng"
)

// Simulate прогоняет spins спинов без баланса и пишет их в статистику
func Simulate(src rng.Source, mode model.GameMode, spins, spinCost int, stats repository.SlotsStatsRepository) error {
	for i := 0; i < spins; i++ {
		_, outcome, err := SpinOnce(src, mode, spinCost)
		if err != nil {
			return err
		}
		stats.UpdateState(mode, spinCost, outcome.CoinsWon, outcome.IsJackpot)
	}
	return nil
}
