package slots

import (
	"context"
	"fmt"

	"funny_arcade/internal/middleware"
	"funny_arcade/internal/model"
	servModel "funny_arcade/internal/service/slots/model"

	"github.com/google/uuid"
)

// Spin списывает стоимость спина, крутит барабаны и начисляет выигрыш
func (s *serv) Spin(ctx context.Context, spinReq model.SlotsSpin) (*model.SlotsSpinResult, error) {
	// Валидация режима
	if _, err := servModel.Lookup(spinReq.Mode); err != nil {
		return nil, err
	}

	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, model.ErrUnauthorized
	}

	spinCost := s.cfg.SpinCost()

	var res *model.SlotsSpinResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		state, err := s.repo.GetState(txCtx, userID, s.cfg.InitialCoins())
		if err != nil {
			return fmt.Errorf("get slots state: %w", err)
		}

		// Не хватает монет - спин не выполняется, состояние не меняется
		if state.Coins < spinCost {
			return model.ErrInsufficientFunds
		}

		grid, outcome, err := SpinOnce(s.rng, spinReq.Mode, spinCost)
		if err != nil {
			return err
		}

		coins := max(0, state.Coins-spinCost) + outcome.CoinsWon
		totalGames := state.TotalGames + 1

		if err := s.repo.UpdateState(txCtx, userID, coins, totalGames); err != nil {
			return fmt.Errorf("update slots state: %w", err)
		}

		result := model.GameResult{
			ID:         uuid.New(),
			Timestamp:  s.now().UTC(),
			Mode:       spinReq.Mode,
			Reels:      grid.Clone(),
			IsJackpot:  outcome.IsJackpot,
			CoinsWon:   outcome.CoinsWon,
			Multiplier: outcome.Multiplier,
		}

		// История ограничена, старые записи вытесняются
		if err := s.repo.AddResult(txCtx, userID, result); err != nil {
			return fmt.Errorf("add game result: %w", err)
		}
		if err := s.repo.TrimHistory(txCtx, userID, s.cfg.HistoryLimit()); err != nil {
			return fmt.Errorf("trim history: %w", err)
		}

		res = &model.SlotsSpinResult{
			Result:     result,
			Outcome:    outcome,
			SpinCost:   spinCost,
			Coins:      coins,
			TotalGames: totalGames,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.UpdateState(spinReq.Mode, spinCost, res.Outcome.CoinsWon, res.Outcome.IsJackpot)

	if res.Outcome.IsJackpot {
		s.log.Info().
			Int("user_id", userID).
			Str("mode", string(spinReq.Mode)).
			Int("coins_won", res.Outcome.CoinsWon).
			Msg("jackpot")
	}

	return res, nil
}
