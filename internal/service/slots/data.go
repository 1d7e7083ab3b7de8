package slots

import (
	"context"
	"fmt"

	"funny_arcade/internal/middleware"
	"funny_arcade/internal/model"
	servModel "funny_arcade/internal/service/slots/model"
)

func (s *serv) userID(ctx context.Context) (int, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, model.ErrUnauthorized
	}
	return userID, nil
}

func (s *serv) data(ctx context.Context, userID int, state *model.SlotsState) (*model.SlotsData, error) {
	history, err := s.repo.GetHistory(ctx, userID, s.cfg.HistoryLimit())
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	return &model.SlotsData{
		Coins:         state.Coins,
		TotalGames:    state.TotalGames,
		History:       history,
		CanClaimCoins: state.Coins < s.cfg.SpinCost(),
		SpinCost:      s.cfg.SpinCost(),
		HistoryLimit:  s.cfg.HistoryLimit(),
	}, nil
}

// CheckData Монеты, число игр и история пользователя
func (s *serv) CheckData(ctx context.Context) (*model.SlotsData, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	var res *model.SlotsData
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		state, err := s.repo.GetState(txCtx, userID, s.cfg.InitialCoins())
		if err != nil {
			return fmt.Errorf("get slots state: %w", err)
		}
		res, err = s.data(txCtx, userID, state)
		return err
	})
	return res, err
}

// ClaimFreeCoins Бесплатные монеты, только если не хватает на спин
func (s *serv) ClaimFreeCoins(ctx context.Context) (*model.FreeCoins, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	var res *model.FreeCoins
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		state, err := s.repo.GetState(txCtx, userID, s.cfg.InitialCoins())
		if err != nil {
			return fmt.Errorf("get slots state: %w", err)
		}
		if state.Coins >= s.cfg.SpinCost() {
			return model.ErrFreeCoinsUnavailable
		}

		granted := s.cfg.FreeCoinsMin() + s.rng.IntN(s.cfg.FreeCoinsMax()-s.cfg.FreeCoinsMin()+1)
		coins := state.Coins + granted
		if err := s.repo.UpdateState(txCtx, userID, coins, state.TotalGames); err != nil {
			return fmt.Errorf("update slots state: %w", err)
		}

		res = &model.FreeCoins{Granted: granted, Coins: coins}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug().Int("user_id", userID).Int("granted", res.Granted).Msg("free coins claimed")
	return res, nil
}

// CleanupHistory Обрезает историю до лимита
func (s *serv) CleanupHistory(ctx context.Context) (*model.SlotsData, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	var res *model.SlotsData
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		state, err := s.repo.GetState(txCtx, userID, s.cfg.InitialCoins())
		if err != nil {
			return fmt.Errorf("get slots state: %w", err)
		}
		if err := s.repo.TrimHistory(txCtx, userID, s.cfg.HistoryLimit()); err != nil {
			return fmt.Errorf("trim history: %w", err)
		}
		res, err = s.data(txCtx, userID, state)
		return err
	})
	return res, err
}

// ClearData Очищает историю и возвращает начальные монеты, счётчик игр сохраняется
func (s *serv) ClearData(ctx context.Context) (*model.SlotsData, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	var res *model.SlotsData
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		state, err := s.repo.GetState(txCtx, userID, s.cfg.InitialCoins())
		if err != nil {
			return fmt.Errorf("get slots state: %w", err)
		}
		if err := s.repo.ClearHistory(txCtx, userID); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}

		state.Coins = s.cfg.InitialCoins()
		if err := s.repo.UpdateState(txCtx, userID, state.Coins, state.TotalGames); err != nil {
			return fmt.Errorf("update slots state: %w", err)
		}

		res, err = s.data(txCtx, userID, state)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("user_id", userID).Msg("slots data cleared")
	return res, nil
}

// Stats Статистика выплат по режимам
func (s *serv) Stats() []model.ModeStats {
	return s.statsRepo.Stats()
}

// Modes Режимы в порядке показа
func (s *serv) Modes() []model.ModeInfo {
	out := make([]model.ModeInfo, 0, len(servModel.ModeOrder))
	for _, mode := range servModel.ModeOrder {
		m := servModel.Modes[mode]
		out = append(out, model.ModeInfo{
			Mode:              mode,
			Name:              m.Name,
			Description:       m.Description,
			Rows:              m.Rows,
			Cols:              m.Cols,
			Symbols:           append([]string(nil), m.Symbols...),
			LineBased:         m.LineBased,
			JackpotMultiplier: servModel.JackpotMultipliers[mode],
		})
	}
	return out
}
