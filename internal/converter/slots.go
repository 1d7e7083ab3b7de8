package converter

import (
	"strings"

	"funny_arcade/internal/api/dto/slots"
	"funny_arcade/internal/model"

	"github.com/samber/lo"
)

func ToSlotsSpin(req slots.SpinRequest) model.SlotsSpin {
	return model.SlotsSpin{
		Mode: model.GameMode(strings.ToLower(strings.TrimSpace(req.Mode))),
	}
}

func toGameResult(res model.GameResult) slots.GameResult {
	return slots.GameResult{
		ID:         res.ID.String(),
		Timestamp:  res.Timestamp,
		Mode:       string(res.Mode),
		Reels:      res.Reels.Clone(),
		IsJackpot:  res.IsJackpot,
		CoinsWon:   res.CoinsWon,
		Multiplier: res.Multiplier.String(),
	}
}

func ToSlotsSpinResponse(res model.SlotsSpinResult) slots.SpinResponse {
	return slots.SpinResponse{
		Result:       toGameResult(res.Result),
		WinKind:      string(res.Outcome.Kind),
		MatchedLines: res.Outcome.MatchedLines,
		SpinCost:     res.SpinCost,
		Coins:        res.Coins,
		TotalGames:   res.TotalGames,
	}
}

func ToSlotsDataResponse(data model.SlotsData) slots.DataResponse {
	return slots.DataResponse{
		Coins:         data.Coins,
		TotalGames:    data.TotalGames,
		History:       lo.Map(data.History, func(r model.GameResult, _ int) slots.GameResult { return toGameResult(r) }),
		CanClaimCoins: data.CanClaimCoins,
		SpinCost:      data.SpinCost,
		HistoryLimit:  data.HistoryLimit,
	}
}

func ToFreeCoinsResponse(res model.FreeCoins) slots.FreeCoinsResponse {
	return slots.FreeCoinsResponse{
		Granted: res.Granted,
		Coins:   res.Coins,
	}
}

func ToModeResponses(modes []model.ModeInfo) []slots.ModeResponse {
	return lo.Map(modes, func(m model.ModeInfo, _ int) slots.ModeResponse {
		resp := slots.ModeResponse{
			Mode:        string(m.Mode),
			Name:        m.Name,
			Description: m.Description,
			Rows:        m.Rows,
			Cols:        m.Cols,
			Symbols:     m.Symbols,
			LineBased:   m.LineBased,
		}
		if !m.LineBased {
			resp.JackpotMultiplier = m.JackpotMultiplier.String()
		}
		return resp
	})
}

func ToStatsResponses(stats []model.ModeStats) []slots.StatsResponse {
	return lo.Map(stats, func(st model.ModeStats, _ int) slots.StatsResponse {
		return slots.StatsResponse{
			Mode:        string(st.Mode),
			TotalSpins:  st.TotalSpins,
			Jackpots:    st.Jackpots,
			TotalBet:    st.TotalBet,
			TotalPayout: st.TotalPayout,
			RTP:         st.RTP,
			WindowRTP:   st.WindowRTP,
		}
	})
}
