package repository

import (
	"context"

	"funny_arcade/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

type SlotsRepository interface {
	// GetState блокирует строку до конца транзакции, создаёт её при отсутствии
	GetState(ctx context.Context, userID int, initialCoins int) (*model.SlotsState, error)
	UpdateState(ctx context.Context, userID int, coins, totalGames int) error

	AddResult(ctx context.Context, userID int, res model.GameResult) error
	GetHistory(ctx context.Context, userID int, limit int) ([]model.GameResult, error)
	TrimHistory(ctx context.Context, userID int, keep int) error
	ClearHistory(ctx context.Context, userID int) error
}

type SlotsStatsRepository interface {
	UpdateState(mode model.GameMode, bet, payout int, jackpot bool)
	Stats() []model.ModeStats
}

type ReactionRepository interface {
	GetScores(ctx context.Context, userID int) (model.ReactionScores, error)
	// UpdateScores атомарно применяет update к текущим результатам
	UpdateScores(ctx context.Context, userID int, update func(model.ReactionScores) model.ReactionScores) (model.ReactionScores, error)
	DeleteScores(ctx context.Context, userID int) error
}

type TerminalHistoryRepository interface {
	Push(ctx context.Context, userID int, input string, limit int) error
	List(ctx context.Context, userID int) ([]string, error)
}
