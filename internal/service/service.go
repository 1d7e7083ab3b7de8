package service

import (
	"context"

	"funny_arcade/internal/model"
)

type SlotsService interface {
	Spin(ctx context.Context, spinReq model.SlotsSpin) (*model.SlotsSpinResult, error)
	CheckData(ctx context.Context) (*model.SlotsData, error)
	ClaimFreeCoins(ctx context.Context) (*model.FreeCoins, error)
	CleanupHistory(ctx context.Context) (*model.SlotsData, error)
	ClearData(ctx context.Context) (*model.SlotsData, error)
	Stats() []model.ModeStats
	Modes() []model.ModeInfo
}

type SpinnerService interface {
	Spin(ctx context.Context, req model.SpinnerSpin) (*model.SpinnerResult, error)
	Presets() []model.SpinnerPreset
}

type TerminalService interface {
	Exec(ctx context.Context, req model.TerminalExec) (*model.TerminalExecResult, error)
	Complete(input string) string
	Commands() []model.TerminalCommand
	History(ctx context.Context) ([]string, error)
}

type ReactionService interface {
	Record(ctx context.Context, req model.ReactionRecord) (*model.ReactionResult, error)
	Scores(ctx context.Context) (*model.ReactionScores, error)
	Reset(ctx context.Context) error
}

type TypingService interface {
	Metrics(stats model.TypingStats) (*model.TypingMetrics, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
}
