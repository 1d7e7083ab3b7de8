package reaction

import (
	"context"
	"fmt"

	"funny_arcade/internal/logger"
	"funny_arcade/internal/middleware"
	"funny_arcade/internal/model"
	"funny_arcade/internal/repository"
	"funny_arcade/internal/service"

	"github.com/rs/zerolog"
)

type serv struct {
	repo repository.ReactionRepository
	log  zerolog.Logger
}

func NewReactionService(repo repository.ReactionRepository, log zerolog.Logger) service.ReactionService {
	return &serv{
		repo: repo,
		log:  logger.Component(log, "reaction"),
	}
}

// Record сохраняет результат и обновляет лучший и худший
func (s *serv) Record(ctx context.Context, req model.ReactionRecord) (*model.ReactionResult, error) {
	if req.Ms <= 0 {
		return nil, model.ErrInvalidReactionTime
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, model.ErrUnauthorized
	}

	var newBest bool
	scores, err := s.repo.UpdateScores(ctx, userID, func(cur model.ReactionScores) model.ReactionScores {
		newBest = cur.Best == 0 || req.Ms < cur.Best
		if newBest {
			cur.Best = req.Ms
		}
		if req.Ms > cur.Worst {
			cur.Worst = req.Ms
		}
		return cur
	})
	if err != nil {
		return nil, fmt.Errorf("update reaction scores: %w", err)
	}

	return &model.ReactionResult{
		Ms:      req.Ms,
		Verdict: Verdict(req.Ms),
		Scores:  scores,
		NewBest: newBest,
	}, nil
}

func (s *serv) Scores(ctx context.Context) (*model.ReactionScores, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, model.ErrUnauthorized
	}

	scores, err := s.repo.GetScores(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get reaction scores: %w", err)
	}
	return &scores, nil
}

func (s *serv) Reset(ctx context.Context) error {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return model.ErrUnauthorized
	}

	if err := s.repo.DeleteScores(ctx, userID); err != nil {
		return fmt.Errorf("delete reaction scores: %w", err)
	}
	s.log.Debug().Int("user_id", userID).Msg("scores reset")
	return nil
}
