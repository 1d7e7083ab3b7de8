package typing

import (
	"fmt"

	"funny_arcade/internal/logger"
	"funny_arcade/internal/model"
	"funny_arcade/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	// После стольких ошибок фон перестаёт тускнеть
	maxOpacityErrors = 40
	minOpacity       = "0.2"
)

var (
	hundred   = decimal.NewFromInt(100)
	perMinute = decimal.NewFromInt(60)
)

type serv struct {
	log zerolog.Logger
}

func NewTypingService(log zerolog.Logger) service.TypingService {
	return &serv{log: logger.Component(log, "typing")}
}

// Metrics Точность, WPM и SPM по счётчикам забега
func (s *serv) Metrics(stats model.TypingStats) (*model.TypingMetrics, error) {
	if err := validate(stats); err != nil {
		return nil, err
	}

	elapsed := stats.Duration - stats.TimeLeft
	res := &model.TypingMetrics{
		Accuracy:          decimal.Zero,
		WPM:               decimal.Zero,
		SPM:               decimal.Zero,
		Errors:            stats.Errors,
		Elapsed:           elapsed,
		WordsTyped:        stats.WordsTyped,
		BackgroundOpacity: BackgroundOpacity(stats.Errors),
	}

	if stats.TotalTyped > 0 {
		res.Accuracy = decimal.NewFromInt(int64(stats.CorrectChars)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(stats.TotalTyped))).
			Round(2)
	}
	if elapsed > 0 {
		secs := decimal.NewFromInt(int64(elapsed))
		res.WPM = decimal.NewFromInt(int64(stats.WordsTyped)).Mul(perMinute).Div(secs).Round(2)
		res.SPM = decimal.NewFromInt(int64(stats.CorrectChars)).Mul(perMinute).Div(secs).Round(2)
	}

	s.log.Debug().
		Int("elapsed", elapsed).
		Str("wpm", res.WPM.String()).
		Str("accuracy", res.Accuracy.String()).
		Msg("typing metrics")

	return res, nil
}

// BackgroundOpacity Линейно от 1 до 0.2 за первые 40 ошибок
func BackgroundOpacity(errs int) decimal.Decimal {
	errs = min(max(errs, 0), maxOpacityErrors)
	span := decimal.NewFromInt(1).Sub(decimal.RequireFromString(minOpacity))
	return decimal.NewFromInt(1).Sub(
		span.Mul(decimal.NewFromInt(int64(errs))).Div(decimal.NewFromInt(maxOpacityErrors)),
	)
}

func validate(stats model.TypingStats) error {
	switch {
	case stats.Duration <= 0:
		return fmt.Errorf("%w: duration must be positive", model.ErrInvalidTypingStats)
	case stats.TimeLeft < 0 || stats.TimeLeft > stats.Duration:
		return fmt.Errorf("%w: time left must be within duration", model.ErrInvalidTypingStats)
	case stats.TotalTyped < 0 || stats.CorrectChars < 0 || stats.WordsTyped < 0 || stats.Errors < 0:
		return fmt.Errorf("%w: counters must not be negative", model.ErrInvalidTypingStats)
	case stats.CorrectChars > stats.TotalTyped:
		return fmt.Errorf("%w: correct chars exceed typed chars", model.ErrInvalidTypingStats)
	}
	return nil
}
