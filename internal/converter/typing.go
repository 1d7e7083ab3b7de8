package converter

import (
	"funny_arcade/internal/api/dto/typing"
	"funny_arcade/internal/model"
)

func ToTypingStats(req typing.MetricsRequest) model.TypingStats {
	return model.TypingStats{
		Duration:     req.Duration,
		TimeLeft:     req.TimeLeft,
		TotalTyped:   req.TotalTyped,
		CorrectChars: req.CorrectChars,
		WordsTyped:   req.WordsTyped,
		Errors:       req.Errors,
	}
}

func ToMetricsResponse(m model.TypingMetrics) typing.MetricsResponse {
	return typing.MetricsResponse{
		Accuracy:          m.Accuracy.InexactFloat64(),
		WPM:               m.WPM.InexactFloat64(),
		SPM:               m.SPM.InexactFloat64(),
		Errors:            m.Errors,
		Duration:          m.Elapsed,
		WordsTyped:        m.WordsTyped,
		BackgroundOpacity: m.BackgroundOpacity.InexactFloat64(),
	}
}
