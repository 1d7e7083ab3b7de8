package converter

import (
	"funny_arcade/internal/api/dto/spinner"
	"funny_arcade/internal/model"

	"github.com/samber/lo"
)

func ToSpinnerSpin(req spinner.SpinRequest) model.SpinnerSpin {
	return model.SpinnerSpin{
		Question: req.Question,
		Items:    req.Items,
	}
}

func toWedge(w model.Wedge) spinner.Wedge {
	return spinner.Wedge{
		ID:    w.ID,
		Text:  w.Text,
		Color: w.Color,
	}
}

func ToSpinnerSpinResponse(res model.SpinnerResult) spinner.SpinResponse {
	return spinner.SpinResponse{
		Question:     res.Question,
		Wedges:       lo.Map(res.Wedges, func(w model.Wedge, _ int) spinner.Wedge { return toWedge(w) }),
		WinnerIndex:  res.WinnerIndex,
		Winner:       toWedge(res.Winner),
		SectionAngle: res.SectionAngle,
		Rotation:     res.Rotation,
		DurationMs:   res.Duration.Milliseconds(),
	}
}

func ToPresetResponses(presets []model.SpinnerPreset) []spinner.PresetResponse {
	return lo.Map(presets, func(p model.SpinnerPreset, _ int) spinner.PresetResponse {
		return spinner.PresetResponse{
			ID:       p.ID,
			Question: p.Question,
			Answers:  p.Answers,
		}
	})
}
