package spinner

import (
	"funny_arcade/internal/logger"
	"funny_arcade/internal/model"
	"funny_arcade/internal/service"
	servModel "funny_arcade/internal/service/spinner/model"
	"funny_arcade/pkg/rng"

	"github.com/rs/zerolog"
)

type serv struct {
	rng rng.Source
	log zerolog.Logger
}

func NewSpinnerService(src rng.Source, log zerolog.Logger) service.SpinnerService {
	return &serv{
		rng: src,
		log: logger.Component(log, "spinner"),
	}
}

// Presets Готовые наборы вопросов, копия чтобы вызывающий не менял таблицу
func (s *serv) Presets() []model.SpinnerPreset {
	out := make([]model.SpinnerPreset, len(servModel.Presets))
	for i, p := range servModel.Presets {
		p.Answers = append([]string(nil), p.Answers...)
		out[i] = p
	}
	return out
}
