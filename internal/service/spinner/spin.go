package spinner

import (
	"context"
	"strings"

	"funny_arcade/internal/model"
)

// Spin проверяет ввод и крутит колесо
func (s *serv) Spin(_ context.Context, req model.SpinnerSpin) (*model.SpinnerResult, error) {
	if err := Validate(req.Question, req.Items); err != nil {
		return nil, err
	}

	items := make([]string, len(req.Items))
	for i, item := range req.Items {
		items[i] = strings.TrimSpace(item)
	}

	wedges := Wedges(items)
	index, duration := Pick(s.rng, len(wedges))

	s.log.Debug().
		Int("wedges", len(wedges)).
		Int("winner", index).
		Dur("duration", duration).
		Msg("spin")

	return &model.SpinnerResult{
		Question:     strings.TrimSpace(req.Question),
		Wedges:       wedges,
		WinnerIndex:  index,
		Winner:       wedges[index],
		SectionAngle: SectionAngle(len(wedges)),
		Rotation:     Rotation(index, len(wedges), duration),
		Duration:     duration,
	}, nil
}
