package spinner

import (
	"fmt"
	"strings"

	"funny_arcade/internal/model"
	servModel "funny_arcade/internal/service/spinner/model"

	"github.com/samber/lo"
)

// Validate проверяет вопрос и варианты ответа
func Validate(question string, items []string) error {
	if strings.TrimSpace(question) == "" {
		return fmt.Errorf("%w: question is empty", model.ErrInvalidSpinnerInput)
	}
	if len(items) < servModel.MinItems {
		return fmt.Errorf("%w: at least %d options required", model.ErrInvalidSpinnerInput, servModel.MinItems)
	}
	if len(items) > servModel.MaxItems {
		return fmt.Errorf("%w: at most %d options allowed", model.ErrInvalidSpinnerInput, servModel.MaxItems)
	}

	if lo.SomeBy(items, func(item string) bool { return strings.TrimSpace(item) == "" }) {
		return fmt.Errorf("%w: all options must be filled in", model.ErrInvalidSpinnerInput)
	}

	// Дубликаты без учёта регистра и пробелов по краям
	normalized := lo.Map(items, func(item string, _ int) string {
		return strings.ToLower(strings.TrimSpace(item))
	})
	if len(lo.Uniq(normalized)) != len(items) {
		return fmt.Errorf("%w: all options must be unique", model.ErrInvalidSpinnerInput)
	}
	return nil
}
