package httperr

import (
	"errors"
	"net/http"

	"funny_arcade/internal/model"
	"funny_arcade/pkg/resp"

	"github.com/rs/zerolog"
)

// Status HTTP-код для доменной ошибки
func Status(err error) int {
	switch {
	case errors.Is(err, model.ErrUnknownMode),
		errors.Is(err, model.ErrGridShape),
		errors.Is(err, model.ErrInvalidSpinnerInput),
		errors.Is(err, model.ErrInvalidReactionTime),
		errors.Is(err, model.ErrEmptyCommand),
		errors.Is(err, model.ErrInvalidTypingStats):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, model.ErrFreeCoinsUnavailable),
		errors.Is(err, model.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, model.ErrUnauthorized),
		errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Write пишет ошибку в ответ; внутренние ошибки логируются и не раскрываются клиенту
func Write(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		resp.WriteError(w, status, "internal error")
		return
	}
	resp.WriteError(w, status, err.Error())
}
