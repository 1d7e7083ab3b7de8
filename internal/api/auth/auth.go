package auth

import (
	"net/http"
	"strings"

	dto "funny_arcade/internal/api/dto/auth"
	"funny_arcade/internal/api/httperr"
	"funny_arcade/internal/converter"
	"funny_arcade/internal/service"
	"funny_arcade/pkg/req"
	"funny_arcade/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AuthService
}

type Handler struct {
	serv service.AuthService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Register создаёт пользователя и возвращает access_token
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(requestBody.Login) == "" || requestBody.Password == "" {
		resp.WriteError(w, http.StatusBadRequest, "login and password are required")
		return
	}

	data, err := h.serv.Register(
		r.Context(),
		converter.RegisterRequestToUserModel(&requestBody),
	)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToAuthResponse(data))
}

// Login проверяет пароль и возвращает access_token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.serv.Login(
		r.Context(),
		strings.TrimSpace(requestBody.Login),
		requestBody.Password,
	)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAuthResponse(data))
}
