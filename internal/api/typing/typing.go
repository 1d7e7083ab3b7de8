package typing

import (
	"net/http"

	dto "funny_arcade/internal/api/dto/typing"
	"funny_arcade/internal/api/httperr"
	"funny_arcade/internal/converter"
	"funny_arcade/internal/service"
	"funny_arcade/pkg/req"
	"funny_arcade/pkg/resp"
)

type HandlerDeps struct {
	Serv service.TypingService
}

type Handler struct {
	serv service.TypingService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.MetricsRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	metrics, err := h.serv.Metrics(converter.ToTypingStats(payload))
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMetricsResponse(*metrics))
}
