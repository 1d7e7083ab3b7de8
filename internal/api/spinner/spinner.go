package spinner

import (
	"net/http"

	dto "funny_arcade/internal/api/dto/spinner"
	"funny_arcade/internal/api/httperr"
	"funny_arcade/internal/converter"
	"funny_arcade/internal/service"
	"funny_arcade/pkg/req"
	"funny_arcade/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SpinnerService
}

type Handler struct {
	serv service.SpinnerService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToSpinnerSpin(payload))
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinnerSpinResponse(*result))
}

func (h *Handler) Presets(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPresetResponses(h.serv.Presets()))
}
