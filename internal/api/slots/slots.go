package slots

import (
	"net/http"

	dto "funny_arcade/internal/api/dto/slots"
	"funny_arcade/internal/api/httperr"
	"funny_arcade/internal/converter"
	"funny_arcade/internal/service"
	"funny_arcade/pkg/req"
	"funny_arcade/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SlotsService
}

type Handler struct {
	serv service.SlotsService
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

	result, err := h.serv.Spin(r.Context(), converter.ToSlotsSpin(payload))
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlotsSpinResponse(*result))
}

func (h *Handler) CheckData(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.CheckData(r.Context())
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlotsDataResponse(*data))
}

func (h *Handler) FreeCoins(w http.ResponseWriter, r *http.Request) {
	res, err := h.serv.ClaimFreeCoins(r.Context())
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToFreeCoinsResponse(*res))
}

func (h *Handler) Cleanup(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.CleanupHistory(r.Context())
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlotsDataResponse(*data))
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.ClearData(r.Context())
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlotsDataResponse(*data))
}

func (h *Handler) Modes(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToModeResponses(h.serv.Modes()))
}

func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponses(h.serv.Stats()))
}
