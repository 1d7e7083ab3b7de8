package reaction

import (
	"net/http"

	dto "funny_arcade/internal/api/dto/reaction"
	"funny_arcade/internal/api/httperr"
	"funny_arcade/internal/converter"
	"funny_arcade/internal/service"
	"funny_arcade/pkg/req"
	"funny_arcade/pkg/resp"
)

type HandlerDeps struct {
	Serv service.ReactionService
}

type Handler struct {
	serv service.ReactionService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.RecordRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Record(r.Context(), converter.ToReactionRecord(payload))
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRecordResponse(*result))
}

func (h *Handler) Scores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.serv.Scores(r.Context())
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToScoresResponse(*scores))
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.Reset(r.Context()); err != nil {
		httperr.Write(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
