package terminal

import (
	"net/http"

	dto "funny_arcade/internal/api/dto/terminal"
	"funny_arcade/internal/api/httperr"
	"funny_arcade/internal/converter"
	"funny_arcade/internal/service"
	"funny_arcade/pkg/req"
	"funny_arcade/pkg/resp"
)

type HandlerDeps struct {
	Serv service.TerminalService
}

type Handler struct {
	serv service.TerminalService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Exec(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ExecRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Exec(r.Context(), converter.ToTerminalExec(payload))
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToExecResponse(*result))
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CompleteRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.CompleteResponse{
		Completion: h.serv.Complete(payload.Input),
	})
}

func (h *Handler) Commands(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCommandResponses(h.serv.Commands()))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.serv.History(r.Context())
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(history))
}
