package handler

import (
	"net/http"

	"github.com/summitinspect/leadgate/internal/models"
	"github.com/summitinspect/leadgate/internal/service"
)

// FlowHandler exposes the five submission flows. Each handler decodes the
// flat field set, hands it to the orchestrator, and writes the single
// FlowResult back.
type FlowHandler struct {
	flows *service.FlowService
}

func NewFlowHandler(flows *service.FlowService) *FlowHandler {
	return &FlowHandler{flows: flows}
}

func (h *FlowHandler) ScheduleInspection(w http.ResponseWriter, r *http.Request) {
	var req models.InspectionRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeResult(w, h.flows.ScheduleInspection(r.Context(), req))
}

func (h *FlowHandler) ContactMessage(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeResult(w, h.flows.ContactMessage(r.Context(), req))
}

func (h *FlowHandler) GenerateChecklist(w http.ResponseWriter, r *http.Request) {
	var req models.ChecklistRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeResult(w, h.flows.GenerateChecklist(r.Context(), req))
}

func (h *FlowHandler) DeliverChecklist(w http.ResponseWriter, r *http.Request) {
	var req models.ChecklistLead
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeResult(w, h.flows.DeliverChecklist(r.Context(), req))
}

func (h *FlowHandler) EstimateCost(w http.ResponseWriter, r *http.Request) {
	var req models.EstimateRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeResult(w, h.flows.EstimateCost(r.Context(), req))
}
