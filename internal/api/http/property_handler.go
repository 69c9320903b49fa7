package http

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"trustrent-backend/internal/domain"
)

type assignTenantRequest struct {
	TenantID string `json:"tenant_id"`
}

func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.svc.Property.ListProperties(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	summary, err := h.svc.Rent.PortfolioSummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"properties": properties, "summary": summary})
}

func (h *Handler) AddProperty(w http.ResponseWriter, r *http.Request) {
	var draft domain.PropertyDraft
	if err := decode(r, &draft); err != nil {
		writeError(w, err)
		return
	}
	property, err := h.svc.Property.AddProperty(r.Context(), draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, property)
}

func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	property, err := h.svc.Property.GetProperty(r.Context(), id)
	if err != nil {
		writeError(w, fmt.Errorf("property %s: %w", id, err))
		return
	}
	paid, err := h.svc.Rent.PaidThisMonth(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"property": property, "paid_this_month": paid})
}

func (h *Handler) SelectProperty(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Session.SelectProperty(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	h.GetSession(w, r)
}

func (h *Handler) AssignTenant(w http.ResponseWriter, r *http.Request) {
	var req assignTenantRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.svc.Property.AssignTenant(r.Context(), mux.Vars(r)["id"], req.TenantID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SendReminder(w http.ResponseWriter, r *http.Request) {
	note, err := h.svc.Reminder.SendReminder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}
