package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"trustrent-backend/internal/domain"
)

type recordPaymentRequest struct {
	Amount int    `json:"amount"`
	Method string `json:"method"`
}

type fileComplaintRequest struct {
	Subject     string                   `json:"subject"`
	Category    domain.ComplaintCategory `json:"category"`
	Description string                   `json:"description"`
}

// ListPayments returns the payment ledger, optionally for one property.
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	history, err := h.svc.View.PaymentHistory(r.Context(), r.URL.Query().Get("propertyId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	payment, err := h.svc.Rent.RecordRentPayment(r.Context(), req.Amount, req.Method)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *Handler) GetTenant(w http.ResponseWriter, r *http.Request) {
	tenant, err := h.svc.Tenant.GetCurrentTenant(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}

// ListTenants lists the tenants a property can be assigned to.
func (h *Handler) ListTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.svc.Tenant.ListTenants(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tenants": tenants})
}

func (h *Handler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.svc.Complaint.ListComplaints(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"complaints": complaints})
}

func (h *Handler) FileComplaint(w http.ResponseWriter, r *http.Request) {
	var req fileComplaintRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	complaint, err := h.svc.Complaint.FileComplaint(r.Context(), req.Subject, req.Category, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, complaint)
}

func (h *Handler) ResolveComplaint(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Complaint.ResolveComplaint(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
