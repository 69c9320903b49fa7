package http

import (
	"net/http"

	"trustrent-backend/internal/domain"
)

type authenticateRequest struct {
	Role domain.UserRole `json:"role"`
}

type navigateRequest struct {
	Page string `json:"page"`
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Session.Current(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req authenticateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	session, err := h.svc.Session.Authenticate(r.Context(), req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) Deauthenticate(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Session.Deauthenticate(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.svc.Session.Navigate(r.Context(), req.Page); err != nil {
		writeError(w, err)
		return
	}
	h.GetSession(w, r)
}

// RenderView answers 204 when the active page renders nothing.
func (h *Handler) RenderView(w http.ResponseWriter, r *http.Request) {
	v, ok, err := h.svc.View.Render(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) Navigation(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.View.Navigation(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
