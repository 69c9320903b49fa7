package http

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/service"
)

type askRequest struct {
	Instruction string `json:"instruction"`
}

type answerResponse struct {
	Answer string `json:"answer"`
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	answer, err := h.svc.Advisory.Ask(r.Context(), req.Instruction)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, answerResponse{Answer: answer})
}

func (h *Handler) TenantInsight(w http.ResponseWriter, r *http.Request) {
	insight, err := h.svc.Advisory.TenantInsight(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, answerResponse{Answer: insight})
}

func (h *Handler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	link, err := h.svc.Report.GenerateInvoice(r.Context(), mux.Vars(r)["paymentId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

func (h *Handler) GenerateCreditReport(w http.ResponseWriter, r *http.Request) {
	link, err := h.svc.Report.GenerateCreditReport(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

// DownloadReport streams a stored report named by a signed token.
func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(w, fmt.Errorf("missing token: %w", domain.ErrInvalidArgument))
		return
	}
	file, filename, err := h.svc.Report.OpenDownload(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Cache-Control", "private, no-store")
	w.WriteHeader(http.StatusOK)
	io.Copy(w, file)
}

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Session.Current(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if !session.Authenticated() {
		writeError(w, domain.ErrNoActiveSession)
		return
	}

	page := queryInt(r, "page", 1, service.MaxNotificationPage)
	pageSize := queryInt(r, "pageSize", service.DefaultNotificationPageSize, service.MaxNotificationPageSize)
	notes, total, err := h.svc.Notification.GetNotifications(r.Context(), session.UserID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notifications": notes, "total_count": total})
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Session.Current(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if !session.Authenticated() {
		writeError(w, domain.ErrNoActiveSession)
		return
	}
	if err := h.svc.Notification.MarkAsRead(r.Context(), session.UserID, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// queryInt reads a positive integer query parameter, falling back to def when
// it is missing or malformed and capping it at limit.
func queryInt(r *http.Request, key string, def, limit int32) int32 {
	v, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	if err != nil || v < 1 {
		return def
	}
	if v > int64(limit) {
		return limit
	}
	return int32(v)
}
