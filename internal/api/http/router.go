package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"trustrent-backend/internal/logger"
	"trustrent-backend/internal/service"
)

// Handler dispatches API commands to the services of one application state.
type Handler struct {
	svc *service.Services
}

func NewHandler(svc *service.Services) *Handler {
	return &Handler{svc: svc}
}

// NewRouter registers every API route on a new router.
func NewRouter(svc *service.Services) *mux.Router {
	router := mux.NewRouter()
	router.Use(loggingMiddleware)
	NewHandler(svc).RegisterRoutes(router)
	return router
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/session", h.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/session", h.Authenticate).Methods(http.MethodPost)
	api.HandleFunc("/session", h.Deauthenticate).Methods(http.MethodDelete)
	api.HandleFunc("/session/page", h.Navigate).Methods(http.MethodPut)

	api.HandleFunc("/view", h.RenderView).Methods(http.MethodGet)
	api.HandleFunc("/navigation", h.Navigation).Methods(http.MethodGet)

	api.HandleFunc("/properties", h.ListProperties).Methods(http.MethodGet)
	api.HandleFunc("/properties", h.AddProperty).Methods(http.MethodPost)
	api.HandleFunc("/properties/{id}", h.GetProperty).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id}/select", h.SelectProperty).Methods(http.MethodPost)
	api.HandleFunc("/properties/{id}/tenant", h.AssignTenant).Methods(http.MethodPut)
	api.HandleFunc("/properties/{id}/remind", h.SendReminder).Methods(http.MethodPost)

	api.HandleFunc("/payments", h.ListPayments).Methods(http.MethodGet)
	api.HandleFunc("/payments", h.RecordPayment).Methods(http.MethodPost)
	api.HandleFunc("/tenant", h.GetTenant).Methods(http.MethodGet)
	api.HandleFunc("/tenants", h.ListTenants).Methods(http.MethodGet)

	api.HandleFunc("/complaints", h.ListComplaints).Methods(http.MethodGet)
	api.HandleFunc("/complaints", h.FileComplaint).Methods(http.MethodPost)
	api.HandleFunc("/complaints/{id}/resolve", h.ResolveComplaint).Methods(http.MethodPost)

	api.HandleFunc("/advisory", h.Ask).Methods(http.MethodPost)
	api.HandleFunc("/advisory/insight", h.TenantInsight).Methods(http.MethodGet)

	api.HandleFunc("/reports/invoice/{paymentId}", h.GenerateInvoice).Methods(http.MethodPost)
	api.HandleFunc("/reports/credit", h.GenerateCreditReport).Methods(http.MethodPost)
	api.HandleFunc("/reports/download", h.DownloadReport).Methods(http.MethodGet)

	api.HandleFunc("/notifications", h.ListNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", h.MarkNotificationRead).Methods(http.MethodPost)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Debug("HTTP request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "duration", time.Since(start))
	})
}
