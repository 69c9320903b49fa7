package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "trustrent-backend/internal/api/http"
	"trustrent-backend/internal/advisor"
	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/email"
	"trustrent-backend/internal/logger"
	"trustrent-backend/internal/repository/memory"
	"trustrent-backend/internal/service"
	"trustrent-backend/internal/storage"
)

func init() {
	logger.SetOutput(io.Discard, "error", "text")
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := storage.NewLocalStorageService(storage.Config{
		Dir:           t.TempDir(),
		BaseURL:       "http://reports.test",
		SigningSecret: "0123456789abcdef0123456789abcdef",
	})
	require.NoError(t, err)

	svc := service.NewServices(service.Deps{
		Store:      memory.NewStore(memory.DemoSeed()),
		Gateway:    advisor.NewStaticGateway("Collect rent early."),
		Storage:    store,
		Email:      email.NewService(email.LogSender{}),
		Now:        func() time.Time { return time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC) },
		LinkExpiry: time.Minute,
	})
	srv := httptest.NewServer(httpapi.NewRouter(svc))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func login(t *testing.T, srv *httptest.Server, role domain.UserRole) {
	t.Helper()
	resp := do(t, srv, http.MethodPost, "/api/v1/session", map[string]any{"role": role})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSessionLifecycle(t *testing.T) {
	srv := newTestServer(t)

	t.Run("logged out by default", func(t *testing.T) {
		resp := do(t, srv, http.MethodGet, "/api/v1/session", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var session domain.Session
		decodeBody(t, resp, &session)
		assert.False(t, session.Authenticated())
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		resp := do(t, srv, http.MethodPost, "/api/v1/session", map[string]any{"role": "ADMIN"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		resp := do(t, srv, http.MethodPost, "/api/v1/session", map[string]any{"role": "LANDLORD", "extra": 1})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("login and navigate", func(t *testing.T) {
		login(t, srv, domain.UserRoleLandlord)

		resp := do(t, srv, http.MethodPut, "/api/v1/session/page", map[string]any{"page": "statistics"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var session domain.Session
		decodeBody(t, resp, &session)
		assert.Equal(t, domain.UserRoleLandlord, session.Role)
		assert.Equal(t, "statistics", session.Page)
	})

	t.Run("logout", func(t *testing.T) {
		resp := do(t, srv, http.MethodDelete, "/api/v1/session", nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = do(t, srv, http.MethodGet, "/api/v1/view", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var v map[string]any
		decodeBody(t, resp, &v)
		assert.Equal(t, "login", v["page"])
	})
}

func TestRenderView(t *testing.T) {
	srv := newTestServer(t)
	login(t, srv, domain.UserRoleTenant)

	t.Run("tenant dashboard", func(t *testing.T) {
		resp := do(t, srv, http.MethodGet, "/api/v1/view", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var v map[string]any
		decodeBody(t, resp, &v)
		assert.Equal(t, "dashboard", v["page"])
		assert.Equal(t, "TENANT", v["role"])
	})

	t.Run("page of the other role renders nothing", func(t *testing.T) {
		resp := do(t, srv, http.MethodPut, "/api/v1/session/page", map[string]any{"page": "statistics"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = do(t, srv, http.MethodGet, "/api/v1/view", nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("navigation", func(t *testing.T) {
		resp := do(t, srv, http.MethodGet, "/api/v1/navigation", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Items []map[string]string `json:"items"`
		}
		decodeBody(t, resp, &body)
		assert.Len(t, body.Items, 4)
	})
}

func TestPropertyRoutes(t *testing.T) {
	srv := newTestServer(t)
	login(t, srv, domain.UserRoleLandlord)

	t.Run("add property", func(t *testing.T) {
		resp := do(t, srv, http.MethodPost, "/api/v1/properties", map[string]any{
			"address":     "9 Elm St",
			"city":        "Austin",
			"rent_amount": 1500,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var property domain.Property
		decodeBody(t, resp, &property)
		assert.Equal(t, "9 Elm St", property.Address)
		assert.Equal(t, domain.PropertyStatusVacant, property.Status)
	})

	t.Run("add property rejects negative rent", func(t *testing.T) {
		resp := do(t, srv, http.MethodPost, "/api/v1/properties", map[string]any{
			"address":     "1 Bad Rd",
			"rent_amount": -5,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("list includes summary", func(t *testing.T) {
		resp := do(t, srv, http.MethodGet, "/api/v1/properties", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Properties []domain.Property        `json:"properties"`
			Summary    domain.PortfolioSummary `json:"summary"`
		}
		decodeBody(t, resp, &body)
		assert.Len(t, body.Properties, 4)
		assert.Equal(t, 4, body.Summary.TotalProperties)
	})

	t.Run("get property", func(t *testing.T) {
		resp := do(t, srv, http.MethodGet, "/api/v1/properties/prop_001", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Property      domain.Property `json:"property"`
			PaidThisMonth bool            `json:"paid_this_month"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "prop_001", body.Property.ID)
		assert.True(t, body.PaidThisMonth)
	})

	t.Run("get unknown property", func(t *testing.T) {
		resp := do(t, srv, http.MethodGet, "/api/v1/properties/nope", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("select property opens details", func(t *testing.T) {
		resp := do(t, srv, http.MethodPost, "/api/v1/properties/prop_002/select", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var session domain.Session
		decodeBody(t, resp, &session)
		assert.Equal(t, "property-details", session.Page)
		require.NotNil(t, session.SelectedPropertyID)
		assert.Equal(t, "prop_002", *session.SelectedPropertyID)
	})

	t.Run("assign tenant", func(t *testing.T) {
		resp := do(t, srv, http.MethodPut, "/api/v1/properties/prop_003/tenant", map[string]any{"tenant_id": "user_tenant_09"})
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = do(t, srv, http.MethodGet, "/api/v1/properties/prop_003", nil)
		var body struct {
			Property domain.Property `json:"property"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, domain.PropertyStatusOccupied, body.Property.Status)
	})

	t.Run("remind vacant property", func(t *testing.T) {
		add := do(t, srv, http.MethodPost, "/api/v1/properties", map[string]any{"address": "2 Oak Ave", "rent_amount": 900})
		var property domain.Property
		decodeBody(t, add, &property)

		resp := do(t, srv, http.MethodPost, "/api/v1/properties/"+property.ID+"/remind", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestReminderNotifications(t *testing.T) {
	srv := newTestServer(t)

	t.Run("requires a session", func(t *testing.T) {
		resp := do(t, srv, http.MethodGet, "/api/v1/notifications", nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	login(t, srv, domain.UserRoleLandlord)
	resp := do(t, srv, http.MethodPost, "/api/v1/properties/prop_001/remind", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	login(t, srv, domain.UserRoleTenant)
	resp = do(t, srv, http.MethodGet, "/api/v1/notifications?page=1&pageSize=10", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Notifications []domain.Notification `json:"notifications"`
		TotalCount    int                   `json:"total_count"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Notifications, 1)
	assert.Equal(t, 1, body.TotalCount)
	assert.False(t, body.Notifications[0].IsRead)

	t.Run("out of range paging is clamped", func(t *testing.T) {
		for _, query := range []string{
			"?page=4294967297&pageSize=4294967297",
			"?page=-3&pageSize=0",
			"?page=abc&pageSize=9999999999999999999999",
		} {
			resp := do(t, srv, http.MethodGet, "/api/v1/notifications"+query, nil)
			require.Equal(t, http.StatusOK, resp.StatusCode, query)
			var page struct {
				Notifications []domain.Notification `json:"notifications"`
				TotalCount    int                   `json:"total_count"`
			}
			decodeBody(t, resp, &page)
			assert.Equal(t, 1, page.TotalCount, query)
		}

		resp := do(t, srv, http.MethodGet, "/api/v1/notifications?page=1&pageSize=4294967297", nil)
		var page struct {
			Notifications []domain.Notification `json:"notifications"`
		}
		decodeBody(t, resp, &page)
		assert.Len(t, page.Notifications, 1)
	})

	resp = do(t, srv, http.MethodPost, "/api/v1/notifications/"+body.Notifications[0].ID+"/read", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestPaymentRoutes(t *testing.T) {
	srv := newTestServer(t)
	login(t, srv, domain.UserRoleTenant)

	resp := do(t, srv, http.MethodPost, "/api/v1/payments", map[string]any{"amount": 3200, "method": "ach"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var payment domain.Payment
	decodeBody(t, resp, &payment)
	assert.Equal(t, "prop_001", payment.PropertyID)
	assert.Equal(t, "2024-03-20", payment.Date)
	assert.False(t, payment.IsLate)

	resp = do(t, srv, http.MethodGet, "/api/v1/payments?propertyId=prop_001", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var history struct {
		Rows []map[string]any `json:"rows"`
	}
	decodeBody(t, resp, &history)
	require.Len(t, history.Rows, 4)
	assert.Equal(t, payment.ID, history.Rows[0]["id"])

	resp = do(t, srv, http.MethodGet, "/api/v1/tenant", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tenant domain.Tenant
	decodeBody(t, resp, &tenant)
	assert.Equal(t, memory.DemoTenantID, tenant.ID)

	resp = do(t, srv, http.MethodGet, "/api/v1/tenants", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var roster struct {
		Tenants []domain.Tenant `json:"tenants"`
	}
	decodeBody(t, resp, &roster)
	require.Len(t, roster.Tenants, 1)
	assert.Equal(t, "Jordan Rivera", roster.Tenants[0].Name)
}

func TestComplaintRoutes(t *testing.T) {
	srv := newTestServer(t)
	login(t, srv, domain.UserRoleTenant)

	resp := do(t, srv, http.MethodPost, "/api/v1/complaints", map[string]any{
		"subject":     "Leaky faucet",
		"category":    "Maintenance",
		"description": "Kitchen sink drips",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var complaint domain.Complaint
	decodeBody(t, resp, &complaint)
	assert.Equal(t, domain.ComplaintStatusOpen, complaint.Status)

	resp = do(t, srv, http.MethodPost, "/api/v1/complaints", map[string]any{"subject": "x", "category": "Pets"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, srv, http.MethodPost, "/api/v1/complaints/"+complaint.ID+"/resolve", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, srv, http.MethodPost, "/api/v1/complaints/missing/resolve", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, srv, http.MethodGet, "/api/v1/complaints", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Complaints []domain.Complaint `json:"complaints"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Complaints)
	assert.Equal(t, complaint.ID, body.Complaints[0].ID)
	assert.Equal(t, domain.ComplaintStatusResolved, body.Complaints[0].Status)
}

func TestAdvisoryRoutes(t *testing.T) {
	srv := newTestServer(t)

	t.Run("ask without session", func(t *testing.T) {
		resp := do(t, srv, http.MethodPost, "/api/v1/advisory", map[string]any{"instruction": "How am I doing?"})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	login(t, srv, domain.UserRoleLandlord)

	t.Run("ask", func(t *testing.T) {
		resp := do(t, srv, http.MethodPost, "/api/v1/advisory", map[string]any{"instruction": "How am I doing?"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "Collect rent early.", body["answer"])
	})

	t.Run("blank instruction", func(t *testing.T) {
		resp := do(t, srv, http.MethodPost, "/api/v1/advisory", map[string]any{"instruction": "  "})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("insight", func(t *testing.T) {
		resp := do(t, srv, http.MethodGet, "/api/v1/advisory/insight", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "Collect rent early.", body["answer"])
	})
}

func TestReportRoutes(t *testing.T) {
	srv := newTestServer(t)
	login(t, srv, domain.UserRoleTenant)

	fetch := func(t *testing.T, link service.ReportLink) *http.Response {
		t.Helper()
		u, err := url.Parse(link.URL)
		require.NoError(t, err)
		return do(t, srv, http.MethodGet, u.RequestURI(), nil)
	}

	t.Run("credit report download", func(t *testing.T) {
		resp := do(t, srv, http.MethodPost, "/api/v1/reports/credit", nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var link service.ReportLink
		decodeBody(t, resp, &link)
		assert.Equal(t, "TrustRent_CreditReport_Jordan_Rivera.pdf", link.Filename)

		dl := fetch(t, link)
		require.Equal(t, http.StatusOK, dl.StatusCode)
		assert.Equal(t, "application/pdf", dl.Header.Get("Content-Type"))
		assert.Contains(t, dl.Header.Get("Content-Disposition"), link.Filename)
		data, err := io.ReadAll(dl.Body)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	})

	t.Run("invoice", func(t *testing.T) {
		resp := do(t, srv, http.MethodPost, "/api/v1/reports/invoice/pay_001", nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var link service.ReportLink
		decodeBody(t, resp, &link)
		assert.Equal(t, "TrustRent_Invoice_pay_001.pdf", link.Filename)
		assert.Equal(t, http.StatusOK, fetch(t, link).StatusCode)
	})

	t.Run("invoice for unknown payment", func(t *testing.T) {
		resp := do(t, srv, http.MethodPost, "/api/v1/reports/invoice/pay_999", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("download without token", func(t *testing.T) {
		resp := do(t, srv, http.MethodGet, "/api/v1/reports/download", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("download with forged token", func(t *testing.T) {
		resp := do(t, srv, http.MethodGet, "/api/v1/reports/download?token=abc.def.ghi", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
