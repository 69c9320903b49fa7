package email

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"trustrent-backend/internal/logger"
)

func init() {
	logger.SetOutput(io.Discard, "error", "text")
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func TestService_SendRentReminder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", ctx, mock.MatchedBy(func(m Message) bool {
			return m.To == "jordan@gmail.com" &&
				m.ToName == "Jordan Rivera" &&
				m.Subject == "Rent reminder: $3200 due on day 5" &&
				strings.Contains(m.PlainText, "101 Silicon Valley Blvd")
		})).Return(nil)

		err := NewService(sender).SendRentReminder(ctx, "jordan@gmail.com", "Jordan Rivera", "101 Silicon Valley Blvd", 3200, 5)
		require.NoError(t, err)
		sender.AssertExpectations(t)
	})

	t.Run("Sender failure is wrapped", func(t *testing.T) {
		sender := new(MockSender)
		boom := errors.New("boom")
		sender.On("Send", ctx, mock.Anything).Return(boom)

		err := NewService(sender).SendRentReminder(ctx, "a@b.c", "A", "addr", 1, 1)
		assert.ErrorIs(t, err, boom)
	})
}

func TestLogSender(t *testing.T) {
	assert.NoError(t, LogSender{}.Send(context.Background(), Message{To: "a@b.c", Subject: "s"}))
}

func TestSendGridSender(t *testing.T) {
	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer SG.test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := NewSendGridSender("SG.test", "no-reply@trustrent.com", "TrustRent")
	s.client.BaseURL = srv.URL + "/v3/mail/send"

	err := s.Send(context.Background(), Message{To: "jordan@gmail.com", ToName: "Jordan", Subject: "Hi", PlainText: "p", HTML: "<p>h</p>"})
	require.NoError(t, err)
	assert.Equal(t, "Hi", payload["subject"])

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer failing.Close()
	s.client.BaseURL = failing.URL + "/v3/mail/send"
	assert.Error(t, s.Send(context.Background(), Message{To: "a@b.c", Subject: "s", PlainText: "p"}))
}

func TestGmailSender(t *testing.T) {
	var payload map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/gmail/v1/users/me/messages/send", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg-1","threadId":"th-1"}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	s, err := NewGmailSender(ctx, "no-reply@trustrent.com", "TrustRent",
		option.WithEndpoint(srv.URL+"/"), option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	t.Run("sends html body", func(t *testing.T) {
		err := s.Send(ctx, Message{To: "jordan@gmail.com", ToName: "Jordan Rivera", Subject: "Rent reminder", PlainText: "p", HTML: "<p>h</p>"})
		require.NoError(t, err)

		raw, err := base64.URLEncoding.DecodeString(payload["raw"])
		require.NoError(t, err)
		msg := string(raw)
		assert.Contains(t, msg, "From: \"TrustRent\" <no-reply@trustrent.com>\r\n")
		assert.Contains(t, msg, "To: \"Jordan Rivera\" <jordan@gmail.com>\r\n")
		assert.Contains(t, msg, "Subject: Rent reminder\r\n")
		assert.Contains(t, msg, "Content-Type: text/html; charset=UTF-8\r\n\r\n<p>h</p>")
	})

	t.Run("falls back to plain text", func(t *testing.T) {
		raw := s.compose(Message{To: "a@b.c", Subject: "s", PlainText: "plain body"})
		assert.True(t, strings.HasSuffix(string(raw), "text/plain; charset=UTF-8\r\n\r\nplain body"))
	})

	t.Run("provider error", func(t *testing.T) {
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"code":403,"message":"forbidden"}}`, http.StatusForbidden)
		}))
		defer failing.Close()
		bad, err := NewGmailSender(ctx, "no-reply@trustrent.com", "TrustRent",
			option.WithEndpoint(failing.URL+"/"), option.WithHTTPClient(failing.Client()))
		require.NoError(t, err)
		assert.Error(t, bad.Send(ctx, Message{To: "a@b.c", Subject: "s", PlainText: "p"}))
	})
}
