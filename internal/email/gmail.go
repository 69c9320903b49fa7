package email

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/mail"
	"strings"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"trustrent-backend/internal/logger"
)

// GmailSender delivers mail through the Gmail API as the authorized user.
type GmailSender struct {
	svc       *gmail.Service
	fromEmail string
	fromName  string
}

func NewGmailSender(ctx context.Context, fromEmail, fromName string, opts ...option.ClientOption) (*GmailSender, error) {
	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail client: %w", err)
	}
	return &GmailSender{svc: svc, fromEmail: fromEmail, fromName: fromName}, nil
}

func (s *GmailSender) Send(ctx context.Context, msg Message) error {
	raw := base64.URLEncoding.EncodeToString(s.compose(msg))

	logger.ExternalServiceCall("gmail", "users.messages.send", "to", msg.To)
	sent, err := s.svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		logger.ExternalServiceResult("gmail", "users.messages.send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	logger.ExternalServiceResult("gmail", "users.messages.send", nil, "messageID", sent.Id)
	return nil
}

// compose renders msg as an RFC 2822 message. The HTML body wins when set.
func (s *GmailSender) compose(msg Message) []byte {
	from := mail.Address{Name: s.fromName, Address: s.fromEmail}
	to := mail.Address{Name: msg.ToName, Address: msg.To}

	body, contentType := msg.PlainText, "text/plain; charset=UTF-8"
	if msg.HTML != "" {
		body, contentType = msg.HTML, "text/html; charset=UTF-8"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from.String())
	fmt.Fprintf(&b, "To: %s\r\n", to.String())
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s\r\n", contentType)
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
