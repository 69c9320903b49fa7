// Package email delivers rent reminder emails.
package email

import (
	"context"
	"fmt"

	"trustrent-backend/internal/logger"
)

type Message struct {
	To        string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender writes messages to the log instead of delivering them. It is used
// when no SendGrid API key is configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, msg Message) error {
	logger.InfoContext(ctx, "Email not delivered (no provider configured)",
		"to", msg.To, "subject", msg.Subject)
	return nil
}

type Service struct {
	sender Sender
}

func NewService(sender Sender) *Service {
	return &Service{sender: sender}
}

// SendRentReminder tells a tenant that rent for address is due on dueDay.
func (s *Service) SendRentReminder(ctx context.Context, to, toName, address string, amount, dueDay int) error {
	subject := fmt.Sprintf("Rent reminder: $%d due on day %d", amount, dueDay)
	plain := fmt.Sprintf(`Hello %s,

This is a friendly reminder that your rent of $%d for %s is due on day %d of the month.

Paying on time keeps your TrustRent credit score growing.

Best regards,
The TrustRent Team`, toName, amount, address, dueDay)
	html := fmt.Sprintf(`<html>
<body>
<p>Hello %s,</p>
<p>This is a friendly reminder that your rent of <strong>$%d</strong> for %s is due on day %d of the month.</p>
<p>Paying on time keeps your TrustRent credit score growing.</p>
<p>Best regards,<br>The TrustRent Team</p>
</body>
</html>`, toName, amount, address, dueDay)

	if err := s.sender.Send(ctx, Message{To: to, ToName: toName, Subject: subject, PlainText: plain, HTML: html}); err != nil {
		return fmt.Errorf("failed to send rent reminder: %w", err)
	}
	return nil
}
