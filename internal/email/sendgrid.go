package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"trustrent-backend/internal/logger"
)

type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridSender(apiKey, fromEmail, fromName string) *SendGridSender {
	return &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, recipient, msg.PlainText, msg.HTML)

	logger.ExternalServiceCall("sendgrid", "Send", "to", msg.To)
	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "Send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "Send", err)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "Send", nil, "status", response.StatusCode)
	return nil
}
