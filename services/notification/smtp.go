package notification

import (
	"context"
	"fmt"
	"time"

	"mehfil/models"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Sender is the part of gomail.Dialer used to send messages.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer renders mail templates and sends them over SMTP.
type SMTPMailer struct {
	Sender   Sender
	From     string
	FromName string
	BaseURL  string
	Logger   *zap.Logger
}

// NewSMTPMailer builds a mailer on a gomail dialer.
func NewSMTPMailer(host string, port int, user, pass, fromName, baseURL string, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		Sender:   gomail.NewDialer(host, port, user, pass),
		From:     user,
		FromName: fromName,
		BaseURL:  baseURL,
		Logger:   logger,
	}
}

// Deliver renders p and sends it.
func (m *SMTPMailer) Deliver(ctx context.Context, p models.MailPayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	mail, err := render(p, m.BaseURL, time.Now())
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.From, m.FromName)
	msg.SetHeader("To", p.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/html", mail.HTML)

	if err := m.Sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send %s mail to %s: %w", p.Kind, p.To, err)
	}
	if m.Logger != nil {
		m.Logger.Info("Mail sent", zap.String("kind", p.Kind), zap.String("to", p.To))
	}
	return nil
}

func (m *SMTPMailer) SendVerification(ctx context.Context, to, name, token string) error {
	return m.Deliver(ctx, models.MailPayload{Kind: models.MailVerification, To: to, Name: name, Token: token})
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, name, token string) error {
	return m.Deliver(ctx, models.MailPayload{Kind: models.MailPasswordReset, To: to, Name: name, Token: token})
}

func (m *SMTPMailer) SendBookingConfirmation(ctx context.Context, to, name string, booking *models.Booking) error {
	return m.Deliver(ctx, models.MailPayload{Kind: models.MailBookingConfirmation, To: to, Name: name, Booking: booking})
}
