// Package mailer delivers transactional mail over SMTP. It implements the
// ticket confirmation and password reset mailer contracts using gomail.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/tickets"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/config"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer sends ticket confirmations and password reset links through a
// single SMTP account.
type SMTPMailer struct {
	dialer *gomail.Dialer
	sender string
	logger logger.Logger
}

// NewSMTPMailer creates an SMTPMailer from the mail settings.
func NewSMTPMailer(settings *config.MailSettings, logger logger.Logger) (*SMTPMailer, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mail settings: %w", err)
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(settings.Host, settings.Port, settings.Username, settings.Password),
		sender: settings.Sender,
		logger: logger,
	}, nil
}

// SendTicketConfirmation emails the booking summary with the QR code both
// inlined in the body and attached as a PNG.
func (m *SMTPMailer) SendTicketConfirmation(ctx context.Context, email tickets.ConfirmationEmail) error {
	subject := "Your Ticket Confirmation"
	if email.IsUpdate {
		subject = "Your Updated Ticket"
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", email.Recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", renderConfirmationBody(email))

	if len(email.QRCodePNG) > 0 {
		msg.Attach("ticket-qr.png",
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(email.QRCodePNG)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {"image/png"}}),
		)
	}

	if err := m.send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send ticket confirmation: %w", err)
	}

	m.logger.Info("Sent ticket confirmation to ", email.Recipient)
	return nil
}

// SendPasswordReset emails the time-limited reset link.
func (m *SMTPMailer) SendPasswordReset(ctx context.Context, recipient, resetLink string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", "Password Reset Request")
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>We received a request to reset your password.</p>"+
			"<p><a href=%q>Reset your password</a></p>"+
			"<p>The link expires in one hour. If you did not request a reset you can ignore this email.</p>",
		resetLink))

	if err := m.send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send password reset: %w", err)
	}

	m.logger.Info("Sent password reset to ", recipient)
	return nil
}

// send dials and delivers in a goroutine so context cancellation is honored
// even though gomail itself is not context-aware.
func (m *SMTPMailer) send(ctx context.Context, msg *gomail.Message) error {
	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func renderConfirmationBody(email tickets.ConfirmationEmail) string {
	var body bytes.Buffer
	fmt.Fprintf(&body, "<h2>%s</h2>", email.EventName)
	fmt.Fprintf(&body, "<p>Location: %s</p>", email.EventLocation)
	fmt.Fprintf(&body, "<p>Starts: %s</p>", email.EventStartsAt.Format(time.RFC1123))
	fmt.Fprintf(&body, "<p>Ends: %s</p>", email.EventEndsAt.Format(time.RFC1123))
	fmt.Fprintf(&body, "<p>%d x %s, total %.2f</p>", email.Quantity, email.TicketTypeName, email.AmountPaid)
	body.WriteString("<p>Present the attached QR code at the gate.</p>")
	return body.String()
}
