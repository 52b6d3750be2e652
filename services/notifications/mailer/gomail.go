package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
	"github.com/wayfare-app/wayfare/services/notifications"
)

// GomailMailer sends payment emails over SMTP
type GomailMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailMailer creates a new SMTP mailer
func NewGomailMailer(cfg models.SMTPConfig) notifications.Mailer {
	return &GomailMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendPaymentEmail renders and sends the email matching the event kind
func (m *GomailMailer) SendPaymentEmail(event *models.PaymentNotificationEvent) error {
	subject, body := renderPaymentEmail(event)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", event.CustomerEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send %s email for %s: %w", event.Kind, event.Reference, err)
	}
	return nil
}

func renderPaymentEmail(event *models.PaymentNotificationEvent) (subject, body string) {
	switch event.Kind {
	case models.NotificationPaymentConfirmed:
		subject = fmt.Sprintf("Booking confirmed: %s", event.Destination)
		body = fmt.Sprintf(
			"Hi %s,\n\n"+
				"Your payment of %.2f %s for your trip to %s has been received "+
				"and your booking is confirmed.\n\n"+
				"Booking reference: %s\n\n"+
				"Safe travels,\nThe Wayfare Team\n",
			event.CustomerName, event.Amount, event.Currency,
			event.Destination, event.Reference)
	case models.NotificationPaymentFailed:
		subject = fmt.Sprintf("Payment failed for your %s booking", event.Destination)
		body = fmt.Sprintf(
			"Hi %s,\n\n"+
				"Unfortunately your payment of %.2f %s for your trip to %s "+
				"could not be completed. Your booking is not confirmed; please "+
				"try again from your bookings page.\n\n"+
				"Booking reference: %s\n\n"+
				"The Wayfare Team\n",
			event.CustomerName, event.Amount, event.Currency,
			event.Destination, event.Reference)
	default:
		subject = fmt.Sprintf("Update on your %s booking", event.Destination)
		body = fmt.Sprintf(
			"Hi %s,\n\nThere is an update on your booking %s.\n\nThe Wayfare Team\n",
			event.CustomerName, event.Reference)
	}
	return subject, body
}
