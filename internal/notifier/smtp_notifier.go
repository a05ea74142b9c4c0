package notifier

import (
	"bytes"
	"context"
	"fmt"
	"io"

	qrcode "github.com/skip2/go-qrcode"
	gomail "gopkg.in/gomail.v2"

	"github.com/Emmanuel-365/event-app/pkg/config"
)

// SMTPNotifier sends ticket emails with the ticket code rendered as a QR image
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPNotifier creates a notifier backed by an SMTP server
func NewSMTPNotifier(cfg *config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendTicket mails the ticket to the visitor with the QR code attached
func (n *SMTPNotifier) SendTicket(ctx context.Context, email TicketEmail) error {
	png, err := qrcode.Encode(email.TicketCode, qrcode.Medium, 250)
	if err != nil {
		return fmt.Errorf("failed to encode qr code: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", fmt.Sprintf("Votre billet pour %s", email.EventTitle))
	m.SetBody("text/html", ticketBody(email))
	m.Attach("ticket.png", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(png))
		return err
	}))

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send ticket email: %w", err)
	}
	return nil
}

func ticketBody(email TicketEmail) string {
	return fmt.Sprintf(`
		<h2>Bonjour %s,</h2>
		<p>Votre billet pour <strong>%s</strong> est confirme.</p>
		<ul>
			<li>Code: <strong>%s</strong></li>
			<li>Places: %d</li>
			<li>Montant: %d FCFA</li>
		</ul>
		<p>Presentez le code QR ci-joint a l'entree.</p>`,
		email.VisitorName, email.EventTitle, email.TicketCode, email.Places, email.Amount,
	)
}
