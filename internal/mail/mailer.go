package mail

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer sends plain-text notifications over SMTP with STARTTLS auth.
// There is no mail dependency in the stack; net/smtp covers the single
// admin-notification use.
type Mailer struct {
	server   string
	port     string
	user     string
	password string
}

func NewMailer(server, port, user, password string) *Mailer {
	return &Mailer{server: server, port: port, user: user, password: password}
}

// Configured reports whether SMTP credentials are present. Callers treat
// an unconfigured mailer as a domain outcome, not a failure.
func (m *Mailer) Configured() bool {
	return m.user != "" && m.password != ""
}

// Send delivers a plain-text mail to a single recipient.
func (m *Mailer) Send(to, subject, body string) error {
	if !m.Configured() {
		return fmt.Errorf("smtp credentials not configured")
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.user)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", m.user, m.password, m.server)
	addr := m.server + ":" + m.port
	if err := smtp.SendMail(addr, auth, m.user, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
