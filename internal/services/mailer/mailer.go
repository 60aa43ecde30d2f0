package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"sync"

	"outreach/internal/compose"
)

// Mailer sends a composed message to its recipients.
type Mailer interface {
	Send(ctx context.Context, msg compose.Message) error
}

// Config holds the SMTP submission settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTP delivers messages over an SMTP submission endpoint.
type SMTP struct {
	cfg  Config
	send func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTP constructs the production mailer.
func NewSMTP(cfg Config) *SMTP {
	return &SMTP{cfg: cfg, send: smtp.SendMail}
}

// Send delivers the message. The envelope recipients are the To address plus
// the CC address when present.
func (s *SMTP) Send(ctx context.Context, msg compose.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("send: message has no recipient")
	}

	recipients := []string{msg.To}
	if msg.CC != "" {
		recipients = append(recipients, msg.CC)
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	if err := s.send(addr, auth, s.cfg.From, recipients, encode(s.cfg.From, msg)); err != nil {
		return fmt.Errorf("send via %s: %w", addr, err)
	}
	return nil
}

// encode renders the RFC 5322 message with an HTML body.
func encode(from string, msg compose.Message) []byte {
	var b strings.Builder
	writeHeader(&b, "From", from)
	writeHeader(&b, "To", msg.To)
	if msg.CC != "" {
		writeHeader(&b, "Cc", msg.CC)
	}
	writeHeader(&b, "Subject", msg.Subject)
	writeHeader(&b, "MIME-Version", "1.0")
	writeHeader(&b, "Content-Type", `text/html; charset="UTF-8"`)
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	return []byte(b.String())
}

func writeHeader(b *strings.Builder, name, value string) {
	// Header values come from config and the survey table; strip CR/LF so a
	// crafted cell cannot inject extra headers.
	value = strings.NewReplacer("\r", " ", "\n", " ").Replace(value)
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\r\n")
}

// Recorder retains sent messages in memory. Dry runs and orchestrator tests
// use it in place of SMTP.
type Recorder struct {
	mu   sync.Mutex
	sent []compose.Message
	fail func(msg compose.Message) error
}

// NewRecorder builds an in-memory mailer.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// FailWith installs a hook invoked before recording; a non-nil return is
// surfaced as the send error.
func (r *Recorder) FailWith(hook func(msg compose.Message) error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = hook
}

func (r *Recorder) Send(ctx context.Context, msg compose.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		if err := r.fail(msg); err != nil {
			return err
		}
	}
	r.sent = append(r.sent, msg)
	return nil
}

// Sent returns a copy of the recorded messages in send order.
func (r *Recorder) Sent() []compose.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]compose.Message, len(r.sent))
	copy(out, r.sent)
	return out
}
