package mailer

import (
	"context"
	"log/slog"
	"sync"
)

// ConsoleMailer logs messages instead of sending them. Used in development
// when no SendGrid key is configured.
type ConsoleMailer struct {
	mu   sync.Mutex
	sent []Message
}

func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

func (m *ConsoleMailer) Send(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "email (console)",
		"to", msg.To.String(),
		"subject", msg.Subject,
		"body", msg.Text)

	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	return nil
}

// Sent returns a copy of everything sent so far.
func (m *ConsoleMailer) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.sent))
	copy(out, m.sent)
	return out
}
