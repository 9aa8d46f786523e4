// Package mailer renders and delivers transactional email.
package mailer

import (
	"context"
	"net/mail"
)

// Message is one rendered email.
type Message struct {
	To      mail.Address
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers a rendered message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
