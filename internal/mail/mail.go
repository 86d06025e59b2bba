// Package mail sends transactional email through Resend.
package mail

import (
	"context"
	"fmt"
	"sync"
)

// Message is one outbound email. Text is derived from HTML when empty.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers a message and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// InMemory records messages instead of sending them. It is used in tests
// and when no API key is configured.
type InMemory struct {
	// Fail, when set, is consulted before a message is recorded; a non-nil
	// result is returned as the send error.
	Fail func(Message) error

	mu     sync.Mutex
	outbox []Message
}

func (m *InMemory) Send(_ context.Context, msg Message) (string, error) {
	if m.Fail != nil {
		if err := m.Fail(msg); err != nil {
			return "", err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outbox = append(m.outbox, msg)
	return fmt.Sprintf("memory-%d", len(m.outbox)), nil
}

// Outbox returns a copy of the recorded messages.
func (m *InMemory) Outbox() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Message(nil), m.outbox...)
}
