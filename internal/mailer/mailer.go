package mailer

import "context"

// Mailer delivers transactional mail. Order intake treats delivery as
// best-effort: a failure is logged and never fails the order.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Noop discards mail; used in tests and when no API key is configured.
type Noop struct{}

func (Noop) Send(ctx context.Context, to, subject, body string) error {
	return nil
}
