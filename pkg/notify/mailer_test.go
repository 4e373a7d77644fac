package notify

import (
	"log/slog"
	"testing"
)

// With no SMTP host configured the worker skips delivery; enqueueing and
// draining must still complete without blocking the caller.
func TestMailerEnqueueAndClose(t *testing.T) {
	m := NewMailer(Config{ClientURL: "http://localhost:5173"}, slog.Default())

	for i := 0; i < 100; i++ {
		m.SendWelcome("ann@example.com", "Ann Lee")
	}
	m.Close()
}

func TestMailerSendAfterCloseIsDropped(t *testing.T) {
	m := NewMailer(Config{}, slog.Default())
	m.Close()

	// Must not panic on the closed queue.
	m.SendWelcome("ann@example.com", "Ann Lee")
	m.Close()
}
