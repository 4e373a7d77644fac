// Package notify delivers post-signup notifications in the background,
// fully decoupled from the request that triggered them.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	mail "github.com/wneessen/go-mail"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// ClientURL is the link included in the welcome email body.
	ClientURL string
}

type welcome struct {
	email string
	name  string
}

// Mailer sends welcome emails from a single background worker. Enqueuing
// never blocks the request path; a full queue drops the notification
// with a warning. It implements auth.Notifier.
type Mailer struct {
	cfg   Config
	log   *slog.Logger
	queue chan welcome
	done  chan struct{}

	mu     sync.Mutex
	closed bool
}

func NewMailer(cfg Config, log *slog.Logger) *Mailer {
	m := &Mailer{
		cfg:   cfg,
		log:   log,
		queue: make(chan welcome, 64),
		done:  make(chan struct{}),
	}
	go m.run()
	return m
}

// SendWelcome queues a welcome email for delivery. It never blocks and
// never fails the caller; after Close it drops the notification.
func (m *Mailer) SendWelcome(email, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		m.log.Warn("mailer closed, dropping welcome email", "email", email)
		return
	}
	select {
	case m.queue <- welcome{email: email, name: name}:
	default:
		m.log.Warn("welcome email queue full, dropping", "email", email)
	}
}

// Close stops the worker after draining queued notifications. Safe to
// call more than once.
func (m *Mailer) Close() {
	m.mu.Lock()
	if !m.closed {
		m.closed = true
		close(m.queue)
	}
	m.mu.Unlock()
	<-m.done
}

func (m *Mailer) run() {
	defer close(m.done)
	for w := range m.queue {
		if err := m.send(w); err != nil {
			m.log.Error("failed to send welcome email", "email", w.email, "error", err)
		}
	}
}

func (m *Mailer) send(w welcome) error {
	if m.cfg.Host == "" {
		m.log.Info("smtp not configured, skipping welcome email", "email", w.email)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return err
	}
	if err := msg.To(w.email); err != nil {
		return err
	}
	msg.Subject("Welcome to Chatter!")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Hi %s,\n\nWelcome to Chatter! Jump back in any time: %s\n",
		w.name, m.cfg.ClientURL,
	))

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return client.DialAndSendWithContext(ctx, msg)
}
