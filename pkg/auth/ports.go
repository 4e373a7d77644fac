package auth

import "context"

// ImageUploader stores an image with an external host and returns a
// durable public URL.
type ImageUploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

// Notifier delivers post-signup notifications. Implementations must not
// block the caller; delivery failure is their own concern and never
// reaches the request path.
type Notifier interface {
	SendWelcome(email, name string)
}
