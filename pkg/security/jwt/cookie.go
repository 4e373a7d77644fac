package jwt

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "jwt"

// CookiePolicy is the single source of truth for session cookie
// attributes. Issue and Clear emit identical name/path/httpOnly/
// sameSite/secure values; mismatched attributes silently fail to clear
// the cookie in most HTTP clients.
type CookiePolicy struct {
	// Secure is false only in development, where clients run on plain
	// HTTP.
	Secure bool
	TTL    time.Duration
}

// Issue attaches the session token to the response.
func (p CookiePolicy) Issue(c *fiber.Ctx, token string) {
	c.Cookie(p.cookie(token, time.Now().Add(p.TTL)))
}

// Clear expires the session cookie using the exact attributes set at
// issuance.
func (p CookiePolicy) Clear(c *fiber.Ctx) {
	c.Cookie(p.cookie("", time.Unix(0, 0)))
}

func (p CookiePolicy) cookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   p.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	}
}
