package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/maxim2210/chatter/api/http/presenter"
	"github.com/maxim2210/chatter/pkg/auth"
)

// mapError translates domain errors into HTTP responses. Anything
// unexpected is logged with context and flattened to a generic 500 so
// internal detail never leaks.
func mapError(c *fiber.Ctx, log *slog.Logger, err error, logMsg string) error {
	switch {
	case errors.Is(err, auth.ErrAllFieldsRequired):
		return presenter.Error(c, http.StatusBadRequest, "all fields are required")
	case errors.Is(err, auth.ErrPasswordTooShort):
		return presenter.Error(c, http.StatusBadRequest, "password must be at least 6 characters")
	case errors.Is(err, auth.ErrInvalidEmail):
		return presenter.Error(c, http.StatusBadRequest, "invalid email format")
	case errors.Is(err, auth.ErrEmailExists):
		return presenter.Error(c, http.StatusBadRequest, "email already exists")
	case errors.Is(err, auth.ErrMissingProfilePic):
		return presenter.Error(c, http.StatusBadRequest, "profile pic is required")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, auth.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "user not found")
	default:
		log.Error(logMsg, "error", err)
		return presenter.Error(c, http.StatusInternalServerError, "internal server error")
	}
}
