package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/maxim2210/chatter/api/http/presenter"
	"github.com/maxim2210/chatter/pkg/auth"
	"github.com/maxim2210/chatter/pkg/security/jwt"
)

type AuthHandler struct {
	useCase  auth.AuthUseCase
	cookies  jwt.CookiePolicy
	notifier auth.Notifier
	log      *slog.Logger
}

func NewAuthHandler(useCase auth.AuthUseCase, cookies jwt.CookiePolicy, notifier auth.Notifier, log *slog.Logger) *AuthHandler {
	return &AuthHandler{useCase: useCase, cookies: cookies, notifier: notifier, log: log}
}

type signupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles account registration.
// @Summary Sign up
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body signupRequest true "signup payload"
// @Success 201 {object} auth.PublicUser
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.useCase.Signup(c.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		return mapError(c, h.log, err, "failed to sign up")
	}

	h.cookies.Issue(c, result.Token)
	if err := presenter.JSON(c, http.StatusCreated, result.User.Public()); err != nil {
		return err
	}
	// Queued after the response is finalized. A delivery failure is the
	// notifier's concern and never rolls back the created account.
	h.notifier.SendWelcome(result.User.Email, result.User.FullName)
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} auth.PublicUser
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return mapError(c, h.log, err, "failed to login")
	}

	h.cookies.Issue(c, result.Token)
	return presenter.JSON(c, http.StatusOK, result.User.Public())
}

// Logout clears the session cookie. Attributes mirror those set at
// login; the session itself is client-held, so nothing is revoked
// server-side.
// @Summary Logout
// @Tags    auth
// @Produce json
// @Success 200 {object} presenter.MessageResponse
// @Router  /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.cookies.Clear(c)
	return presenter.Message(c, http.StatusOK, "logged out successfully")
}
