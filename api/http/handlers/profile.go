package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/maxim2210/chatter/api/http/presenter"
	"github.com/maxim2210/chatter/pkg/auth"
	"github.com/maxim2210/chatter/pkg/media"
)

type ProfileHandler struct {
	useCase auth.AuthUseCase
	log     *slog.Logger
}

func NewProfileHandler(useCase auth.AuthUseCase, log *slog.Logger) *ProfileHandler {
	return &ProfileHandler{useCase: useCase, log: log}
}

type updateProfileRequest struct {
	ProfilePic string `json:"profilePic"`
}

// UpdateProfilePicture replaces the authenticated user's avatar. The
// user id always comes from the verified session, never from the body.
// @Summary Update profile picture
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body updateProfileRequest true "base64 image payload"
// @Success 200 {object} auth.PublicUser
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Security BearerAuth
// @Router  /auth/update-profile [put]
func (h *ProfileHandler) UpdateProfilePicture(c *fiber.Ctx) error {
	subject, _ := c.Locals("userId").(string)
	userID, err := uuid.Parse(subject)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "invalid session")
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.ProfilePic == "" {
		return presenter.Error(c, http.StatusBadRequest, "profile pic is required")
	}
	data, contentType, err := media.DecodeDataURI(req.ProfilePic)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid image payload")
	}

	user, err := h.useCase.UpdateProfilePicture(c.Context(), userID, data, contentType)
	if err != nil {
		return mapError(c, h.log, err, "failed to update profile picture")
	}
	return presenter.JSON(c, http.StatusOK, user.Public())
}
