package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"campuslinks/internal/community"
	"campuslinks/internal/middleware"
	"campuslinks/internal/store"
)

// ModerationHandler handles the moderation queue via JSON API.
type ModerationHandler struct {
	service *community.Service
}

// NewModerationHandler creates a new API moderation handler.
func NewModerationHandler(service *community.Service) *ModerationHandler {
	return &ModerationHandler{service: service}
}

// Pending returns every link awaiting moderation, across all subjects.
func (h *ModerationHandler) Pending(c fiber.Ctx) error {
	requester := middleware.Identity(c)
	if requester == "" {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	pending, err := h.service.ListPending(c.Context(), requester)
	if err != nil {
		if errors.Is(err, community.ErrForbidden) {
			return jsonError(c, fiber.StatusForbidden, "you do not have moderation permissions")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch pending links")
	}

	return jsonSuccess(c, fiber.Map{"pending": pending})
}

// Approve publishes a pending link.
func (h *ModerationHandler) Approve(c fiber.Ctx) error {
	return h.moderate(c, community.ActionApprove)
}

// Reject discards a pending link entirely.
func (h *ModerationHandler) Reject(c fiber.Ctx) error {
	return h.moderate(c, community.ActionReject)
}

func (h *ModerationHandler) moderate(c fiber.Ctx, action community.ModerationAction) error {
	requester := middleware.Identity(c)
	if requester == "" {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	subjectID := c.Params("subjectId")
	linkID, err := uuid.Parse(c.Params("linkId"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid link id")
	}

	if err := h.service.Moderate(c.Context(), subjectID, linkID, requester, action); err != nil {
		switch {
		case errors.Is(err, community.ErrForbidden):
			return jsonError(c, fiber.StatusForbidden, "you do not have moderation permissions")
		case errors.Is(err, store.ErrLinkNotFound):
			return jsonError(c, fiber.StatusNotFound, "link not found")
		default:
			return jsonError(c, fiber.StatusInternalServerError, "failed to moderate link")
		}
	}

	return jsonSuccess(c, fiber.Map{"action": string(action)})
}
