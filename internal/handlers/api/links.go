package api

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"campuslinks/internal/community"
	"campuslinks/internal/middleware"
	"campuslinks/internal/store"
	"campuslinks/internal/validation"
)

// LinkHandler handles community-link operations via JSON API.
type LinkHandler struct {
	service *community.Service
}

// NewLinkHandler creates a new API link handler.
func NewLinkHandler(service *community.Service) *LinkHandler {
	return &LinkHandler{service: service}
}

// List returns the visible links for the requested subjects, keyed by
// subject ID. Anonymous viewers see only approved links.
func (h *LinkHandler) List(c fiber.Ctx) error {
	viewer := middleware.Identity(c)

	var subjectIDs []string
	for _, raw := range strings.Split(c.Query("subjectIds", ""), ",") {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		subjectIDs = append(subjectIDs, id)
	}

	linksBySubject, err := h.service.VisibleLinks(c.Context(), subjectIDs, viewer)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch links")
	}

	return jsonSuccess(c, fiber.Map{"links_by_subject": linksBySubject})
}

// Create submits a new link. It is stored pending moderation.
func (h *LinkHandler) Create(c fiber.Ctx) error {
	submitter := middleware.Identity(c)
	if submitter == "" {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var body struct {
		SubjectID   string `json:"subject_id"`
		Title       string `json:"title"`
		URL         string `json:"url"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	body.SubjectID = strings.TrimSpace(body.SubjectID)
	body.Title = strings.TrimSpace(body.Title)
	body.URL = strings.TrimSpace(body.URL)
	body.Description = strings.TrimSpace(body.Description)

	if body.SubjectID == "" || body.Title == "" || body.URL == "" {
		return jsonError(c, fiber.StatusBadRequest, "subject_id, title and url are required")
	}

	if !validation.ValidateSubjectID(body.SubjectID) {
		return jsonError(c, fiber.StatusBadRequest, "subject_id must contain only letters, numbers, hyphens, and underscores")
	}

	if !validation.ValidateTitle(body.Title) {
		return jsonError(c, fiber.StatusBadRequest, "title must be at most 200 characters")
	}

	if valid, msg := validation.ValidateURL(body.URL); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	link, err := h.service.SubmitLink(c.Context(), community.SubmitLinkInput{
		SubjectID:   body.SubjectID,
		Title:       body.Title,
		URL:         body.URL,
		Description: body.Description,
		Submitter:   submitter,
	})
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to submit link")
	}

	return jsonSuccess(c, fiber.Map{
		"link":    link,
		"pending": true,
		"message": "link submitted for approval",
	})
}

// Delete removes a link. Moderators may delete any link; owners may only
// delete their own still-pending submissions.
func (h *LinkHandler) Delete(c fiber.Ctx) error {
	requester := middleware.Identity(c)
	if requester == "" {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	subjectID := c.Params("subjectId")
	linkID, err := uuid.Parse(c.Params("linkId"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid link id")
	}

	if err := h.service.DeleteLink(c.Context(), subjectID, linkID, requester); err != nil {
		switch {
		case errors.Is(err, store.ErrLinkNotFound):
			return jsonError(c, fiber.StatusNotFound, "link not found")
		case errors.Is(err, community.ErrForbidden):
			return jsonError(c, fiber.StatusForbidden, "you can only delete your own pending links")
		default:
			return jsonError(c, fiber.StatusInternalServerError, "failed to delete link")
		}
	}

	return jsonSuccess(c, fiber.Map{"deleted": true})
}
