package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"campuslinks/internal/community"
	"campuslinks/internal/middleware"
	"campuslinks/internal/validation"
)

// UserStateHandler handles per-user dashboard state via JSON API.
type UserStateHandler struct {
	service *community.Service
}

// NewUserStateHandler creates a new API user-state handler.
func NewUserStateHandler(service *community.Service) *UserStateHandler {
	return &UserStateHandler{service: service}
}

// ownState resolves the path identity and checks it matches the session
// identity. Users may only read and write their own state.
func ownState(c fiber.Ctx) (string, bool, error) {
	caller := middleware.Identity(c)
	if caller == "" {
		return "", false, jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	target := validation.NormalizeIdentity(c.Params("userId"))
	if target == "" {
		return "", false, jsonError(c, fiber.StatusBadRequest, "userId is required")
	}
	if target != caller {
		return "", false, jsonError(c, fiber.StatusForbidden, "you can only access your own state")
	}
	return caller, true, nil
}

// Get returns the caller's dashboard state, defaulting to empty.
func (h *UserStateHandler) Get(c fiber.Ctx) error {
	identity, ok, err := ownState(c)
	if !ok {
		return err
	}

	state, err := h.service.GetUserState(c.Context(), identity)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch user state")
	}

	return jsonSuccess(c, fiber.Map{"user_id": identity, "state": state})
}

// Put overwrites the caller's dashboard state.
func (h *UserStateHandler) Put(c fiber.Ctx) error {
	identity, ok, err := ownState(c)
	if !ok {
		return err
	}

	// Decode active_subjects leniently: non-string entries are discarded
	// rather than failing the whole request, matching the dashboard client.
	var body struct {
		ActiveSubjects []any `json:"active_subjects"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	subjects := make([]string, 0, len(body.ActiveSubjects))
	for _, entry := range body.ActiveSubjects {
		if s, ok := entry.(string); ok {
			subjects = append(subjects, s)
		}
	}

	state, err := h.service.SaveUserState(c.Context(), identity, subjects)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save user state")
	}

	return jsonSuccess(c, fiber.Map{"user_id": identity, "state": state})
}
