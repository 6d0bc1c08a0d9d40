package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"campuslinks/internal/config"
	"campuslinks/internal/validation"
)

// IdentityKey is the Locals key under which the normalized caller identity
// is stored for downstream handlers.
const IdentityKey = "identity"

// AuthMiddleware resolves the caller identity from the session, or from a
// trusted ingress header when one is configured.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// identity extracts and normalizes the caller identity. Empty means
// unauthenticated.
func (m *AuthMiddleware) identity(c fiber.Ctx) string {
	if m.cfg.IdentityHeader != "" {
		if raw := c.Get(m.cfg.IdentityHeader); raw != "" {
			return validation.NormalizeIdentity(raw)
		}
	}

	sess := session.FromContext(c)
	if sess == nil {
		return ""
	}
	raw, _ := sess.Get("identity").(string)
	return validation.NormalizeIdentity(raw)
}

// RequireAuth rejects unauthenticated requests with 401.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	id := m.identity(c)
	if id == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	c.Locals(IdentityKey, id)
	return c.Next()
}

// OptionalAuth loads the identity if present, but doesn't require it.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if id := m.identity(c); id != "" {
		c.Locals(IdentityKey, id)
	}
	return c.Next()
}

// Identity returns the normalized identity set by RequireAuth/OptionalAuth,
// or empty when the caller is unauthenticated.
func Identity(c fiber.Ctx) string {
	id, _ := c.Locals(IdentityKey).(string)
	return id
}
