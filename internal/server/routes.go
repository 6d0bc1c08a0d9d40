package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campuslinks/internal/community"
	"campuslinks/internal/config"
	"campuslinks/internal/handlers"
	"campuslinks/internal/handlers/api"
	"campuslinks/internal/middleware"
	"campuslinks/internal/store"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, service *community.Service, kv store.KV, catalog *config.Catalog) error {
	authMiddleware := middleware.NewAuthMiddleware(s.Cfg)

	linkHandler := api.NewLinkHandler(service)
	moderationHandler := api.NewModerationHandler(service)
	userStateHandler := api.NewUserStateHandler(service)
	subjectHandler := api.NewSubjectHandler(catalog)
	probeHandler := handlers.NewProbeHandler(kv)

	// Auth routes - only when OIDC is configured; a trusted identity header
	// can stand in for login behind an authenticating ingress.
	if s.Cfg.OIDCIssuer != "" {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg)
		if err != nil {
			return err
		}
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
	} else if s.Cfg.IdentityHeader == "" {
		log.Println("OIDC authentication is disabled. Set OIDC_ISSUER or IDENTITY_HEADER to enable authenticated routes.")
	}

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Subject catalog (public)
	s.App.Get("/api/subjects", subjectHandler.List)

	// Community links
	s.App.Get("/api/links", authMiddleware.OptionalAuth, linkHandler.List)
	s.App.Post("/api/links", authMiddleware.RequireAuth, linkHandler.Create)
	s.App.Delete("/api/links/:subjectId/:linkId", authMiddleware.RequireAuth, linkHandler.Delete)

	// Moderation queue (moderators only; enforced by the service)
	s.App.Get("/api/moderation/pending", authMiddleware.RequireAuth, moderationHandler.Pending)
	s.App.Post("/api/moderation/:subjectId/:linkId/approve", authMiddleware.RequireAuth, moderationHandler.Approve)
	s.App.Post("/api/moderation/:subjectId/:linkId/reject", authMiddleware.RequireAuth, moderationHandler.Reject)

	// Per-user dashboard state
	s.App.Get("/api/users/:userId/state", authMiddleware.RequireAuth, userStateHandler.Get)
	s.App.Put("/api/users/:userId/state", authMiddleware.RequireAuth, userStateHandler.Put)

	return nil
}
