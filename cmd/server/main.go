package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"campuslinks/internal/community"
	"campuslinks/internal/config"
	"campuslinks/internal/email"
	"campuslinks/internal/metrics"
	"campuslinks/internal/moderation"
	"campuslinks/internal/server"
	"campuslinks/internal/store"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Open the storage backend
	kv, err := openKV(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage backend %q: %v", cfg.StorageBackend, err)
	}
	defer kv.Close()

	// Load the subject catalog (optional)
	catalog, err := config.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	if catalog == nil {
		log.Printf("No catalog file at %s; subject catalog will be empty", cfg.CatalogFile)
	}

	// Moderator allow-list is read once at startup
	policy := moderation.NewPolicy(cfg.Moderators)
	log.Printf("Moderators: %v", policy.Moderators())

	links := store.NewLinkStore(kv)
	users := store.NewUserStateStore(kv)
	notifier := email.NewNotifier(email.NewService(cfg), policy.Moderators())
	service := community.NewService(links, users, policy, notifier)

	metrics.Init(links)

	if cfg.SeedDevData && cfg.IsDev() {
		if err := links.SeedDevLinks(ctx); err != nil {
			log.Fatalf("Failed to seed dev data: %v", err)
		}
		log.Println("Seeded development links")
	}

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, service, kv, catalog); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}

// openKV builds the configured KV backend. The postgres backend also runs
// its embedded migrations.
func openKV(ctx context.Context, cfg *config.Config) (store.KV, error) {
	switch cfg.StorageBackend {
	case "redis":
		return store.NewRedisKV(cfg.RedisURL)
	case "postgres":
		pg, err := store.NewPostgresKV(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := pg.RunMigrations(cfg.DatabaseURL); err != nil {
			pg.Close()
			return nil, err
		}
		log.Println("Migrations completed successfully")
		return pg, nil
	case "memory":
		return store.NewMemKV(), nil
	default:
		return store.NewFileKV(cfg.StorageDir)
	}
}
