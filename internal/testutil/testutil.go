// Package testutil provides test utilities and helpers.
package testutil

import (
	"testing"

	"campuslinks/internal/community"
	"campuslinks/internal/config"
	"campuslinks/internal/moderation"
	"campuslinks/internal/store"
)

// IdentityHeader is the trusted header handler tests authenticate with.
const IdentityHeader = "X-Test-Identity"

// NewConfig returns a config suitable for handler tests: in-memory storage
// and identity supplied via trusted header.
func NewConfig(t *testing.T, moderators string) *config.Config {
	t.Helper()
	return &config.Config{
		Env:            "test",
		StorageBackend: "memory",
		Moderators:     moderators,
		IdentityHeader: IdentityHeader,
		SessionSecret:  "test-secret-that-is-long-enough-for-use",
	}
}

// NewService builds a community service over a fresh in-memory KV.
// The returned KV can be inspected or pre-populated by tests.
func NewService(t *testing.T, moderators string) (*community.Service, store.KV) {
	t.Helper()
	kv := store.NewMemKV()
	service := community.NewService(
		store.NewLinkStore(kv),
		store.NewUserStateStore(kv),
		moderation.NewPolicy(moderators),
		nil,
	)
	return service, kv
}
