// Package store provides durable storage for community links and per-user
// dashboard state over a small key-value contract.
package store

import (
	"context"
	"errors"
)

// Domain-level storage error sentinels.
var (
	ErrLinkNotFound = errors.New("link not found")
)

// KV is the persistence contract the stores depend on. Implementations hold
// whole JSON documents per key; a missing key yields (nil, nil) from Get.
//
// Store mutations are whole-document read-modify-write: two concurrent
// writers to the same key can lose an update. Backends with stronger needs
// should move to per-record atomic updates or version-checked writes.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
