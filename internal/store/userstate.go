package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"campuslinks/internal/models"
)

// userStateKeyPrefix namespaces per-identity state documents. Unlike the
// links collection, user state is one document per identity, so concurrent
// saves by different users cannot clobber each other.
const userStateKeyPrefix = "user-state:"

// UserStateStore is the sole owner of persisted per-identity dashboard state.
type UserStateStore struct {
	kv KV
}

// NewUserStateStore creates a user-state store over the given KV backend.
func NewUserStateStore(kv KV) *UserStateStore {
	return &UserStateStore{kv: kv}
}

func userStateKey(identity string) string {
	return userStateKeyPrefix + identity
}

// Get returns the stored state for a normalized identity, or a fresh empty
// state if none exists yet.
func (s *UserStateStore) Get(ctx context.Context, identity string) (models.UserState, error) {
	data, err := s.kv.Get(ctx, userStateKey(identity))
	if err != nil {
		return models.UserState{}, err
	}
	if data == nil {
		return models.UserState{
			ActiveSubjects: []string{},
			UpdatedAt:      time.Now().UTC(),
		}, nil
	}

	var state models.UserState
	if err := json.Unmarshal(data, &state); err != nil {
		return models.UserState{}, fmt.Errorf("failed to decode user state: %w", err)
	}
	if state.ActiveSubjects == nil {
		state.ActiveSubjects = []string{}
	}
	return state, nil
}

// Save overwrites the state for a normalized identity. The subject list is
// deduplicated preserving first occurrence; blank entries are dropped.
func (s *UserStateStore) Save(ctx context.Context, identity string, activeSubjects []string) (models.UserState, error) {
	seen := make(map[string]struct{}, len(activeSubjects))
	deduped := make([]string, 0, len(activeSubjects))
	for _, subjectID := range activeSubjects {
		subjectID = strings.TrimSpace(subjectID)
		if subjectID == "" {
			continue
		}
		if _, ok := seen[subjectID]; ok {
			continue
		}
		seen[subjectID] = struct{}{}
		deduped = append(deduped, subjectID)
	}

	state := models.UserState{
		ActiveSubjects: deduped,
		UpdatedAt:      time.Now().UTC(),
	}

	data, err := json.Marshal(state)
	if err != nil {
		return models.UserState{}, fmt.Errorf("failed to encode user state: %w", err)
	}
	if err := s.kv.Set(ctx, userStateKey(identity), data); err != nil {
		return models.UserState{}, err
	}
	return state, nil
}
