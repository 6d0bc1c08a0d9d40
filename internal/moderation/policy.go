// Package moderation decides who holds moderation rights.
package moderation

import (
	"sort"
	"strings"

	"campuslinks/internal/validation"
)

// DefaultModerator is used when no allow-list is configured.
const DefaultModerator = "admin"

// Policy holds the moderator allow-list. It is built once at startup from
// configuration and never mutated afterwards.
type Policy struct {
	moderators map[string]struct{}
}

// NewPolicy parses a comma-separated allow-list of identities. Entries are
// normalized before membership checks; blank entries are dropped. An empty
// list falls back to the built-in default moderator.
func NewPolicy(allowList string) *Policy {
	moderators := make(map[string]struct{})
	for _, entry := range strings.Split(allowList, ",") {
		id := validation.NormalizeIdentity(entry)
		if id == "" {
			continue
		}
		moderators[id] = struct{}{}
	}
	if len(moderators) == 0 {
		moderators[DefaultModerator] = struct{}{}
	}
	return &Policy{moderators: moderators}
}

// Moderators returns the allow-list entries in sorted order.
func (p *Policy) Moderators() []string {
	out := make([]string, 0, len(p.moderators))
	for id := range p.moderators {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// IsModerator reports whether the identity is on the allow-list.
// The empty identity is never a moderator.
func (p *Policy) IsModerator(identity string) bool {
	id := validation.NormalizeIdentity(identity)
	if id == "" {
		return false
	}
	_, ok := p.moderators[id]
	return ok
}
