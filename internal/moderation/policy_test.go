package moderation

import (
	"reflect"
	"testing"
)

func TestIsModerator(t *testing.T) {
	tests := []struct {
		name      string
		allowList string
		identity  string
		want      bool
	}{
		{"listed identity", "alice@x.com,bob@x.com", "alice@x.com", true},
		{"unlisted identity", "alice@x.com", "mallory@x.com", false},
		{"case insensitive lookup", "alice@x.com", "Alice@X.com", true},
		{"allow-list entries are normalized", " Alice@X.com , bob@x.com", "alice@x.com", true},
		{"empty identity never a moderator", "alice@x.com", "", false},
		{"whitespace identity never a moderator", "alice@x.com", "   ", false},
		{"empty list falls back to default", "", "admin", true},
		{"only blank entries fall back to default", " , ,", "admin", true},
		{"default not present when list configured", "alice@x.com", "admin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := NewPolicy(tt.allowList)
			if got := policy.IsModerator(tt.identity); got != tt.want {
				t.Errorf("IsModerator(%q) = %v, want %v", tt.identity, got, tt.want)
			}
		})
	}
}

func TestModerators(t *testing.T) {
	policy := NewPolicy("Bob@X.com, alice@x.com,alice@x.com")
	want := []string{"alice@x.com", "bob@x.com"}
	if got := policy.Moderators(); !reflect.DeepEqual(got, want) {
		t.Errorf("Moderators() = %v, want %v", got, want)
	}
}
