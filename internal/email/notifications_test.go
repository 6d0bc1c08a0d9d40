package email

import (
	"reflect"
	"testing"

	"campuslinks/internal/config"
	"campuslinks/internal/models"
)

func TestMailable(t *testing.T) {
	tests := []struct {
		name       string
		identities []string
		want       []string
	}{
		{
			name:       "email addresses pass through",
			identities: []string{"alice@uni.edu", "bob@uni.edu"},
			want:       []string{"alice@uni.edu", "bob@uni.edu"},
		},
		{
			name:       "bare usernames are dropped",
			identities: []string{"admin", "alice@uni.edu"},
			want:       []string{"alice@uni.edu"},
		},
		{
			name:       "empty identity is dropped",
			identities: []string{"", "admin"},
			want:       nil,
		},
		{
			name:       "no identities",
			identities: nil,
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mailable(tt.identities...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("mailable(%v) = %v, want %v", tt.identities, got, tt.want)
			}
		})
	}
}

func TestNotifierDisabled(t *testing.T) {
	// SMTP not configured: every notification must be a silent no-op.
	service := NewService(&config.Config{})
	notifier := NewNotifier(service, []string{"admin", "mod@uni.edu"})

	link := models.CommunityLink{
		SubjectID: "PRO1",
		Title:     "Lecture notes",
		URL:       "https://example.com/notes",
		CreatedBy: "alice@uni.edu",
	}

	notifier.NotifyModeratorsLinkSubmitted(link)
	notifier.NotifyLinkApproved(link, "admin")
	notifier.NotifyLinkRejected(link)
}

func TestSendEmailDisabledIsNoop(t *testing.T) {
	service := NewService(&config.Config{})

	if service.IsEnabled() {
		t.Fatal("service should be disabled without SMTP config")
	}
	if err := service.SendEmail([]string{"x@y.z"}, "subject", "body"); err != nil {
		t.Errorf("disabled SendEmail returned error: %v", err)
	}
}
