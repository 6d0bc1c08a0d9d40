package models

import (
	"time"

	"github.com/google/uuid"
)

// ModerationStatus is the lifecycle state of a community link.
// Removal is terminal and is represented by absence from the store.
type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
)

// CommunityLink represents a student-submitted resource for a subject.
type CommunityLink struct {
	ID          uuid.UUID        `json:"id"`
	SubjectID   string           `json:"subject_id"`
	Title       string           `json:"title"`
	URL         string           `json:"url"`
	Description string           `json:"description,omitempty"`
	CreatedBy   string           `json:"created_by"` // normalized identity; empty on legacy ownerless records
	CreatedAt   time.Time        `json:"created_at"`
	Status      ModerationStatus `json:"moderation_status"`
	ModeratedBy string           `json:"moderated_by,omitempty"`
	ModeratedAt *time.Time       `json:"moderated_at,omitempty"`
}

// IsPending returns true if the link is awaiting moderation.
func (l *CommunityLink) IsPending() bool {
	return l.Status == StatusPending
}

// IsApproved returns true if the link has been published.
func (l *CommunityLink) IsApproved() bool {
	return l.Status == StatusApproved
}

// PendingLink pairs a pending link with the subject it was submitted to,
// for the cross-subject moderation queue.
type PendingLink struct {
	SubjectID string        `json:"subject_id"`
	Link      CommunityLink `json:"link"`
}
