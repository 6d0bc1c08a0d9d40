package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"campuslinks/internal/models"
)

func newTestLink(subjectID, title, owner string, status models.ModerationStatus) models.CommunityLink {
	return models.CommunityLink{
		ID:        uuid.New(),
		SubjectID: subjectID,
		Title:     title,
		URL:       "https://example.com",
		CreatedBy: owner,
		CreatedAt: time.Now().UTC(),
		Status:    status,
	}
}

func TestAppendPreservesSubmissionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewLinkStore(NewMemKV())

	for _, title := range []string{"first", "second", "third"} {
		if _, err := s.Append(ctx, "PRO1", newTestLink("PRO1", title, "alice@x.com", models.StatusPending)); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	links, err := s.ReadAll(ctx, "PRO1")
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(links) != 3 {
		t.Fatalf("ReadAll() returned %d links, want 3", len(links))
	}
	for i, want := range []string{"first", "second", "third"} {
		if links[i].Title != want {
			t.Errorf("links[%d].Title = %q, want %q", i, links[i].Title, want)
		}
	}
}

func TestReadAllUnknownSubjectIsEmpty(t *testing.T) {
	s := NewLinkStore(NewMemKV())

	links, err := s.ReadAll(context.Background(), "NOPE")
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(links) != 0 {
		t.Errorf("ReadAll() returned %d links, want 0", len(links))
	}
}

func TestFindByID(t *testing.T) {
	ctx := context.Background()
	s := NewLinkStore(NewMemKV())

	link := newTestLink("PRO1", "notes", "alice@x.com", models.StatusPending)
	if _, err := s.Append(ctx, "PRO1", link); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	got, err := s.FindByID(ctx, "PRO1", link.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Title != "notes" {
		t.Errorf("FindByID() Title = %q, want %q", got.Title, "notes")
	}

	if _, err := s.FindByID(ctx, "PRO1", uuid.New()); err != ErrLinkNotFound {
		t.Errorf("FindByID(unknown) error = %v, want ErrLinkNotFound", err)
	}
	if _, err := s.FindByID(ctx, "MAT1", link.ID); err != ErrLinkNotFound {
		t.Errorf("FindByID(wrong subject) error = %v, want ErrLinkNotFound", err)
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	s := NewLinkStore(NewMemKV())

	first := newTestLink("PRO1", "first", "alice@x.com", models.StatusApproved)
	second := newTestLink("PRO1", "second", "alice@x.com", models.StatusApproved)
	for _, l := range []models.CommunityLink{first, second} {
		if _, err := s.Append(ctx, "PRO1", l); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	if err := s.Remove(ctx, "PRO1", first.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	links, err := s.ReadAll(ctx, "PRO1")
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(links) != 1 || links[0].ID != second.ID {
		t.Errorf("ReadAll() after Remove = %v, want only %v", links, second.ID)
	}

	if err := s.Remove(ctx, "PRO1", first.ID); err != ErrLinkNotFound {
		t.Errorf("Remove(gone) error = %v, want ErrLinkNotFound", err)
	}
}

func TestUpdateModerationFields(t *testing.T) {
	ctx := context.Background()
	s := NewLinkStore(NewMemKV())

	link := newTestLink("PRO1", "notes", "alice@x.com", models.StatusPending)
	link.Description = "week 3"
	if _, err := s.Append(ctx, "PRO1", link); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	moderatedAt := time.Now().UTC()
	if err := s.UpdateModerationFields(ctx, "PRO1", link.ID, models.StatusApproved, "admin", moderatedAt); err != nil {
		t.Fatalf("UpdateModerationFields() error = %v", err)
	}

	got, err := s.FindByID(ctx, "PRO1", link.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Status != models.StatusApproved {
		t.Errorf("Status = %q, want approved", got.Status)
	}
	if got.ModeratedBy != "admin" {
		t.Errorf("ModeratedBy = %q, want admin", got.ModeratedBy)
	}
	if got.ModeratedAt == nil || !got.ModeratedAt.Equal(moderatedAt) {
		t.Errorf("ModeratedAt = %v, want %v", got.ModeratedAt, moderatedAt)
	}
	// All other fields untouched
	if got.Title != "notes" || got.Description != "week 3" || got.CreatedBy != "alice@x.com" {
		t.Errorf("non-moderation fields changed: %+v", got)
	}

	if err := s.UpdateModerationFields(ctx, "PRO1", uuid.New(), models.StatusApproved, "admin", moderatedAt); err != ErrLinkNotFound {
		t.Errorf("UpdateModerationFields(unknown) error = %v, want ErrLinkNotFound", err)
	}
}

func TestListPending(t *testing.T) {
	ctx := context.Background()
	s := NewLinkStore(NewMemKV())

	pendingMat := newTestLink("MAT1", "mat pending", "bob@x.com", models.StatusPending)
	approvedPro := newTestLink("PRO1", "pro approved", "alice@x.com", models.StatusApproved)
	pendingPro := newTestLink("PRO1", "pro pending", "alice@x.com", models.StatusPending)

	if _, err := s.Append(ctx, "MAT1", pendingMat); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	for _, l := range []models.CommunityLink{approvedPro, pendingPro} {
		if _, err := s.Append(ctx, "PRO1", l); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	pending, err := s.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending() error = %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("ListPending() returned %d entries, want 2", len(pending))
	}
	// Subjects sorted by ID
	if pending[0].SubjectID != "MAT1" || pending[0].Link.ID != pendingMat.ID {
		t.Errorf("pending[0] = %+v, want MAT1/%v", pending[0], pendingMat.ID)
	}
	if pending[1].SubjectID != "PRO1" || pending[1].Link.ID != pendingPro.ID {
		t.Errorf("pending[1] = %+v, want PRO1/%v", pending[1], pendingPro.ID)
	}
}

// Records written before moderation existed carry no moderation_status.
// They decode as approved, and a missing created_by stays empty (ownerless).
func TestReadLegacyRecords(t *testing.T) {
	ctx := context.Background()
	kv := NewMemKV()

	legacy := []byte(`{
		"PRO1": [
			{"id": "6f1e0a9e-3a89-4f3d-9d3e-111111111111", "title": "old", "url": "https://old.example.com"},
			{"id": "6f1e0a9e-3a89-4f3d-9d3e-222222222222", "title": "new", "url": "https://new.example.com", "created_by": "alice@x.com", "moderation_status": "pending"}
		]
	}`)
	if err := kv.Set(ctx, "community-links", legacy); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	s := NewLinkStore(kv)
	links, err := s.ReadAll(ctx, "PRO1")
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("ReadAll() returned %d links, want 2", len(links))
	}

	if links[0].Status != models.StatusApproved {
		t.Errorf("legacy link Status = %q, want approved", links[0].Status)
	}
	if links[0].CreatedBy != "" {
		t.Errorf("legacy link CreatedBy = %q, want empty", links[0].CreatedBy)
	}
	if links[0].SubjectID != "PRO1" {
		t.Errorf("legacy link SubjectID = %q, want PRO1", links[0].SubjectID)
	}
	if links[1].Status != models.StatusPending {
		t.Errorf("explicit pending Status = %q, want pending", links[1].Status)
	}
}

func TestLinkStoreOverFileKV(t *testing.T) {
	ctx := context.Background()
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV() error = %v", err)
	}
	s := NewLinkStore(kv)

	link := newTestLink("PRO1", "notes", "alice@x.com", models.StatusPending)
	if _, err := s.Append(ctx, "PRO1", link); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	// A fresh store over the same directory sees the persisted data.
	s2 := NewLinkStore(kv)
	got, err := s2.FindByID(ctx, "PRO1", link.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Title != "notes" {
		t.Errorf("FindByID() Title = %q, want notes", got.Title)
	}
}
