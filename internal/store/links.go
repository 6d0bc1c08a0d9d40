package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"campuslinks/internal/models"
)

// communityLinksKey is the document holding every subject's link sequence.
const communityLinksKey = "community-links"

// linksDocument maps subject IDs to ordered link sequences.
// Insertion order is submission order.
type linksDocument map[string][]models.CommunityLink

// LinkStore is the sole owner of the persisted community-link collections.
// All mutations are whole-document read-modify-write against the KV backend.
type LinkStore struct {
	kv KV
}

// NewLinkStore creates a link store over the given KV backend.
func NewLinkStore(kv KV) *LinkStore {
	return &LinkStore{kv: kv}
}

// readDocument loads and decodes the full links document. A missing key
// yields an empty document. Records written before moderation existed carry
// no status; the legacy default "approved" is applied here, once, so every
// caller sees an explicit status.
func (s *LinkStore) readDocument(ctx context.Context) (linksDocument, error) {
	data, err := s.kv.Get(ctx, communityLinksKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return linksDocument{}, nil
	}

	var doc linksDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode links document: %w", err)
	}

	for subjectID, links := range doc {
		for i := range links {
			if links[i].Status == "" {
				links[i].Status = models.StatusApproved
			}
			if links[i].SubjectID == "" {
				links[i].SubjectID = subjectID
			}
		}
	}
	return doc, nil
}

func (s *LinkStore) writeDocument(ctx context.Context, doc linksDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode links document: %w", err)
	}
	return s.kv.Set(ctx, communityLinksKey, data)
}

// Append adds a link to the end of the subject's sequence.
func (s *LinkStore) Append(ctx context.Context, subjectID string, link models.CommunityLink) (models.CommunityLink, error) {
	doc, err := s.readDocument(ctx)
	if err != nil {
		return models.CommunityLink{}, err
	}

	doc[subjectID] = append(doc[subjectID], link)
	if err := s.writeDocument(ctx, doc); err != nil {
		return models.CommunityLink{}, err
	}
	return link, nil
}

// ReadAll returns the full stored sequence for a subject, unfiltered.
// Visibility filtering is the caller's responsibility.
func (s *LinkStore) ReadAll(ctx context.Context, subjectID string) ([]models.CommunityLink, error) {
	doc, err := s.readDocument(ctx)
	if err != nil {
		return nil, err
	}
	return doc[subjectID], nil
}

// FindByID returns the matching link or ErrLinkNotFound.
func (s *LinkStore) FindByID(ctx context.Context, subjectID string, linkID uuid.UUID) (*models.CommunityLink, error) {
	doc, err := s.readDocument(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc[subjectID] {
		if doc[subjectID][i].ID == linkID {
			link := doc[subjectID][i]
			return &link, nil
		}
	}
	return nil, ErrLinkNotFound
}

// Remove deletes the matching link, or returns ErrLinkNotFound.
func (s *LinkStore) Remove(ctx context.Context, subjectID string, linkID uuid.UUID) error {
	doc, err := s.readDocument(ctx)
	if err != nil {
		return err
	}

	links := doc[subjectID]
	for i := range links {
		if links[i].ID == linkID {
			doc[subjectID] = append(links[:i:i], links[i+1:]...)
			return s.writeDocument(ctx, doc)
		}
	}
	return ErrLinkNotFound
}

// UpdateModerationFields replaces only the moderation-related fields on the
// matching link, leaving all other fields untouched.
func (s *LinkStore) UpdateModerationFields(ctx context.Context, subjectID string, linkID uuid.UUID, status models.ModerationStatus, moderator string, moderatedAt time.Time) error {
	doc, err := s.readDocument(ctx)
	if err != nil {
		return err
	}

	links := doc[subjectID]
	for i := range links {
		if links[i].ID == linkID {
			links[i].Status = status
			links[i].ModeratedBy = moderator
			links[i].ModeratedAt = &moderatedAt
			return s.writeDocument(ctx, doc)
		}
	}
	return ErrLinkNotFound
}

// ListPending returns every pending link across all subjects. Subjects are
// ordered by ID so the moderation queue is stable across scrapes and reloads;
// links keep submission order within a subject.
func (s *LinkStore) ListPending(ctx context.Context) ([]models.PendingLink, error) {
	doc, err := s.readDocument(ctx)
	if err != nil {
		return nil, err
	}

	subjectIDs := make([]string, 0, len(doc))
	for subjectID := range doc {
		subjectIDs = append(subjectIDs, subjectID)
	}
	sort.Strings(subjectIDs)

	var pending []models.PendingLink
	for _, subjectID := range subjectIDs {
		for _, link := range doc[subjectID] {
			if link.IsPending() {
				pending = append(pending, models.PendingLink{SubjectID: subjectID, Link: link})
			}
		}
	}
	return pending, nil
}

// SeedDevLinks inserts sample links for development. Skips subjects that
// already have links.
func (s *LinkStore) SeedDevLinks(ctx context.Context) error {
	samples := []struct {
		subjectID string
		title     string
		url       string
		status    models.ModerationStatus
	}{
		{"PRO1", "Go by Example", "https://gobyexample.com", models.StatusApproved},
		{"PRO1", "Exercism", "https://exercism.org", models.StatusPending},
		{"MAT1", "Paul's Online Math Notes", "https://tutorial.math.lamar.edu", models.StatusApproved},
	}

	doc, err := s.readDocument(ctx)
	if err != nil {
		return err
	}

	seeded := make(map[string]bool, len(doc))
	for subjectID, links := range doc {
		seeded[subjectID] = len(links) > 0
	}

	changed := false
	for _, sample := range samples {
		if seeded[sample.subjectID] {
			continue
		}
		doc[sample.subjectID] = append(doc[sample.subjectID], models.CommunityLink{
			ID:        uuid.New(),
			SubjectID: sample.subjectID,
			Title:     sample.title,
			URL:       sample.url,
			CreatedBy: "admin",
			CreatedAt: time.Now().UTC(),
			Status:    sample.status,
		})
		changed = true
	}

	if !changed {
		return nil
	}
	return s.writeDocument(ctx, doc)
}
