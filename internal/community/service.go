// Package community implements the link submission, visibility, moderation
// and deletion rules of the dashboard.
package community

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"campuslinks/internal/email"
	"campuslinks/internal/metrics"
	"campuslinks/internal/models"
	"campuslinks/internal/moderation"
	"campuslinks/internal/store"
	"campuslinks/internal/validation"
)

// ErrForbidden signals the caller lacks rights for the requested action.
// Authorization failures are decided before any store mutation.
var ErrForbidden = errors.New("forbidden")

// ModerationAction is a moderator's decision on a pending link.
type ModerationAction string

const (
	ActionApprove ModerationAction = "approve"
	ActionReject  ModerationAction = "reject"
)

// Service wires the link store, user-state store and moderation policy into
// the operations the API layer exposes.
type Service struct {
	links    *store.LinkStore
	users    *store.UserStateStore
	policy   *moderation.Policy
	notifier *email.Notifier
}

// NewService creates the community service. notifier may be nil.
func NewService(links *store.LinkStore, users *store.UserStateStore, policy *moderation.Policy, notifier *email.Notifier) *Service {
	return &Service{links: links, users: users, policy: policy, notifier: notifier}
}

// SubmitLinkInput carries the boundary-validated fields of a submission.
type SubmitLinkInput struct {
	SubjectID   string
	Title       string
	URL         string
	Description string
	Submitter   string
}

// SubmitLink stores a new link in the pending state, owned by the
// normalized submitter identity.
func (s *Service) SubmitLink(ctx context.Context, in SubmitLinkInput) (models.CommunityLink, error) {
	link := models.CommunityLink{
		ID:          uuid.New(),
		SubjectID:   in.SubjectID,
		Title:       in.Title,
		URL:         in.URL,
		Description: in.Description,
		CreatedBy:   validation.NormalizeIdentity(in.Submitter),
		CreatedAt:   time.Now().UTC(),
		Status:      models.StatusPending,
	}

	stored, err := s.links.Append(ctx, in.SubjectID, link)
	if err != nil {
		return models.CommunityLink{}, err
	}

	metrics.RecordSubmission()
	if s.notifier != nil {
		s.notifier.NotifyModeratorsLinkSubmitted(stored)
	}
	return stored, nil
}

// VisibleLinks returns, per requested subject, the links the viewer may see:
// approved links, plus the viewer's own pending submissions.
func (s *Service) VisibleLinks(ctx context.Context, subjectIDs []string, viewer string) (map[string][]models.CommunityLink, error) {
	viewerID := validation.NormalizeIdentity(viewer)

	result := make(map[string][]models.CommunityLink, len(subjectIDs))
	for _, subjectID := range subjectIDs {
		links, err := s.links.ReadAll(ctx, subjectID)
		if err != nil {
			return nil, err
		}
		result[subjectID] = visibleTo(viewerID, links)
	}
	return result, nil
}

// visibleTo filters a subject's link sequence for a viewer. The viewer
// identity must already be normalized.
func visibleTo(viewer string, links []models.CommunityLink) []models.CommunityLink {
	visible := make([]models.CommunityLink, 0, len(links))
	for _, link := range links {
		if link.IsApproved() {
			visible = append(visible, link)
			continue
		}
		if link.IsPending() && viewer != "" && validation.NormalizeIdentity(link.CreatedBy) == viewer {
			visible = append(visible, link)
		}
	}
	return visible
}

// ListPending returns every pending link across all subjects.
// Only moderators may read the queue.
func (s *Service) ListPending(ctx context.Context, requester string) ([]models.PendingLink, error) {
	if !s.policy.IsModerator(requester) {
		return nil, ErrForbidden
	}
	return s.links.ListPending(ctx)
}

// Moderate applies a moderator decision to a pending link. Approval records
// who moderated and when; rejection removes the link entirely. Approving an
// already-approved link is a no-op so the original moderation record is
// never overwritten.
func (s *Service) Moderate(ctx context.Context, subjectID string, linkID uuid.UUID, requester string, action ModerationAction) error {
	if !s.policy.IsModerator(requester) {
		return ErrForbidden
	}

	link, err := s.links.FindByID(ctx, subjectID, linkID)
	if err != nil {
		return err
	}

	switch action {
	case ActionApprove:
		if link.IsApproved() {
			return nil
		}
		moderator := validation.NormalizeIdentity(requester)
		if err := s.links.UpdateModerationFields(ctx, subjectID, linkID, models.StatusApproved, moderator, time.Now().UTC()); err != nil {
			return err
		}
		metrics.RecordModeration(string(ActionApprove))
		if s.notifier != nil {
			s.notifier.NotifyLinkApproved(*link, moderator)
		}
		return nil
	case ActionReject:
		if err := s.links.Remove(ctx, subjectID, linkID); err != nil {
			return err
		}
		metrics.RecordModeration(string(ActionReject))
		if s.notifier != nil {
			s.notifier.NotifyLinkRejected(*link)
		}
		return nil
	default:
		return ErrForbidden
	}
}

// DeleteLink removes a link if the requester is authorized: moderators may
// delete anything, owners only their own still-pending submissions.
func (s *Service) DeleteLink(ctx context.Context, subjectID string, linkID uuid.UUID, requester string) error {
	link, err := s.links.FindByID(ctx, subjectID, linkID)
	if err != nil {
		if errors.Is(err, store.ErrLinkNotFound) {
			metrics.RecordDelete("not_found")
		}
		return err
	}

	if err := s.authorizeDelete(requester, link); err != nil {
		metrics.RecordDelete("forbidden")
		return err
	}

	if err := s.links.Remove(ctx, subjectID, linkID); err != nil {
		return err
	}
	metrics.RecordDelete("ok")
	return nil
}

// authorizeDelete evaluates the delete policy in order: moderators are
// always allowed; a non-empty owner must match the requester; owners may
// only retract links that are still pending. A link with no recorded owner
// is a legacy record and stays deletable by any requester while pending.
func (s *Service) authorizeDelete(requester string, link *models.CommunityLink) error {
	if s.policy.IsModerator(requester) {
		return nil
	}

	requesterID := validation.NormalizeIdentity(requester)
	owner := validation.NormalizeIdentity(link.CreatedBy)
	if owner != "" && owner != requesterID {
		return ErrForbidden
	}

	if !link.IsPending() {
		return ErrForbidden
	}
	return nil
}

// GetUserState returns the dashboard state for a normalized identity,
// defaulting to empty when none exists.
func (s *Service) GetUserState(ctx context.Context, identity string) (models.UserState, error) {
	return s.users.Get(ctx, validation.NormalizeIdentity(identity))
}

// SaveUserState overwrites the dashboard state for a normalized identity.
func (s *Service) SaveUserState(ctx context.Context, identity string, activeSubjects []string) (models.UserState, error) {
	return s.users.Save(ctx, validation.NormalizeIdentity(identity), activeSubjects)
}
