package email

import (
	"fmt"
	"strings"

	"campuslinks/internal/models"
)

// Notifier sends email notifications for moderation events. Identities in
// this system are normalized email addresses; anything without an "@" (for
// example the built-in "admin" moderator) is skipped.
type Notifier struct {
	service    *Service
	moderators []string
}

// NewNotifier creates a new email notifier for the given moderator list.
func NewNotifier(service *Service, moderators []string) *Notifier {
	return &Notifier{service: service, moderators: moderators}
}

func mailable(identities ...string) []string {
	var out []string
	for _, id := range identities {
		if strings.Contains(id, "@") {
			out = append(out, id)
		}
	}
	return out
}

// NotifyModeratorsLinkSubmitted notifies moderators that a link needs review.
func (n *Notifier) NotifyModeratorsLinkSubmitted(link models.CommunityLink) {
	if !n.service.IsEnabled() {
		return
	}

	to := mailable(n.moderators...)
	if len(to) == 0 {
		return
	}

	subject := fmt.Sprintf("New link pending review: %s", link.Title)
	body := fmt.Sprintf(
		"A new community link is awaiting moderation.\n\nSubject: %s\nTitle: %s\nURL: %s\nSubmitted by: %s\n",
		link.SubjectID, link.Title, link.URL, link.CreatedBy,
	)
	n.service.SendAsync(to, subject, body)
}

// NotifyLinkApproved notifies the submitter that their link was published.
func (n *Notifier) NotifyLinkApproved(link models.CommunityLink, moderator string) {
	if !n.service.IsEnabled() {
		return
	}

	to := mailable(link.CreatedBy)
	if len(to) == 0 {
		return
	}

	subject := fmt.Sprintf("Your link was approved: %s", link.Title)
	body := fmt.Sprintf(
		"Your community link for %s was approved by %s and is now visible to everyone.\n\nTitle: %s\nURL: %s\n",
		link.SubjectID, moderator, link.Title, link.URL,
	)
	n.service.SendAsync(to, subject, body)
}

// NotifyLinkRejected notifies the submitter that their link was rejected.
func (n *Notifier) NotifyLinkRejected(link models.CommunityLink) {
	if !n.service.IsEnabled() {
		return
	}

	to := mailable(link.CreatedBy)
	if len(to) == 0 {
		return
	}

	subject := fmt.Sprintf("Your link was not approved: %s", link.Title)
	body := fmt.Sprintf(
		"Your community link for %s was reviewed and not approved.\n\nTitle: %s\nURL: %s\n",
		link.SubjectID, link.Title, link.URL,
	)
	n.service.SendAsync(to, subject, body)
}
