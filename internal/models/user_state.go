package models

import "time"

// UserState is the per-identity dashboard state: the set of subjects the
// user has marked active. Saved as a whole; never merged.
type UserState struct {
	ActiveSubjects []string  `json:"active_subjects"`
	UpdatedAt      time.Time `json:"updated_at"`
}
