package models

// Subject is a catalog entry. The moderation core treats subject IDs as
// opaque keys; only the catalog handler serves these.
type Subject struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Degree   string        `json:"degree"`
	Semester int           `json:"semester"`
	Links    []DefaultLink `json:"links,omitempty"`
}

// DefaultLink is a curated resource shipped with the catalog, as opposed
// to a community-submitted one.
type DefaultLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
