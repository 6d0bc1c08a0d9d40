package validation

import (
	"net/url"
	"regexp"
	"strings"
)

// SubjectIDPattern defines the valid subject identifier format:
// alphanumeric, hyphens, underscores.
var SubjectIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateSubjectID checks if a subject identifier matches the allowed pattern.
func ValidateSubjectID(id string) bool {
	if id == "" || len(id) > 100 {
		return false
	}
	return SubjectIDPattern.MatchString(id)
}

// NormalizeIdentity canonicalizes a caller-supplied identity string so
// identity comparisons are consistent. The empty result means
// "unauthenticated" and must never be treated as a valid owner or moderator.
func NormalizeIdentity(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateTitle checks a link title is non-empty after trimming and not
// unreasonably long.
func ValidateTitle(title string) bool {
	title = strings.TrimSpace(title)
	return title != "" && len(title) <= 200
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// This prevents javascript:, data:, vbscript:, and other dangerous URL schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	// Check scheme - only allow http and https
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	// Ensure host is present
	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
