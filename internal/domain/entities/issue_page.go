package entities

import (
	"net/url"
	"regexp"
	"strings"
)

const projectPathIndex = 2

// issuePagePattern is deliberately unanchored, matching the extension's check.
var issuePagePattern = regexp.MustCompile(`(https://www.drupal.org/project/)\w+(/issues/)\d+`)

// IsIssuePage reports whether rawURL points at a Drupal.org project issue.
func IsIssuePage(rawURL string) bool {
	return issuePagePattern.MatchString(rawURL)
}

// ProjectNameFromPath returns the third segment of a URL path split on "/",
// i.e. "views" for "/project/views/issues/1234567".
func ProjectNameFromPath(path string) string {
	segments := strings.Split(path, "/")
	if len(segments) <= projectPathIndex {
		return ""
	}
	return segments[projectPathIndex]
}

// Origin returns scheme://host for rawURL, or "" when it cannot be parsed.
func Origin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
