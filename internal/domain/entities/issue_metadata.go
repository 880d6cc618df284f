package entities

import (
	"regexp"
	"strings"
)

const devSuffix = "-dev"

var patchPattern = regexp.MustCompile(`^https://www\.drupal\.org/files/issues/.*\.patch$`)

// PageSnapshot holds the raw facts read from an issue page. Every page-access
// strategy produces one, so normalisation happens in a single place.
type PageSnapshot struct {
	Path          string   `json:"path"`
	IssueFork     string   `json:"issueFork"`
	Branches      []string `json:"branches"`
	Hrefs         []string `json:"hrefs"`
	VersionText   string   `json:"versionText"`
	LoggedIn      bool     `json:"loggedIn"`
	PushAccess    bool     `json:"pushAccess"`
	ExtractionErr string   `json:"error,omitempty"`
}

// IssueMetadata is the structured record extracted from a Drupal.org issue page.
type IssueMetadata struct {
	Success          bool     `json:"success"`
	ProjectName      string   `json:"projectName"`
	ProjectType      string   `json:"projectType,omitempty"`
	IssueFork        string   `json:"issueFork,omitempty"`
	AvailablePatches []string `json:"availablePatches"`
	IssueBranches    []string `json:"issueBranches"`
	ModuleVersion    string   `json:"moduleVersion"`
	LoggedIn         bool     `json:"loggedIn"`
	PushAccess       bool     `json:"pushAccess"`
}

// NewIssueMetadata normalises a snapshot into IssueMetadata. The project type
// is left empty; it is resolved separately.
func NewIssueMetadata(snapshot PageSnapshot) *IssueMetadata {
	return &IssueMetadata{
		Success:          true,
		ProjectName:      ProjectNameFromPath(snapshot.Path),
		IssueFork:        strings.TrimSpace(snapshot.IssueFork),
		AvailablePatches: PatchesFromLinks(snapshot.Hrefs),
		IssueBranches:    withSentinel(snapshot.Branches),
		ModuleVersion:    ModuleVersionFromText(snapshot.VersionText),
		LoggedIn:         snapshot.LoggedIn,
		PushAccess:       snapshot.PushAccess,
	}
}

// HasFork reports whether an issue fork was detected on the page.
// The extension used to serialise a missing fork as "false".
func (m *IssueMetadata) HasFork() bool {
	return m.IssueFork != "" && m.IssueFork != "false"
}

// PatchesFromLinks deduplicates hrefs (first occurrence wins), keeps only
// Drupal.org issue patch files and prepends the "no patch" sentinel.
func PatchesFromLinks(hrefs []string) []string {
	patches := make([]string, 0, len(hrefs)+1)
	patches = append(patches, "")
	for _, href := range Dedupe(hrefs) {
		if patchPattern.MatchString(href) {
			patches = append(patches, href)
		}
	}
	return patches
}

// ModuleVersionFromText trims the version label and strips a trailing "-dev".
func ModuleVersionFromText(text string) string {
	return strings.TrimSuffix(strings.TrimSpace(text), devSuffix)
}

// Dedupe returns values without duplicates, in order of first occurrence.
func Dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

func withSentinel(values []string) []string {
	result := make([]string, 0, len(values)+1)
	result = append(result, "")
	for _, v := range Dedupe(values) {
		if v == "" {
			continue
		}
		result = append(result, v)
	}
	return result
}
