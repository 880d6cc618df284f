// Package dom extracts issue metadata from a parsed Drupal.org issue page.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

const (
	forkLinkSelector     = ".fork-link"
	branchesSelector     = ".branches"
	issueVersionSelector = ".field-name-field-issue-version"
	branchAttribute      = "data-branch"
	versionChildIndex    = 1
)

// Markers holds the selectors used for login and push-access presence checks.
type Markers struct {
	LoggedIn   []string
	PushAccess string
}

// MarkersFromSettings returns the marker selectors configured in settings.
func MarkersFromSettings(settings *entities.Settings) Markers {
	return Markers{
		LoggedIn:   settings.Markers.LoggedIn,
		PushAccess: settings.Markers.PushAccess,
	}
}

// ExtractFrom parses an HTML document and returns its issue metadata.
// path is the URL path the document was served from.
func ExtractFrom(r io.Reader, path string, markers Markers) (*entities.IssueMetadata, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	snapshot, err := Snapshot(root, path, markers)
	if err != nil {
		return &entities.IssueMetadata{Success: false}, err
	}
	return entities.NewIssueMetadata(snapshot), nil
}

// Snapshot collects the raw page facts. Missing containers degrade to empty
// values; only a failure while walking the tree is reported as an error.
func Snapshot(root *html.Node, path string, markers Markers) (snapshot entities.PageSnapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", entities.ErrExtraction, r)
		}
	}()

	doc := goquery.NewDocumentFromNode(root)

	snapshot = entities.PageSnapshot{
		Path:        path,
		IssueFork:   strings.TrimSpace(doc.Find(forkLinkSelector).First().Text()),
		Branches:    branches(doc),
		Hrefs:       hrefs(doc),
		VersionText: versionText(doc),
		LoggedIn:    anyPresent(doc, markers.LoggedIn),
		PushAccess:  markers.PushAccess != "" && doc.Find(markers.PushAccess).Length() > 0,
	}

	return snapshot, nil
}

func branches(doc *goquery.Document) []string {
	var result []string
	doc.Find(branchesSelector).First().Children().Each(func(_ int, s *goquery.Selection) {
		if branch, ok := s.Attr(branchAttribute); ok {
			result = append(result, branch)
		}
	})
	return result
}

func hrefs(doc *goquery.Document) []string {
	var result []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		result = append(result, href)
	})
	return result
}

func versionText(doc *goquery.Document) string {
	child := doc.Find(issueVersionSelector).First().Children().Eq(versionChildIndex)
	return strings.TrimSpace(child.Text())
}

func anyPresent(doc *goquery.Document, selectors []string) bool {
	for _, selector := range selectors {
		if doc.Find(selector).Length() > 0 {
			return true
		}
	}
	return false
}
