package entities

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// GitpodBaseURL is the prefix every launch URL starts with.
	GitpodBaseURL = "https://gitpod.io/#"
	// NoInstallProfile is the install profile sentinel meaning "no profile".
	NoInstallProfile = "(none)"

	emptyProfileToken = "''"
	forbiddenChars    = "\"`\\"
)

// LaunchRequest is an immutable snapshot of the form at submit time.
type LaunchRequest struct {
	ProjectName    string
	IssueFork      string
	IssueBranch    string
	ProjectType    string
	ModuleVersion  string
	CoreVersion    string
	PatchFile      string
	InstallProfile string
}

// Tokens returns the eight KEY=value components in launch order.
func (r LaunchRequest) Tokens() []string {
	profile := r.InstallProfile
	if profile == NoInstallProfile {
		profile = emptyProfileToken
	}
	fork := r.IssueFork
	if fork == "false" {
		fork = ""
	}

	return []string{
		"DP_PROJECT_NAME=" + r.ProjectName,
		"DP_ISSUE_FORK=" + fork,
		"DP_ISSUE_BRANCH=" + EncodeURIComponent(r.IssueBranch),
		"DP_PROJECT_TYPE=" + r.ProjectType,
		"DP_MODULE_VERSION=" + r.ModuleVersion,
		"DP_CORE_VERSION=" + r.CoreVersion,
		"DP_PATCH_FILE=" + EncodeURIComponent(r.PatchFile),
		"DP_INSTALL_PROFILE=" + profile,
	}
}

// Validate checks required values and rejects characters that would break
// the destination URL.
func (r LaunchRequest) Validate() error {
	required := []struct{ name, value string }{
		{"project name", r.ProjectName},
		{"project type", r.ProjectType},
		{"module version", r.ModuleVersion},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, field.name)
		}
	}

	for _, token := range r.Tokens() {
		if strings.ContainsAny(token, forbiddenChars) {
			return fmt.Errorf("%w: %q contains a forbidden character", ErrValidation, token)
		}
	}
	return nil
}

// BuildGitpodURL validates the request and assembles the launch URL.
func BuildGitpodURL(r LaunchRequest, repoURL string) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	return GitpodBaseURL + strings.Join(r.Tokens(), ",") + "/" + repoURL, nil
}

// EncodeURIComponent escapes s the way JavaScript's encodeURIComponent does:
// everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ) is percent-encoded.
func EncodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	return strings.NewReplacer(
		"+", "%20",
		"%21", "!",
		"%27", "'",
		"%28", "(",
		"%29", ")",
		"%2A", "*",
	).Replace(escaped)
}
