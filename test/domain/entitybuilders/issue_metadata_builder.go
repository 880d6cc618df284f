//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

// IssueMetadataBuilder helps create test issue metadata with a fluent interface.
type IssueMetadataBuilder struct {
	*testkit.BaseBuilder
	projectName   string
	projectType   string
	issueFork     string
	patches       []string
	branches      []string
	moduleVersion string
	loggedIn      bool
	pushAccess    bool
}

// NewIssueMetadataBuilder creates a builder for a logged-in user with push
// access to an issue fork.
func NewIssueMetadataBuilder() *IssueMetadataBuilder {
	b := &IssueMetadataBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.defaults()
	return b
}

func (b *IssueMetadataBuilder) defaults() {
	b.projectName = "token"
	b.projectType = ""
	b.issueFork = "token-3312345"
	b.patches = []string{""}
	b.branches = []string{"", "3312345-fix-tokens"}
	b.moduleVersion = "8.x-1.x"
	b.loggedIn = true
	b.pushAccess = true
}

// WithProjectName sets the project machine name.
func (b *IssueMetadataBuilder) WithProjectName(name string) *IssueMetadataBuilder {
	b.projectName = name
	return b
}

// WithProjectType presets the project type.
func (b *IssueMetadataBuilder) WithProjectType(projectType string) *IssueMetadataBuilder {
	b.projectType = projectType
	return b
}

// WithIssueFork sets the issue fork name.
func (b *IssueMetadataBuilder) WithIssueFork(fork string) *IssueMetadataBuilder {
	b.issueFork = fork
	return b
}

// WithPatches sets the patch list, including the leading "" sentinel.
func (b *IssueMetadataBuilder) WithPatches(patches ...string) *IssueMetadataBuilder {
	b.patches = patches
	return b
}

// WithBranches sets the branch list, including the leading "" sentinel.
func (b *IssueMetadataBuilder) WithBranches(branches ...string) *IssueMetadataBuilder {
	b.branches = branches
	return b
}

// WithModuleVersion sets the module version.
func (b *IssueMetadataBuilder) WithModuleVersion(version string) *IssueMetadataBuilder {
	b.moduleVersion = version
	return b
}

// WithLoggedIn sets the logged-in flag.
func (b *IssueMetadataBuilder) WithLoggedIn(loggedIn bool) *IssueMetadataBuilder {
	b.loggedIn = loggedIn
	return b
}

// WithPushAccess sets the push-access flag.
func (b *IssueMetadataBuilder) WithPushAccess(pushAccess bool) *IssueMetadataBuilder {
	b.pushAccess = pushAccess
	return b
}

// Build creates the metadata (satisfies testkit.Builder interface).
func (b *IssueMetadataBuilder) Build() interface{} {
	return b.BuildIssueMetadata()
}

// BuildIssueMetadata creates the metadata with a concrete return type.
func (b *IssueMetadataBuilder) BuildIssueMetadata() *entities.IssueMetadata {
	return &entities.IssueMetadata{
		Success:          true,
		ProjectName:      b.projectName,
		ProjectType:      b.projectType,
		IssueFork:        b.issueFork,
		AvailablePatches: append([]string(nil), b.patches...),
		IssueBranches:    append([]string(nil), b.branches...),
		ModuleVersion:    b.moduleVersion,
		LoggedIn:         b.loggedIn,
		PushAccess:       b.pushAccess,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *IssueMetadataBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.defaults()
	return b
}

// Clone creates a deep copy of the IssueMetadataBuilder.
func (b *IssueMetadataBuilder) Clone() testkit.Builder {
	return &IssueMetadataBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		projectName:   b.projectName,
		projectType:   b.projectType,
		issueFork:     b.issueFork,
		patches:       append([]string(nil), b.patches...),
		branches:      append([]string(nil), b.branches...),
		moduleVersion: b.moduleVersion,
		loggedIn:      b.loggedIn,
		pushAccess:    b.pushAccess,
	}
}
