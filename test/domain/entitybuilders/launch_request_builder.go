//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

// LaunchRequestBuilder helps create launch requests with a fluent interface.
type LaunchRequestBuilder struct {
	*testkit.BaseBuilder
	request entities.LaunchRequest
}

func defaultLaunchRequest() entities.LaunchRequest {
	return entities.LaunchRequest{
		ProjectName:    "token",
		IssueFork:      "token-3312345",
		IssueBranch:    "3312345-fix-tokens",
		ProjectType:    "project_module",
		ModuleVersion:  "8.x-1.x",
		CoreVersion:    "11.x",
		PatchFile:      "",
		InstallProfile: "standard",
	}
}

// NewLaunchRequestBuilder creates a builder with a valid request.
func NewLaunchRequestBuilder() *LaunchRequestBuilder {
	return &LaunchRequestBuilder{BaseBuilder: testkit.NewBaseBuilder(), request: defaultLaunchRequest()}
}

// WithProjectName sets the project name.
func (b *LaunchRequestBuilder) WithProjectName(name string) *LaunchRequestBuilder {
	b.request.ProjectName = name
	return b
}

// WithProjectType sets the project type.
func (b *LaunchRequestBuilder) WithProjectType(projectType string) *LaunchRequestBuilder {
	b.request.ProjectType = projectType
	return b
}

// WithIssueFork sets the issue fork.
func (b *LaunchRequestBuilder) WithIssueFork(fork string) *LaunchRequestBuilder {
	b.request.IssueFork = fork
	return b
}

// WithIssueBranch sets the issue branch.
func (b *LaunchRequestBuilder) WithIssueBranch(branch string) *LaunchRequestBuilder {
	b.request.IssueBranch = branch
	return b
}

// WithModuleVersion sets the module version.
func (b *LaunchRequestBuilder) WithModuleVersion(version string) *LaunchRequestBuilder {
	b.request.ModuleVersion = version
	return b
}

// WithCoreVersion sets the core version.
func (b *LaunchRequestBuilder) WithCoreVersion(version string) *LaunchRequestBuilder {
	b.request.CoreVersion = version
	return b
}

// WithPatchFile sets the patch URL.
func (b *LaunchRequestBuilder) WithPatchFile(patch string) *LaunchRequestBuilder {
	b.request.PatchFile = patch
	return b
}

// WithInstallProfile sets the install profile.
func (b *LaunchRequestBuilder) WithInstallProfile(profile string) *LaunchRequestBuilder {
	b.request.InstallProfile = profile
	return b
}

// Build creates the request (satisfies testkit.Builder interface).
func (b *LaunchRequestBuilder) Build() interface{} {
	return b.BuildLaunchRequest()
}

// BuildLaunchRequest creates the request with a concrete return type.
func (b *LaunchRequestBuilder) BuildLaunchRequest() entities.LaunchRequest {
	return b.request
}

// Reset clears the builder state, allowing it to be reused.
func (b *LaunchRequestBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.request = defaultLaunchRequest()
	return b
}

// Clone creates a copy of the LaunchRequestBuilder.
func (b *LaunchRequestBuilder) Clone() testkit.Builder {
	return &LaunchRequestBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		request:     b.request,
	}
}
