package entities

import (
	"fmt"
	"slices"
)

// FormView is everything the form presenter renders for one issue.
type FormView struct {
	Warnings        []Warning
	ProjectName     string
	IssueFork       string
	ModuleVersion   string
	Branches        []string
	CoreVersions    []string
	InstallProfiles []string
	Patches         []string
	ProjectType     *PendingProjectType
}

// FormSelection holds the user's choices for the four selection lists.
// Empty fields mean "use the first option".
type FormSelection struct {
	IssueBranch    string
	CoreVersion    string
	InstallProfile string
	PatchFile      string
}

// Defaults returns the selection a form shows before the user changes anything.
func (v *FormView) Defaults() FormSelection {
	return FormSelection{
		IssueBranch:    first(v.Branches),
		CoreVersion:    first(v.CoreVersions),
		InstallProfile: first(v.InstallProfiles),
		PatchFile:      first(v.Patches),
	}
}

// Apply fills unset fields with defaults and checks every value is one of the
// offered options.
func (v *FormView) Apply(selection FormSelection) (FormSelection, error) {
	defaults := v.Defaults()
	fields := []struct {
		name    string
		value   *string
		def     string
		options []string
	}{
		{"issue branch", &selection.IssueBranch, defaults.IssueBranch, v.Branches},
		{"core version", &selection.CoreVersion, defaults.CoreVersion, v.CoreVersions},
		{"install profile", &selection.InstallProfile, defaults.InstallProfile, v.InstallProfiles},
		{"patch file", &selection.PatchFile, defaults.PatchFile, v.Patches},
	}
	for _, f := range fields {
		if *f.value == "" {
			*f.value = f.def
			continue
		}
		if !slices.Contains(f.options, *f.value) {
			return FormSelection{}, fmt.Errorf("%w: %s %q is not offered on this issue", ErrValidation, f.name, *f.value)
		}
	}
	return selection, nil
}

// LaunchRequest snapshots the view and a selection for the launcher.
func (v *FormView) LaunchRequest(selection FormSelection, projectType string) LaunchRequest {
	return LaunchRequest{
		ProjectName:    v.ProjectName,
		IssueFork:      v.IssueFork,
		IssueBranch:    selection.IssueBranch,
		ProjectType:    projectType,
		ModuleVersion:  v.ModuleVersion,
		CoreVersion:    selection.CoreVersion,
		PatchFile:      selection.PatchFile,
		InstallProfile: selection.InstallProfile,
	}
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
