package entities

import "errors"

var (
	// ErrNotIssuePage is returned when the URL is not a Drupal.org issue page.
	ErrNotIssuePage = errors.New("not a drupal.org issue page")
	// ErrPermissionDenied is returned when page access is not granted for the URL origin.
	ErrPermissionDenied = errors.New("page access not granted")
	// ErrExtraction is returned when reading the page DOM failed unexpectedly.
	ErrExtraction = errors.New("page extraction failed")
	// ErrTransport is returned when no page-access strategy produced a result.
	ErrTransport = errors.New("could not read page")
	// ErrResolver is returned when the project type lookup failed.
	ErrResolver = errors.New("project type lookup failed")
	// ErrValidation is returned when launch parameters are missing or malformed.
	ErrValidation = errors.New("invalid launch parameters")
)

// Warning identifies a user-facing guidance message.
type Warning string

const (
	WarningNotIssuePage       Warning = "not-issue-page-instructions"
	WarningSomethingWentWrong Warning = "something-went-wrong-instructions"
	WarningNotLoggedIn        Warning = "not-logged-in-instructions"
	WarningNoIssueFork        Warning = "no-issue-fork-instructions"
	WarningNoPushAccess       Warning = "no-push-access-instructions"
)

// Message returns the text shown to the user for the warning.
func (w Warning) Message() string {
	switch w {
	case WarningNotIssuePage:
		return "DrupalPod only runs on Drupal.org issue pages " +
			"(https://www.drupal.org/project/<project>/issues/<id>)."
	case WarningNotLoggedIn:
		return "You are not logged in to Drupal.org. Log in to create an issue fork and push changes."
	case WarningNoIssueFork:
		return "No issue fork was found. Create one on the issue page to work on a branch."
	case WarningNoPushAccess:
		return "You don't have push access to the issue fork. Click \"Get push access\" on the issue page."
	case WarningSomethingWentWrong:
		return "Something went wrong while reading the issue page."
	default:
		return string(w)
	}
}

// WarningFor maps a halting pipeline error to the warning shown for it.
func WarningFor(err error) Warning {
	if errors.Is(err, ErrNotIssuePage) {
		return WarningNotIssuePage
	}
	return WarningSomethingWentWrong
}
