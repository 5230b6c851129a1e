package errors

import (
	"fmt"
	"strings"
)

// NotFoundError creates an error for a class or interface missing from the descriptor
func NotFoundError(name string) *BaseError {
	return Newf(NotFoundErrorCode, "%s not found", name).
		WithContext("name", name).
		WithSuggestion("Use the fully qualified name, e.g. android.app.Activity")
}

// VersionError reports a class or interface that cannot be used in the SDK range
type VersionError struct {
	*BaseError
	Element string // fully qualified type name
	Version int    // version attribute that triggered the error
}

// NewUnavailableError is returned when a type is added after minSdk or deprecated by targetSdk.
// attribute is "added" or "deprecated".
func NewUnavailableError(element, attribute string, version int) *VersionError {
	var message string
	if attribute == "added" {
		message = fmt.Sprintf("%s not available in minSdkVersion, added in %d", element, version)
	} else {
		message = fmt.Sprintf("%s deprecated for targetSdkVersion, deprecated in %d", element, version)
	}
	return &VersionError{
		BaseError: New(VersionUnavailableErrorCode, message).
			WithContext("element", element).
			WithContext(attribute, version).
			WithSuggestion("use --force to create it"),
		Element: element,
		Version: version,
	}
}

// NewRemovedError is returned when a type no longer exists at targetSdk
func NewRemovedError(element string, version int) *VersionError {
	return &VersionError{
		BaseError: Newf(RemovedErrorCode, "%s removed for targetSdkVersion, removed in %d", element, version).
			WithContext("element", element).
			WithContext("removed", version),
		Element: element,
		Version: version,
	}
}

// Conflict describes one method dropped by mid-range conflict detection
type Conflict struct {
	Method    string // display signature
	Attribute string // "added" or "deprecated"
	Version   int
}

func (c Conflict) String() string {
	return fmt.Sprintf("Can't create %s -- %s in %d -- exclude or force", c.Method, c.Attribute, c.Version)
}

// ConflictError aborts a generation when methods change inside the SDK range
type ConflictError struct {
	*BaseError
	Conflicts []Conflict
}

// NewConflictError creates the abort error for a set of conflicting methods
func NewConflictError(conflicts []Conflict) *ConflictError {
	names := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		names = append(names, c.Method)
	}
	return &ConflictError{
		BaseError: Newf(VersionConflictErrorCode, "Aborting! %d method(s) change within the SDK range", len(conflicts)).
			WithContext("methods", names).
			WithSuggestions(
				"Pass --force to generate them anyway",
				"Exclude the methods with --method-exclude",
				"Raise minSdkVersion or lower targetSdkVersion",
			),
		Conflicts: conflicts,
	}
}

// SyntaxError reports an unparseable method signature
type SyntaxError struct {
	*BaseError
	Input string
}

// NewSyntaxError creates a signature syntax error
func NewSyntaxError(input string, cause error) *SyntaxError {
	return &SyntaxError{
		BaseError: Wrap(SyntaxErrorCode, fmt.Sprintf("invalid method signature %q", input), cause),
		Input:     input,
	}
}

// GenerationError wraps a failure in one stage of a generation unit
type GenerationError struct {
	*BaseError
	Target string // class or interface being generated
	Stage  string // lookup, filter, synthesize or render
}

// WrapGenerationError wraps the cause with the target and stage it failed in
func WrapGenerationError(target, stage string, cause error) *GenerationError {
	return &GenerationError{
		BaseError: Wrap(GenerationErrorCode, fmt.Sprintf("failed to generate %s (%s)", target, stage), cause).
			WithContext("target", target).
			WithContext("stage", stage),
		Target: target,
		Stage:  stage,
	}
}

// Suggestions returns the wrapped error's suggestions so they reach the reporter
func (e *GenerationError) Suggestions() []string {
	if ge, ok := e.Cause.(GenError); ok {
		return append(ge.Suggestions(), e.Hints...)
	}
	return e.Hints
}

// ConflictsOf extracts the conflicting methods from anywhere in the error chain
func ConflictsOf(err error) []Conflict {
	for err != nil {
		if ce, ok := err.(*ConflictError); ok {
			return ce.Conflicts
		}
		if m, ok := err.(*MultipleErrors); ok {
			var all []Conflict
			for _, e := range m.Errors {
				all = append(all, ConflictsOf(e)...)
			}
			return all
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = u.Unwrap()
	}
	return nil
}

// Summary renders the conflicts as the per-method lines shown to the user
func (e *ConflictError) Summary() string {
	lines := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n")
}
