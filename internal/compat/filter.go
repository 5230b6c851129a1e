// Package compat decides which API elements can be used across a min/target SDK range.
package compat

import (
	"github.com/ruboto/rubotogen/internal/errors"
	"github.com/ruboto/rubotogen/internal/models"
)

// Reporter receives the per-method diagnostics as they are produced
type Reporter interface {
	Warn(format string, args ...interface{})
}

// Filter partitions methods into usable, excluded and conflicting for one SDK range
type Filter struct {
	request  models.FilterRequest
	reporter Reporter
}

// NewFilter creates a filter; reporter may be nil
func NewFilter(request models.FilterRequest, reporter Reporter) *Filter {
	return &Filter{request: request, reporter: reporter}
}

// Methods runs scope pruning, removed-at-target reporting and, unless forced,
// mid-range conflict detection. Any conflict aborts with a *errors.ConflictError;
// the result is still returned so callers can inspect every exclusion.
func (f *Filter) Methods(methods []models.ApiElement) (*models.MethodSelectionResult, error) {
	if err := f.request.Validate(); err != nil {
		return nil, err
	}
	minSDK, targetSDK := f.request.MinSDK, f.request.TargetSDK
	result := &models.MethodSelectionResult{}

	// Changes outside of the supported range are irrelevant and dropped silently
	var scoped []models.ApiElement
	for _, m := range methods {
		if after(m.APIAdded, targetSDK) || atOrBefore(m.DeprecatedAt, minSDK) || atOrBefore(m.APIRemoved, minSDK) {
			continue
		}
		scoped = append(scoped, m)
	}

	var present []models.ApiElement
	for _, m := range scoped {
		if atOrBefore(m.APIRemoved, targetSDK) {
			f.exclude(result, m, models.ReasonRemovedBeforeTarget, *m.APIRemoved)
			continue
		}
		present = append(present, m)
	}

	if f.request.Force {
		result.Methods = present
		return result, nil
	}

	var conflicts []errors.Conflict
	for _, m := range present {
		switch {
		case after(m.APIAdded, minSDK):
			f.exclude(result, m, models.ReasonAddedAfterMin, *m.APIAdded)
			conflicts = append(conflicts, errors.Conflict{Method: m.Signature(), Attribute: "added", Version: *m.APIAdded})
		case atOrBefore(m.DeprecatedAt, targetSDK):
			f.exclude(result, m, models.ReasonDeprecatedBeforeTarget, *m.DeprecatedAt)
			conflicts = append(conflicts, errors.Conflict{Method: m.Signature(), Attribute: "deprecated", Version: *m.DeprecatedAt})
		default:
			result.Methods = append(result.Methods, m)
		}
	}

	if len(conflicts) > 0 {
		return result, errors.NewConflictError(conflicts)
	}
	return result, nil
}

// Element checks a class or interface itself. Without force it must exist at
// minSdk and not be deprecated by targetSdk; it must never be removed by targetSdk.
func (f *Filter) Element(element *models.ApiElement) error {
	if err := f.request.Validate(); err != nil {
		return err
	}
	if !f.request.Force {
		if after(element.APIAdded, f.request.MinSDK) {
			return errors.NewUnavailableError(element.Name, "added", *element.APIAdded)
		}
		if atOrBefore(element.DeprecatedAt, f.request.TargetSDK) {
			return errors.NewUnavailableError(element.Name, "deprecated", *element.DeprecatedAt)
		}
	}
	if atOrBefore(element.APIRemoved, f.request.TargetSDK) {
		return errors.NewRemovedError(element.Name, *element.APIRemoved)
	}
	return nil
}

func (f *Filter) exclude(result *models.MethodSelectionResult, m models.ApiElement, reason models.Reason, version int) {
	x := models.Exclusion{Method: m, Reason: reason, Version: version}
	result.Exclusions = append(result.Exclusions, x)
	if f.reporter != nil {
		f.reporter.Warn("%s", x.Message())
	}
}

// after reports whether an optional version is set and greater than v
func after(version *int, v int) bool {
	return version != nil && *version > v
}

// atOrBefore reports whether an optional version is set and at most v
func atOrBefore(version *int, v int) bool {
	return version != nil && *version <= v
}
