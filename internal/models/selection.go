package models

import "fmt"

// Reason explains why the compatibility filter reported a method
type Reason int

const (
	ReasonRemovedBeforeTarget Reason = iota + 1
	ReasonAddedAfterMin
	ReasonDeprecatedBeforeTarget
)

// String returns a stable identifier for the reason
func (r Reason) String() string {
	switch r {
	case ReasonRemovedBeforeTarget:
		return "removed-before-target"
	case ReasonAddedAfterMin:
		return "added-after-min"
	case ReasonDeprecatedBeforeTarget:
		return "deprecated-before-target"
	default:
		return "unknown"
	}
}

// IsConflict reports whether the reason comes from mid-range conflict detection
func (r Reason) IsConflict() bool {
	return r == ReasonAddedAfterMin || r == ReasonDeprecatedBeforeTarget
}

// Exclusion is a method dropped with a user-visible diagnostic
type Exclusion struct {
	Method  ApiElement
	Reason  Reason
	Version int
}

// Message renders the diagnostic line for the exclusion
func (x Exclusion) Message() string {
	switch x.Reason {
	case ReasonRemovedBeforeTarget:
		return fmt.Sprintf("Can't create %s -- removed in %d", x.Method.Signature(), x.Version)
	case ReasonAddedAfterMin:
		return fmt.Sprintf("Can't create %s -- added in %d -- exclude or force", x.Method.Signature(), x.Version)
	case ReasonDeprecatedBeforeTarget:
		return fmt.Sprintf("Can't create %s -- deprecated in %d -- exclude or force", x.Method.Signature(), x.Version)
	default:
		return fmt.Sprintf("Can't create %s", x.Method.Signature())
	}
}

// MethodSelectionResult is the ordered set of methods that survived filtering
type MethodSelectionResult struct {
	Methods    []ApiElement
	Exclusions []Exclusion
}

// Conflicts returns the exclusions produced by mid-range conflict detection
func (r *MethodSelectionResult) Conflicts() []Exclusion {
	var conflicts []Exclusion
	for _, x := range r.Exclusions {
		if x.Reason.IsConflict() {
			conflicts = append(conflicts, x)
		}
	}
	return conflicts
}

// GeneratedFile summarizes one file written by a generation unit
type GeneratedFile struct {
	Target        string // class or interface the file was generated from
	Path          string
	Template      string
	MethodCount   int
	ConstantCount int
	Exclusions    []Exclusion
}
