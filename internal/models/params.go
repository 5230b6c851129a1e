package models

import (
	"strconv"
	"strings"

	"github.com/ruboto/rubotogen/internal/errors"
)

const (
	// DefaultTemplate is used when a generation request names no template
	DefaultTemplate = "InheritingClass"
	// DefaultMethodBase selects every inherited overridable method
	DefaultMethodBase = "all"
	// DefaultPackage is the fallback when neither the request nor the configuration names one
	DefaultPackage = "org.ruboto"
)

// FilterRequest bounds the supported platform range for one generation call
type FilterRequest struct {
	MinSDK    int
	TargetSDK int
	Force     bool
}

// Validate checks that the range is well formed
func (r FilterRequest) Validate() error {
	if r.MinSDK <= 0 {
		return errors.ValidationError("minSdk", "a positive integer", strconv.Itoa(r.MinSDK))
	}
	if r.TargetSDK <= 0 {
		return errors.ValidationError("targetSdk", "a positive integer", strconv.Itoa(r.TargetSDK))
	}
	if r.MinSDK > r.TargetSDK {
		return errors.ValidationError("targetSdk", "a version >= minSdk "+strconv.Itoa(r.MinSDK), strconv.Itoa(r.TargetSDK))
	}
	return nil
}

// GenerationParams describes one subclass or interface to generate.
// Exactly one of Class and Interface is the lookup key.
type GenerationParams struct {
	Class     string
	Interface string

	Name     string // generated type name
	Package  string // dotted package; defaults to the configured package
	Template string

	MethodBase    string
	MethodInclude []string
	MethodExclude []string
	Implements    []string

	Force       bool
	Destination string
}

// Target returns the class or interface name being looked up
func (p *GenerationParams) Target() string {
	if p.Class != "" {
		return p.Class
	}
	return p.Interface
}

// WithDefaults returns a copy with empty fields filled in
func (p GenerationParams) WithDefaults(defaultPackage string) GenerationParams {
	if p.Package == "" {
		p.Package = defaultPackage
	}
	if p.Package == "" {
		p.Package = DefaultPackage
	}
	if p.Template == "" {
		p.Template = DefaultTemplate
	}
	if p.MethodBase == "" {
		p.MethodBase = DefaultMethodBase
	}
	if p.Destination == "" {
		p.Destination = "."
	}
	return p
}

// Validate checks the invariants of a generation request
func (p *GenerationParams) Validate() error {
	switch {
	case p.Class == "" && p.Interface == "":
		return errors.ValidationError("class", "a class or interface name", "nothing")
	case p.Class != "" && p.Interface != "":
		return errors.ValidationError("interface", "only one of class or interface", p.Class+" and "+p.Interface)
	case p.Name == "":
		return errors.ValidationError("name", "a generated type name", "nothing")
	case !isDottedIdentifier(p.Package):
		return errors.ValidationError("package", "a dotted identifier", strconv.Quote(p.Package))
	}
	return nil
}

// SplitNames parses a comma separated list, dropping blanks and surrounding spaces
func SplitNames(list string) []string {
	var names []string
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

func isDottedIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, seg := range strings.Split(s, ".") {
		if seg == "" {
			return false
		}
		for i, r := range seg {
			letter := r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
			digit := r >= '0' && r <= '9'
			if !letter && !(digit && i > 0) {
				return false
			}
		}
	}
	return true
}
