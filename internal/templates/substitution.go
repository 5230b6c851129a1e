package templates

import "strings"

// Placeholder tokens understood by the stock templates
const (
	TokenPackage        = "THE_PACKAGE"
	TokenAction         = "THE_ACTION"
	TokenAndroidClass   = "THE_ANDROID_CLASS"
	TokenRubotoClass    = "THE_RUBOTO_CLASS"
	TokenConstants      = "THE_CONSTANTS"
	TokenConstantsCount = "CONSTANTS_COUNT"
	TokenConstructors   = "THE_CONSTRUCTORS"
	TokenMethods        = "THE_METHODS"
)

// Substitution replaces every occurrence of Token with Value
type Substitution struct {
	Token string
	Value string
}

// Substitutions are applied in slice order
type Substitutions []Substitution

// Add returns the list with one more pair appended
func (s Substitutions) Add(token, value string) Substitutions {
	return append(s, Substitution{Token: token, Value: value})
}

// Apply performs literal, global replacement of each pair in order. Each pair runs
// over the whole text, including values inserted by earlier pairs; a pair never
// rescans its own replacement.
func Apply(text string, subs Substitutions) string {
	for _, s := range subs {
		if s.Token == "" {
			continue
		}
		text = strings.ReplaceAll(text, s.Token, s.Value)
	}
	return text
}
