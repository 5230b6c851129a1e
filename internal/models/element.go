package models

import (
	"strings"
	"unicode"
)

// Kind identifies what an ApiElement describes
type Kind int

const (
	KindClass Kind = iota
	KindInterface
	KindMethod
	KindConstructor
)

// String returns the descriptor spelling of the kind
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindMethod:
		return "method"
	case KindConstructor:
		return "constructor"
	default:
		return "unknown"
	}
}

// Parameter is a single method or constructor parameter
type Parameter struct {
	Type string // fully qualified Java type, e.g. android.view.View or int[]
	Name string // optional; synthesized as argN when empty
}

// ApiElement is a class, interface, method or constructor record from the API descriptor.
// Elements are immutable once the document is loaded.
type ApiElement struct {
	Name string
	Kind Kind

	// Version lifecycle; nil means the attribute is absent
	APIAdded     *int
	DeprecatedAt *int
	APIRemoved   *int

	Visibility string // public, protected, private or package
	Abstract   bool
	Static     bool
	Final      bool

	// Types only
	Extends    string
	Implements []string

	// Methods and constructors only
	Owner      string // fully qualified name of the declaring type
	ReturnType string
	Parameters []Parameter
	Throws     []string
}

// Version returns a pointer to v, for building version attributes
func Version(v int) *int {
	return &v
}

// IsType reports whether the element is a class or an interface
func (e *ApiElement) IsType() bool {
	return e.Kind == KindClass || e.Kind == KindInterface
}

// SimpleName returns the last dotted segment of the name
func (e *ApiElement) SimpleName() string {
	if i := strings.LastIndex(e.Name, "."); i >= 0 {
		return e.Name[i+1:]
	}
	return e.Name
}

// ParameterTypes returns the parameter types in declaration order
func (e *ApiElement) ParameterTypes() []string {
	types := make([]string, len(e.Parameters))
	for i, p := range e.Parameters {
		types[i] = p.Type
	}
	return types
}

// Signature is the human readable form used in diagnostics, e.g. onClick(android.view.View)
func (e *ApiElement) Signature() string {
	return e.Name + "(" + strings.Join(e.ParameterTypes(), ", ") + ")"
}

// Key identifies a method across a type hierarchy; overrides share a key
func (e *ApiElement) Key() string {
	return e.Name + "(" + strings.Join(e.ParameterTypes(), ",") + ")"
}

// IsOverridable reports whether a subclass or implementation in another package may
// redefine the method. Package-private members are invisible outside their package.
func (e *ApiElement) IsOverridable() bool {
	if e.Kind != KindMethod || e.Static || e.Final {
		return false
	}
	return e.Visibility == "public" || e.Visibility == "protected"
}

// ConstantName is the dispatch constant shared by every overload of a method:
// onClick becomes CB_CLICK and dispatchKeyEvent becomes CB_DISPATCH_KEY_EVENT.
func (e *ApiElement) ConstantName() string {
	name := e.Name
	if len(name) > 2 && strings.HasPrefix(name, "on") && unicode.IsUpper(rune(name[2])) {
		name = name[2:]
	}

	var b strings.Builder
	b.WriteString("CB")
	for i, r := range name {
		if i == 0 || unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
