package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ruboto/rubotogen/internal/models"
)

const indent = "    "

var boxed = map[string]string{
	"boolean": "Boolean",
	"byte":    "Byte",
	"char":    "Character",
	"short":   "Short",
	"int":     "Integer",
	"long":    "Long",
	"float":   "Float",
	"double":  "Double",
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// constantsBlock declares one dispatch index per distinct constant name, numbered in
// order of first appearance. Overloads share a constant.
func constantsBlock(methods []models.ApiElement) (string, []string) {
	var names []string
	seen := make(map[string]bool)
	for i := range methods {
		name := methods[i].ConstantName()
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%spublic static final int %s = %d;", indent, name, i)
	}
	return strings.Join(lines, "\n"), names
}

// constructorsBlock mirrors each superclass constructor under the generated name
func constructorsBlock(ctors []models.ApiElement, name string) string {
	defs := make([]string, len(ctors))
	for i := range ctors {
		c := &ctors[i]
		var b strings.Builder
		fmt.Fprintf(&b, "%s%s%s(%s)%s {\n", indent, modifiers(c), name, parameterList(c), throwsClause(c))
		fmt.Fprintf(&b, "%s%ssuper(%s);\n", indent, indent, argumentList(c))
		fmt.Fprintf(&b, "%s}", indent)
		defs[i] = b.String()
	}
	return strings.Join(defs, "\n\n")
}

// methodsBlock renders a dispatching override for every method
func methodsBlock(methods []models.ApiElement) string {
	defs := make([]string, len(methods))
	for i := range methods {
		defs[i] = methodDefinition(&methods[i])
	}
	return strings.Join(defs, "\n\n")
}

// methodDefinition calls the registered script callback when one is set and falls
// back to the inherited behaviour otherwise
func methodDefinition(m *models.ApiElement) string {
	ret := m.ReturnType
	if ret == "" {
		ret = "void"
	}
	args := argumentList(m)
	constant := m.ConstantName()
	proc := "callbackProcs[" + constant + "]"

	rubyArgs := ""
	if args != "" {
		rubyArgs = ", " + args
	}

	var callback, fallback string
	if ret == "void" {
		callback = fmt.Sprintf("JRubyAdapter.runRubyMethod(%s, \"call\"%s);", proc, rubyArgs)
	} else {
		box := boxedType(ret)
		callback = fmt.Sprintf("return (%s) JRubyAdapter.runRubyMethod(%s.class, %s, \"call\"%s);", box, erasure(box), proc, rubyArgs)
	}

	switch {
	case !m.Abstract && ret == "void":
		fallback = fmt.Sprintf("super.%s(%s);", m.Name, args)
	case !m.Abstract:
		fallback = fmt.Sprintf("return super.%s(%s);", m.Name, args)
	case ret != "void":
		fallback = "return " + defaultValue(ret) + ";"
	}

	in2 := indent + indent
	in3 := in2 + indent
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s%s %s(%s)%s {\n", indent, modifiers(m), ret, m.Name, parameterList(m), throwsClause(m))
	fmt.Fprintf(&b, "%sif (%s != null) {\n", in2, proc)
	fmt.Fprintf(&b, "%s%s\n", in3, callback)
	if fallback != "" {
		fmt.Fprintf(&b, "%s} else {\n", in2)
		fmt.Fprintf(&b, "%s%s\n", in3, fallback)
	}
	fmt.Fprintf(&b, "%s}\n", in2)
	fmt.Fprintf(&b, "%s}", indent)
	return b.String()
}

// modifiers keeps protected; everything that reaches synthesis is otherwise public
func modifiers(e *models.ApiElement) string {
	if e.Visibility == "protected" {
		return "protected "
	}
	return "public "
}

func parameterList(e *models.ApiElement) string {
	parts := make([]string, len(e.Parameters))
	for i, p := range e.Parameters {
		parts[i] = p.Type + " " + parameterName(p, i)
	}
	return strings.Join(parts, ", ")
}

func argumentList(e *models.ApiElement) string {
	parts := make([]string, len(e.Parameters))
	for i, p := range e.Parameters {
		parts[i] = parameterName(p, i)
	}
	return strings.Join(parts, ", ")
}

func parameterName(p models.Parameter, i int) string {
	if p.Name != "" {
		return p.Name
	}
	return "arg" + itoa(i)
}

func throwsClause(e *models.ApiElement) string {
	if len(e.Throws) == 0 {
		return ""
	}
	return " throws " + strings.Join(e.Throws, ", ")
}

func boxedType(t string) string {
	if b, ok := boxed[t]; ok {
		return b
	}
	return t
}

// erasure strips generic arguments so the type can be used as a class literal
func erasure(t string) string {
	if i := strings.Index(t, "<"); i >= 0 {
		if j := strings.LastIndex(t, ">"); j > i {
			return t[:i] + t[j+1:]
		}
	}
	return t
}

func defaultValue(t string) string {
	switch t {
	case "boolean":
		return "false"
	case "byte", "char", "short", "int", "long", "float", "double":
		return "0"
	default:
		return "null"
	}
}

// androidClass is the superclass or interface clause, followed by any extra interfaces
func androidClass(element *models.ApiElement, implements []string) string {
	if len(implements) == 0 {
		return element.Name
	}
	if element.Kind == models.KindInterface {
		return element.Name + ", " + strings.Join(implements, ", ")
	}
	return element.Name + " implements " + strings.Join(implements, ", ")
}
