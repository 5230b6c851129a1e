package descriptor

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ruboto/rubotogen/internal/errors"
	"github.com/ruboto/rubotogen/internal/models"
)

// Signature is the parsed form of a Java-like member declaration such as
// "public abstract void onClick(android.view.View v)" or "public Activity()".
type Signature struct {
	Modifiers []string   `parser:"@Modifier*"`
	Lead      *TypeRef   `parser:"@@"`
	Name      string     `parser:"@Ident?"`
	Params    []*Param   `parser:"'(' ( @@ ( ',' @@ )* )? ')'"`
	Throws    []*TypeRef `parser:"( 'throws' @@ ( ',' @@ )* )?"`
}

// TypeRef is a possibly generic, possibly array, qualified type name
type TypeRef struct {
	Name    string     `parser:"@Ident ( @'.' @Ident )*"`
	Args    []*TypeRef `parser:"( '<' @@ ( ',' @@ )* '>' )?"`
	Dims    []string   `parser:"( @'[' ']' )*"`
	Varargs bool       `parser:"@'...'?"`
}

// Param is one declared parameter; the name is optional
type Param struct {
	Type *TypeRef `parser:"@@"`
	Name string   `parser:"@Ident?"`
}

// String renders the type the way Java source spells it
func (t *TypeRef) String() string {
	var b strings.Builder
	b.WriteString(t.Name)
	if len(t.Args) > 0 {
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.String()
		}
		b.WriteString("<" + strings.Join(args, ", ") + ">")
	}
	b.WriteString(strings.Repeat("[]", len(t.Dims)))
	if t.Varargs {
		b.WriteString("...")
	}
	return b.String()
}

// IsConstructor reports whether the signature has no return type
func (s *Signature) IsConstructor() bool {
	return s.Name == ""
}

var signatureLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Modifier", Pattern: `\b(public|protected|private|abstract|static|final|synchronized|native|default|strictfp)\b`},
	{Name: "Ellipsis", Pattern: `\.\.\.`},
	{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
	{Name: "Punct", Pattern: `[(),.<>\[\]]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var signatureParser = participle.MustBuild[Signature](
	participle.Lexer(signatureLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseSignature parses a member declaration
func ParseSignature(input string) (*Signature, error) {
	sig, err := signatureParser.ParseString("", input)
	if err != nil {
		return nil, errors.NewSyntaxError(input, err)
	}
	return sig, nil
}

// member converts a parsed signature into a method or constructor record owned by owner
func (s *Signature) member(owner string) models.ApiElement {
	element := models.ApiElement{
		Owner:      owner,
		Visibility: "package",
	}
	for _, mod := range s.Modifiers {
		switch mod {
		case "public", "protected", "private":
			element.Visibility = mod
		case "abstract":
			element.Abstract = true
		case "static":
			element.Static = true
		case "final":
			element.Final = true
		}
	}

	if s.IsConstructor() {
		element.Kind = models.KindConstructor
		element.Name = s.Lead.Name
		if i := strings.LastIndex(element.Name, "."); i >= 0 {
			element.Name = element.Name[i+1:]
		}
	} else {
		element.Kind = models.KindMethod
		element.Name = s.Name
		element.ReturnType = s.Lead.String()
	}

	for _, p := range s.Params {
		element.Parameters = append(element.Parameters, models.Parameter{Type: p.Type.String(), Name: p.Name})
	}
	for _, t := range s.Throws {
		element.Throws = append(element.Throws, t.String())
	}
	return element
}
