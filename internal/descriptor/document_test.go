package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruboto/rubotogen/internal/errors"
	"github.com/ruboto/rubotogen/internal/models"
)

const hierarchyYAML = `types:
  - name: a.Base
    methods:
      - signature: public void onStart()
      - signature: public final void finish()
      - signature: public void helper(int count)
      - signature: public static void util()
  - name: a.Child
    extends: a.Base
    abstract: true
    implements: [a.Listener]
    methods:
      - signature: public void onResume()
      - signature: protected abstract boolean onKey(int code)
      - signature: private void secret()
    constructors:
      - signature: public Child()
      - signature: private Child(int x)
  - name: a.Sealed
    extends: a.Base
    methods:
      - signature: public final void onStart()
  - name: a.Listener
    kind: interface
    methods:
      - signature: void onEvent(java.lang.String name)
  - name: a.Extra
    kind: interface
    api_added: 11
    methods:
      - signature: void onExtra()
`

func parseHierarchy(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse("hierarchy.yaml", FormatYAML, []byte(hierarchyYAML))
	require.NoError(t, err)
	return doc
}

func names(methods []models.ApiElement) []string {
	out := make([]string, len(methods))
	for i, m := range methods {
		out[i] = m.Name
	}
	return out
}

func TestFindClassOrInterface(t *testing.T) {
	doc := parseHierarchy(t)
	assert.Equal(t, []string{"a.Base", "a.Child", "a.Sealed", "a.Listener", "a.Extra"}, doc.Types())
	assert.Equal(t, "hierarchy.yaml", doc.Source())

	child, err := doc.FindClassOrInterface("a.Child")
	require.NoError(t, err)
	assert.Equal(t, models.KindClass, child.Kind)
	assert.True(t, child.Abstract)
	assert.Equal(t, "a.Base", child.Extends)

	extra, err := doc.FindClassOrInterface("a.Extra")
	require.NoError(t, err)
	assert.Equal(t, models.KindInterface, extra.Kind)
	require.NotNil(t, extra.APIAdded)
	assert.Equal(t, 11, *extra.APIAdded)

	_, err = doc.FindClassOrInterface("a.Missing")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.NotFoundErrorCode))
}

func TestAllMethods(t *testing.T) {
	doc := parseHierarchy(t)
	child, err := doc.FindClassOrInterface("a.Child")
	require.NoError(t, err)

	tests := []struct {
		name       string
		base       string
		include    []string
		exclude    []string
		implements []string
		want       []string
	}{
		{name: "all", base: BaseAll, want: []string{"onResume", "onKey", "onStart", "helper", "onEvent"}},
		{name: "empty base means all", base: "", want: []string{"onResume", "onKey", "onStart", "helper", "onEvent"}},
		{name: "on", base: BaseOn, want: []string{"onResume", "onKey", "onStart", "onEvent"}},
		{name: "abstract", base: BaseAbstract, want: []string{"onKey", "onEvent"}},
		{name: "none with include", base: BaseNone, include: []string{"helper", "secret"}, want: []string{"helper"}},
		{name: "exclude", base: BaseAll, exclude: []string{"onStart", "onEvent"}, want: []string{"onResume", "onKey", "helper"}},
		{name: "include already present", base: BaseOn, include: []string{"onStart"}, want: []string{"onResume", "onKey", "onStart", "onEvent"}},
		{name: "extra interface", base: BaseAll, implements: []string{"a.Extra"}, want: []string{"onResume", "onKey", "onStart", "helper", "onEvent", "onExtra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			methods, err := doc.AllMethods(child, tt.base, tt.include, tt.exclude, tt.implements)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(methods))
		})
	}
}

func TestAllMethodsFinalOverrideHidesOriginal(t *testing.T) {
	doc := parseHierarchy(t)
	sealed, err := doc.FindClassOrInterface("a.Sealed")
	require.NoError(t, err)

	methods, err := doc.AllMethods(sealed, BaseAll, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"helper"}, names(methods))
}

func TestAllMethodsErrors(t *testing.T) {
	doc := parseHierarchy(t)
	child, err := doc.FindClassOrInterface("a.Child")
	require.NoError(t, err)

	_, err = doc.AllMethods(child, "everything", nil, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ValidationErrorCode))

	_, err = doc.AllMethods(child, BaseAll, nil, nil, []string{"a.Base"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ValidationErrorCode))

	_, err = doc.AllMethods(child, BaseAll, nil, nil, []string{"a.Nowhere"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.NotFoundErrorCode))
}

func TestConstructors(t *testing.T) {
	doc := parseHierarchy(t)
	child, _ := doc.FindClassOrInterface("a.Child")
	listener, _ := doc.FindClassOrInterface("a.Listener")

	ctors := doc.Constructors(child)
	require.Len(t, ctors, 1)
	assert.Equal(t, "Child", ctors[0].Name)
	assert.Empty(t, ctors[0].Parameters)

	assert.Nil(t, doc.Constructors(listener))
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "missing name",
			doc:  "types:\n  - name: a.B\n  - kind: interface\n",
			want: "bad.yaml:3: type without a name",
		},
		{
			name: "unknown kind",
			doc:  "types:\n  - name: a.B\n    kind: enum\n",
			want: `a.B: unknown kind "enum"`,
		},
		{
			name: "duplicate",
			doc:  "types:\n  - name: a.B\n  - name: a.B\n",
			want: "duplicate type a.B",
		},
		{
			name: "non positive version",
			doc:  "types:\n  - name: a.B\n    deprecated: 0\n",
			want: "deprecated must be a positive integer",
		},
		{
			name: "constructor listed as method",
			doc:  "types:\n  - name: a.B\n    methods:\n      - signature: public B()\n",
			want: "is not a method signature",
		},
		{
			name: "bad signature",
			doc:  "types:\n  - name: a.B\n    methods:\n      - signature: void (\n",
			want: "invalid method signature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.yaml", FormatYAML, []byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, errors.DescriptorErrorCode, errors.CodeOf(err))
		})
	}
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFor("api.yml"))
	assert.Equal(t, FormatYAML, FormatFor("API.YAML"))
	assert.Equal(t, FormatXML, FormatFor("api.xml"))
	assert.Equal(t, FormatXML, FormatFor("api"))
}

func TestAllMethodsSkipsPackagePrivateSignatures(t *testing.T) {
	doc, err := Parse("api.yaml", FormatYAML, []byte(`types:
  - name: a.Widget
    methods:
      - signature: void hidden()
      - signature: public void shown()
  - name: a.Callback
    kind: interface
    methods:
      - signature: void onCall()
`))
	require.NoError(t, err)

	widget, err := doc.FindClassOrInterface("a.Widget")
	require.NoError(t, err)
	methods, err := doc.AllMethods(widget, BaseAll, nil, nil, []string{"a.Callback"})
	require.NoError(t, err)
	assert.Equal(t, []string{"shown", "onCall"}, names(methods), "interface members are implicitly public")
}
