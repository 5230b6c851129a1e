package descriptor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruboto/rubotogen/internal/errors"
	"github.com/ruboto/rubotogen/internal/models"
)

const apiXML = `<?xml version="1.0" encoding="utf-8"?>
<api>
  <package name="android.view">
    <class name="View" extends="java.lang.Object" abstract="false" api_added="1" deprecated="not deprecated">
      <implements name="android.graphics.drawable.Drawable.Callback"/>
      <constructor name="android.view.View" visibility="public">
        <parameter name="context" type="android.content.Context"/>
      </constructor>
      <method name="onDraw" return="void" visibility="protected">
        <parameter name="canvas" type="android.graphics.Canvas"/>
      </method>
      <method name="onDragEvent" return="boolean" api_added="11">
        <parameter name="event" type="android.view.DragEvent"/>
        <exception name="IllegalStateException" type="java.lang.IllegalStateException"/>
      </method>
    </class>
    <interface name="View.OnClickListener" abstract="true">
      <method name="onClick">
        <parameter name="v" type="android.view.View"/>
      </method>
    </interface>
  </package>
</api>
`

func TestParseXML(t *testing.T) {
	doc, err := Parse("api.xml", FormatXML, []byte(apiXML))
	require.NoError(t, err)
	assert.Equal(t, []string{"android.view.View", "android.view.View.OnClickListener"}, doc.Types())

	view, err := doc.FindClassOrInterface("android.view.View")
	require.NoError(t, err)
	assert.Equal(t, models.KindClass, view.Kind)
	assert.Equal(t, "java.lang.Object", view.Extends)
	assert.Equal(t, []string{"android.graphics.drawable.Drawable.Callback"}, view.Implements)
	require.NotNil(t, view.APIAdded)
	assert.Equal(t, 1, *view.APIAdded)
	assert.Nil(t, view.DeprecatedAt)

	ctors := doc.Constructors(view)
	require.Len(t, ctors, 1)
	assert.Equal(t, "View", ctors[0].Name)
	assert.Equal(t, "android.content.Context", ctors[0].Parameters[0].Type)

	methods, err := doc.AllMethods(view, BaseAll, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, "protected", methods[0].Visibility)
	assert.Equal(t, "android.view.View", methods[0].Owner)
	assert.Equal(t, "boolean", methods[1].ReturnType)
	assert.Equal(t, []string{"java.lang.IllegalStateException"}, methods[1].Throws)
	require.NotNil(t, methods[1].APIAdded)
	assert.Equal(t, 11, *methods[1].APIAdded)

	listener, err := doc.FindClassOrInterface("android.view.View.OnClickListener")
	require.NoError(t, err)
	onClick, err := doc.AllMethods(listener, BaseAbstract, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, onClick, 1)
	assert.Equal(t, "void", onClick[0].ReturnType, "missing return means void")
	assert.True(t, onClick[0].Abstract, "interface methods are abstract")
}

func TestParseXMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "malformed",
			doc:  `<api><package name="a">`,
			want: "failed to load API descriptor 'api.xml'",
		},
		{
			name: "bad version",
			doc:  `<api><package name="a"><class name="B" api_added="soon"/></package></api>`,
			want: `a.B: api_added must be a positive integer, got "soon"`,
		},
		{
			name: "bad boolean",
			doc:  `<api><package name="a"><class name="B"><method name="c" final="maybe"/></class></package></api>`,
			want: `a.B#c: final must be true or false, got "maybe"`,
		},
		{
			name: "untyped parameter",
			doc:  `<api><package name="a"><class name="B"><method name="c"><parameter name="x"/></method></class></package></api>`,
			want: "a.B#c: parameter without a type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("api.xml", FormatXML, []byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.True(t, errors.HasCode(err, errors.DescriptorErrorCode))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.xml")
	require.NoError(t, os.WriteFile(path, []byte(apiXML), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source())

	_, err = Load(filepath.Join(dir, "missing.xml"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.FileSystemErrorCode))
}

func TestAllMethodsSkipsPackagePrivate(t *testing.T) {
	doc, err := Parse("api.xml", FormatXML, []byte(`<api><package name="android.app">
  <class name="Base">
    <method name="hidden" visibility="package"/>
    <method name="guarded" visibility="protected"/>
    <method name="shown"/>
  </class>
</package></api>`))
	require.NoError(t, err)

	base, err := doc.FindClassOrInterface("android.app.Base")
	require.NoError(t, err)

	methods, err := doc.AllMethods(base, BaseAll, []string{"hidden"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"guarded", "shown"}, names(methods))
}
