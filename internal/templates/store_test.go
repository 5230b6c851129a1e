package templates

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruboto/rubotogen/internal/errors"
)

func TestEmbeddedStore(t *testing.T) {
	store := Embedded()

	for _, id := range []string{
		"InheritingClass", "RubotoActivity", "RubotoService", "RubotoBroadcastReceiver",
		"InheritingActivity", "InheritingService", "InheritingBroadcastReceiver",
	} {
		text, err := store.Template(id)
		require.NoError(t, err, id)
		assert.Contains(t, text, "package THE_PACKAGE;", id)
	}

	for _, id := range []string{"sample_activity.rb", "sample_service_test.rb", "sample_broadcast_receiver.rb"} {
		_, err := store.Sample(id)
		require.NoError(t, err, id)
	}
}

func TestStoreMissingTemplate(t *testing.T) {
	_, err := Embedded().Template("RubotoFragment")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.TemplateMissingErrorCode))

	ge, ok := err.(errors.GenError)
	require.True(t, ok)
	require.NotEmpty(t, ge.Suggestions())
	assert.Contains(t, ge.Suggestions()[0], "RubotoActivity")
}

func TestStoreRejectsTraversal(t *testing.T) {
	_, err := Embedded().Template("../engine")
	assert.True(t, errors.HasCode(err, errors.TemplateMissingErrorCode))
}

func TestLayeredStore(t *testing.T) {
	overlay := NewFSStore(fstest.MapFS{
		"src/RubotoActivity.java": &fstest.MapFile{Data: []byte("custom THE_PACKAGE")},
	})
	store := Layered{overlay, Embedded()}

	text, err := store.Template("RubotoActivity")
	require.NoError(t, err)
	assert.Equal(t, "custom THE_PACKAGE", text)

	text, err = store.Template("RubotoService")
	require.NoError(t, err)
	assert.Contains(t, text, "setCallbackProc")

	_, err = store.Template("Nope")
	assert.True(t, errors.HasCode(err, errors.TemplateMissingErrorCode))
}

func TestCachedStore(t *testing.T) {
	fsys := fstest.MapFS{
		"src/A.java": &fstest.MapFile{Data: []byte("first")},
	}
	cached, err := NewCached(NewFSStore(fsys), 4)
	require.NoError(t, err)

	text, err := cached.Template("A")
	require.NoError(t, err)
	assert.Equal(t, "first", text)
	assert.Equal(t, 1, cached.Len())

	fsys["src/A.java"] = &fstest.MapFile{Data: []byte("second")}
	text, err = cached.Template("A")
	require.NoError(t, err)
	assert.Equal(t, "first", text, "served from cache")

	_, err = cached.Template("B")
	require.Error(t, err)
	assert.Equal(t, 1, cached.Len(), "failures are not cached")
}
