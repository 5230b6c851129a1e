package generator

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruboto/rubotogen/internal/errors"
)

func TestGenerateInheritingFile(t *testing.T) {
	dest := t.TempDir()
	gen, _ := newTestGenerator(t, 10, 19)

	params := InheritingParams{
		Klass:       "Activity",
		Name:        "MainActivity",
		Package:     "org.example.app",
		ScriptName:  "main_activity.rb",
		Destination: dest,
	}
	result, err := gen.GenerateInheritingFile(params)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dest, "src", "org", "example", "app", "MainActivity.java"), result.Source)
	source := readFile(t, result.Source)
	assert.Contains(t, source, "package org.example.app;")
	assert.Contains(t, source, "public class MainActivity extends org.ruboto.RubotoActivity {")
	assert.Contains(t, source, `setScriptName("main_activity.rb");`)

	assert.Equal(t, filepath.Join(dest, "assets", "scripts", "main_activity.rb"), result.Script)
	assert.Contains(t, readFile(t, result.Script), "class MainActivity\n")

	assert.Equal(t, filepath.Join(dest, "test", "assets", "scripts", "main_activity_test.rb"), result.TestScript)
	assert.Contains(t, readFile(t, result.TestScript), "activity Java::org.example.app.MainActivity")

	// Scripts are appended, the Java source is replaced
	_, err = gen.GenerateInheritingFile(params)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(readFile(t, result.Script), "class MainActivity\n"))
	assert.Equal(t, 1, strings.Count(readFile(t, result.Source), "public class MainActivity"))
}

func TestGenerateInheritingFileCustomFilename(t *testing.T) {
	dest := t.TempDir()
	gen, _ := newTestGenerator(t, 10, 19)

	result, err := gen.GenerateInheritingFile(InheritingParams{
		Klass:       "BroadcastReceiver",
		Name:        "Receiver",
		ScriptName:  "receiver.rb",
		Destination: dest,
		Filename:    "ReceiverImpl",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "src", "org", "example", "ReceiverImpl.java"), result.Source)
	assert.Contains(t, readFile(t, result.Source), "public Receiver() {")
	assert.Contains(t, readFile(t, result.Script), "class Receiver\n")
}

func TestGenerateInheritingFileUnknownClass(t *testing.T) {
	dest := t.TempDir()
	gen, _ := newTestGenerator(t, 10, 19)

	_, err := gen.GenerateInheritingFile(InheritingParams{Klass: "Fragment", Name: "F", ScriptName: "f.rb", Destination: dest})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.TemplateMissingErrorCode))
	assert.NoDirExists(t, filepath.Join(dest, "assets"))
}

func TestGenerateInheritingFileScriptOutsideProject(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "app")
	gen, _ := newTestGenerator(t, 10, 19)

	_, err := gen.GenerateInheritingFile(InheritingParams{
		Klass:       "Activity",
		Name:        "MainActivity",
		ScriptName:  filepath.Join("..", "..", "..", "escape.rb"),
		Destination: dest,
	})
	require.Error(t, err)
	assert.Equal(t, errors.ValidationErrorCode, errors.CodeOf(err))
	assert.NoFileExists(t, filepath.Join(root, "escape.rb"))
	assert.NoDirExists(t, dest)
}
