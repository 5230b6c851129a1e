package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticLevels(t *testing.T) {
	var buf bytes.Buffer
	d := NewBufferedDiagnostics(DiagnosticWarn, &buf)

	d.Debug("debug")
	d.Verbose("verbose")
	d.Info("info")
	d.Warn("Can't create %s -- removed in %d", "onFoo()", 9)
	d.Error("boom")

	assert.Equal(t, "[WARN] Can't create onFoo() -- removed in 9\n[ERROR] boom\n", buf.String())
}

func TestDiagnosticProgressAndIndent(t *testing.T) {
	var buf bytes.Buffer
	d := NewBufferedDiagnostics(DiagnosticInfo, &buf)

	d.Progress("Generating methods for %s...", "RubotoActivity")
	d.Indent()
	d.List("onClick")
	d.Unindent()
	d.Unindent()
	d.Progress("Done. Methods created: %d", 1)

	assert.Equal(t, "Generating methods for RubotoActivity...\n  - onClick\nDone. Methods created: 1\n", buf.String())
}

func TestDiagnosticSummarySorted(t *testing.T) {
	var buf bytes.Buffer
	d := NewBufferedDiagnostics(DiagnosticInfo, &buf)

	d.Summary("Generation complete", map[string]interface{}{"methods": 3, "files": 1})

	assert.Equal(t, "\nGeneration complete\n   files: 1\n   methods: 3\n", buf.String())
}

func TestSilentSuppressesEverything(t *testing.T) {
	var buf bytes.Buffer
	d := NewBufferedDiagnostics(DiagnosticSilent, &buf)
	d.Error("x")
	d.Section("y")
	d.Wrote("z")
	assert.Empty(t, buf.String())
}

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, DiagnosticInfo, LevelFromFlags(0, false))
	assert.Equal(t, DiagnosticVerbose, LevelFromFlags(1, false))
	assert.Equal(t, DiagnosticDebug, LevelFromFlags(3, false))
	assert.Equal(t, DiagnosticError, LevelFromFlags(2, true))
}
