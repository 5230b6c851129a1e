package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ruboto/rubotogen/internal/errors"
)

func TestReportConflictError(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewDiagnosticReporter(false, &buf)

	conflicts := []errors.Conflict{
		{Method: "onBackPressed()", Attribute: "added", Version: 5},
		{Method: "onStart(android.content.Intent, int)", Attribute: "deprecated", Version: 5},
	}
	reporter.ReportError(errors.WrapGenerationError("android.app.Activity", "filter", errors.NewConflictError(conflicts)))

	out := buf.String()
	assert.Contains(t, out, "ERROR: Generation Failed")
	assert.Contains(t, out, "Type: SDK Version Conflict")
	assert.Contains(t, out, "Can't create onBackPressed() -- added in 5 -- exclude or force")
	assert.Contains(t, out, "Can't create onStart(android.content.Intent, int) -- deprecated in 5 -- exclude or force")
	assert.Contains(t, out, "Target: android.app.Activity")
	assert.Contains(t, out, "Stage: filter")
	assert.NotContains(t, out, "Error Chain:")
}

func TestReportSuggestionsAndChain(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewDiagnosticReporter(true, &buf)

	reporter.ReportError(errors.WrapGenerationError("android.app.TabActivity", "lookup",
		errors.NewUnavailableError("android.app.TabActivity", "deprecated", 13)))

	out := buf.String()
	assert.Contains(t, out, "Type: SDK Version Error")
	assert.Contains(t, out, "1. use --force to create it")
	assert.Contains(t, out, "Error Chain:")
	assert.Contains(t, out, "[VersionUnavailable] android.app.TabActivity deprecated for targetSdkVersion, deprecated in 13")
}

func TestReportMultipleErrors(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewDiagnosticReporter(false, &buf)

	multi := errors.NewMultipleErrors()
	multi.Add(errors.NotFoundError("a.B"))
	multi.Add(errors.NotFoundError("c.D"))
	reporter.ReportError(multi)

	out := buf.String()
	assert.Contains(t, out, "[1/2]")
	assert.Contains(t, out, "[2/2]")
	assert.Contains(t, out, "c.D not found")
}

func TestReportPlainError(t *testing.T) {
	var buf bytes.Buffer
	NewDiagnosticReporter(false, &buf).ReportError(fmt.Errorf("disk full"))
	assert.Contains(t, buf.String(), "Message: disk full")
}

func TestFormatContextKey(t *testing.T) {
	assert.Equal(t, "Config Type", formatContextKey("config_type"))
	assert.Equal(t, "Target", formatContextKey("target"))
}
