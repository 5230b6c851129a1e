package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/ruboto/rubotogen/internal/errors"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
}

// NewDiagnosticReporter creates a new diagnostic reporter; out defaults to stderr
func NewDiagnosticReporter(verbose bool, out io.Writer) *DiagnosticReporter {
	if out == nil {
		out = os.Stderr
	}
	return &DiagnosticReporter{
		verbose: verbose,
		out:     out,
	}
}

// ReportWarning provides user-friendly warning reporting
func (r *DiagnosticReporter) ReportWarning(message string) {
	orange := color.New(color.FgYellow, color.Bold)
	orange.Fprint(r.out, "! ")
	fmt.Fprintf(r.out, "%s\n", message)
}

// ReportError provides comprehensive error reporting with user-friendly output
func (r *DiagnosticReporter) ReportError(err error) {
	fmt.Fprintf(r.out, "\nERROR: Generation Failed\n")
	fmt.Fprintf(r.out, "========================\n\n")

	if multi, ok := err.(*errors.MultipleErrors); ok {
		for i, e := range multi.Errors {
			fmt.Fprintf(r.out, "[%d/%d]\n", i+1, multi.Count())
			r.reportGenError(e)
		}
		return
	}

	if genErr := r.findGenError(err); genErr != nil {
		r.reportGenError(genErr)
	} else {
		fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())
	}
}

// reportGenError reports a GenError with full context and suggestions
func (r *DiagnosticReporter) reportGenError(genErr errors.GenError) {
	code := errors.CodeOf(innermost(genErr))
	r.printErrorHeader(code)

	fmt.Fprintf(r.out, "Message: %s\n\n", genErr.Error())

	if loc := genErr.Location(); !loc.IsEmpty() {
		fmt.Fprintf(r.out, "Location: %s\n\n", loc.String())
	}

	if conflicts := errors.ConflictsOf(genErr); len(conflicts) > 0 {
		fmt.Fprintf(r.out, "Conflicting methods:\n")
		for _, c := range conflicts {
			fmt.Fprintf(r.out, "   %s\n", c.String())
		}
		fmt.Fprintf(r.out, "\n")
	}

	if ctx := genErr.Context(); len(ctx) > 0 {
		r.printContext(ctx)
	}

	if suggestions := genErr.Suggestions(); len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}

	if r.verbose {
		r.printErrorChain(genErr)
	}
}

// printErrorHeader prints a formatted error header based on the innermost code
func (r *DiagnosticReporter) printErrorHeader(code errors.ErrorCode) {
	var title string
	switch code {
	case errors.NotFoundErrorCode:
		title = "Class Not Found"
	case errors.VersionUnavailableErrorCode, errors.RemovedErrorCode:
		title = "SDK Version Error"
	case errors.VersionConflictErrorCode:
		title = "SDK Version Conflict"
	case errors.DescriptorErrorCode, errors.SyntaxErrorCode:
		title = "API Descriptor Error"
	case errors.ConfigurationErrorCode:
		title = "Configuration Error"
	case errors.ValidationErrorCode:
		title = "Validation Error"
	case errors.TemplateMissingErrorCode:
		title = "Template Error"
	case errors.FileSystemErrorCode:
		title = "File System Error"
	default:
		title = "Generation Error"
	}

	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(r.out, "Type: %s\n", title)
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("-", len(title)+6))
}

// printContext prints context information in a readable format
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	fmt.Fprintf(r.out, "Context:\n")

	importantKeys := []string{"target", "stage", "element", "name", "path"}
	printed := make(map[string]bool)
	for _, key := range importantKeys {
		if value, exists := context[key]; exists {
			fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(key), value)
			printed[key] = true
		}
	}

	var rest []string
	for key := range context {
		if !printed[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(key), context[key])
	}

	fmt.Fprintf(r.out, "\n")
}

// formatContextKey converts snake_case keys to Title Case
func formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.out, "Suggestions:\n")
	for i, suggestion := range suggestions {
		fmt.Fprintf(r.out, "   %d. %s\n", i+1, suggestion)
	}
	fmt.Fprintf(r.out, "\n")
}

// printErrorChain lists every wrapped error, outermost first
func (r *DiagnosticReporter) printErrorChain(err error) {
	fmt.Fprintf(r.out, "Error Chain:\n")
	level := 1
	for err != nil {
		code := "-"
		if ge, ok := err.(errors.GenError); ok {
			code = ge.ErrorCode().String()
		}
		fmt.Fprintf(r.out, "   %d. [%s] %s\n", level, code, err.Error())
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
		level++
	}
	fmt.Fprintf(r.out, "\n")
}

// findGenError searches the chain for the first structured error
func (r *DiagnosticReporter) findGenError(err error) errors.GenError {
	for err != nil {
		if ge, ok := err.(errors.GenError); ok {
			return ge
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = u.Unwrap()
	}
	return nil
}

// innermost returns the deepest structured error in the chain
func innermost(err error) error {
	last := err
	for err != nil {
		if _, ok := err.(errors.GenError); ok {
			last = err
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return last
}
