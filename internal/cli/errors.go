package cli

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/ruboto/rubotogen/internal/errors"
)

// Exit codes
const (
	ExitSuccess    = 0
	ExitGeneral    = 1
	ExitConfig     = 2
	ExitDescriptor = 3
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ConfigError creates an ExitError with ExitConfig code.
func ConfigError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitConfig, Message: msg, Err: err}
}

// DescriptorError creates an ExitError with ExitDescriptor code.
func DescriptorError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitDescriptor, Message: msg, Err: err}
}

// GeneralError creates an ExitError with ExitGeneral code.
func GeneralError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitGeneral, Message: msg, Err: err}
}

// ExitCode picks the process exit code for err: an explicit ExitError wins,
// otherwise the structured error code decides.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}
	switch {
	case errors.HasCode(err, errors.ConfigurationErrorCode):
		return ExitConfig
	case errors.HasCode(err, errors.DescriptorErrorCode), errors.HasCode(err, errors.SyntaxErrorCode):
		return ExitDescriptor
	default:
		return ExitGeneral
	}
}

// ReportAndExitCode prints err through the reporter and returns its exit code
func ReportAndExitCode(err error, reporter *DiagnosticReporter, out io.Writer) int {
	if err == nil {
		return ExitSuccess
	}
	if reporter == nil {
		reporter = NewDiagnosticReporter(false, out)
	}
	reporter.ReportError(err)
	return ExitCode(err)
}
