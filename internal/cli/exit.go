package cli

import "fmt"

// Exit codes: 0 success, 1 unexpected, 2 usage, 4 not found, 6 validation, 8 internal.
const (
	CodeSuccess    = 0
	CodeUsage      = 2
	CodeNotFound   = 4
	CodeValidation = 6
	CodeInternal   = 8
)

// ExitError carries a process exit code and the underlying error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

func usageErr(err error) error      { return &ExitError{Code: CodeUsage, Err: err} }
func notFoundErr(err error) error   { return &ExitError{Code: CodeNotFound, Err: err} }
func validationErr(err error) error { return &ExitError{Code: CodeValidation, Err: err} }
func internalErr(err error) error   { return &ExitError{Code: CodeInternal, Err: err} }

// CodeOf returns the exit code for err: its own code for *ExitError, else 1.
func CodeOf(err error) int {
	if err == nil {
		return CodeSuccess
	}
	if ex, ok := err.(*ExitError); ok {
		return ex.Code
	}
	return 1
}
