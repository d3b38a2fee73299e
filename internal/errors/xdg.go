// ABOUTME: XDG path errors for config and log directories
// ABOUTME: Used when XDG directories cannot be created

package errors

import "fmt"

type XDGPathError struct {
	Variable      string
	AttemptedPath string
	UnderlyingErr error
}

func NewXDGPathError(variable, path string, err error) *XDGPathError {
	return &XDGPathError{
		Variable:      variable,
		AttemptedPath: path,
		UnderlyingErr: err,
	}
}

func (e *XDGPathError) Error() string {
	return fmt.Sprintf("cannot create %s directory at %s: %v", e.Variable, e.AttemptedPath, e.UnderlyingErr)
}

func (e *XDGPathError) Unwrap() error {
	return e.UnderlyingErr
}

func (e *XDGPathError) SuggestedActions() []string {
	return []string{
		fmt.Sprintf("Check permissions: ls -ld %s", e.AttemptedPath),
		"Check disk space: df -h",
		fmt.Sprintf("Manually create directory: mkdir -p %s", e.AttemptedPath),
	}
}
