package patch

import (
	"fmt"
	"strings"
)

// UsageError reports an invocation that is missing required arguments.
// The caller can fix the command line and retry.
type UsageError struct {
	Missing []string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("missing required arguments: %s", strings.Join(e.Missing, ", "))
}

// DataError reports a bad value, an unreadable or unwritable file, or a
// document that is not a JSON object.
type DataError struct {
	Err error
}

func (e *DataError) Error() string {
	return e.Err.Error()
}

func (e *DataError) Unwrap() error {
	return e.Err
}

func dataErrorf(format string, a ...interface{}) error {
	return &DataError{Err: fmt.Errorf(format, a...)}
}
