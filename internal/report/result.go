package report

import (
	"errors"
	"fmt"

	"github.com/username/easter-report/internal/yearspec"
)

// Result is the outcome of a report run; its value doubles as the process exit code
type Result int

const (
	ResultOK Result = iota
	ResultInvalidFilename
	ResultInvalidInput
	ResultIOError
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "Ok"
	case ResultInvalidFilename:
		return "InvalidFilename"
	case ResultInvalidInput:
		return "InvalidInput"
	case ResultIOError:
		return "IOError"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// ExitCode returns the process exit code for the result
func (r Result) ExitCode() int {
	return int(r)
}

// ErrInvalidFilename is returned for destinations rejected by ValidFilename
var ErrInvalidFilename = errors.New("invalid output filename")

// ErrIO wraps every failure to render or write the report file
var ErrIO = errors.New("report I/O error")

// ResultFromError classifies an error into a Result
func ResultFromError(err error) Result {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, ErrInvalidFilename):
		return ResultInvalidFilename
	case errors.Is(err, yearspec.ErrInvalidInput):
		return ResultInvalidInput
	default:
		return ResultIOError
	}
}
