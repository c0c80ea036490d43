package sheets

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// RemoteError reports a failed call to the remote spreadsheet service:
// network failure, permission denial, quota exhaustion or an invalid range.
// The failure is never retried; it is surfaced to the immediate caller.
type RemoteError struct {
	Op     string // "get" or "update"
	Range  string
	Code   int // HTTP status code when the service responded, 0 otherwise
	Detail string
	Err    error
}

func (e *RemoteError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("sheets %s %q failed with status %d: %s", e.Op, e.Range, e.Code, e.Detail)
	}
	return fmt.Sprintf("sheets %s %q failed: %s", e.Op, e.Range, e.Detail)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// remoteError wraps a sheets/v4 call error, lifting the status code and
// message out of *googleapi.Error when present.
func remoteError(op, range_ string, err error) *RemoteError {
	re := &RemoteError{
		Op:     op,
		Range:  range_,
		Detail: err.Error(),
		Err:    err,
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		re.Code = gerr.Code
		if gerr.Message != "" {
			re.Detail = gerr.Message
		}
	}

	return re
}

// PreconditionError reports an operation attempted before the client holds
// the dimension knowledge it needs.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s precondition not met: %s", e.Op, e.Reason)
}
