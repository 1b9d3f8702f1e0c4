package directory

import (
	"errors"
	"fmt"
)

// ErrUnauthorized means no usable credential was available; the flow
// aborts and the user is sent back to login.
var ErrUnauthorized = errors.New("not authenticated")

// FetchError is any non-2xx, non-validation response from the service.
type FetchError struct {
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("directory request failed with status %d", e.Status)
}

// DecodeError wraps a payload that was not valid JSON or not coercible
// to a user list. Shown to the user as a generic fetch failure.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("directory payload malformed: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ValidationRejected carries a business-rule rejection from the
// service on create/update. Detail is shown to the user verbatim.
type ValidationRejected struct {
	Detail string
}

func (e *ValidationRejected) Error() string {
	return e.Detail
}
