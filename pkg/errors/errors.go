package errors

import (
	"errors"
	"fmt"
)

// Error represents a typed domain error.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors by code so clones compare equal to their sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Predefined errors for the domain taxonomy.
var (
	ErrDuplicateCourseCode = New("DUPLICATE_COURSE_CODE", "course code already exists")
	ErrDuplicateStudentID  = New("DUPLICATE_STUDENT_ID", "student id already exists")
	ErrDuplicateEnrollment = New("DUPLICATE_ENROLLMENT", "student already enrolled in course")
	ErrStudentNotFound     = New("STUDENT_NOT_FOUND", "student not found")
	ErrCourseNotFound      = New("COURSE_NOT_FOUND", "course not found")
	ErrNotEnrolled         = New("NOT_ENROLLED", "student not enrolled in course")
	ErrCreditLimitExceeded = New("CREDIT_LIMIT_EXCEEDED", "credit limit exceeded")
	ErrInvalidArgument     = New("INVALID_ARGUMENT", "invalid argument")
)

// CreditLimitError carries the credit arithmetic behind a rejected
// enrollment: what the student already holds, what was attempted, and
// the configured ceiling.
type CreditLimitError struct {
	Current   int
	Attempted int
	Max       int
}

// Error implements the error interface.
func (e *CreditLimitError) Error() string {
	return fmt.Sprintf("credit limit exceeded: current=%d attempted=%d max=%d", e.Current, e.Attempted, e.Max)
}

// Is lets errors.Is match against ErrCreditLimitExceeded.
func (e *CreditLimitError) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == ErrCreditLimitExceeded.Code
}

// CreditLimit builds a CreditLimitError for the given credit values.
func CreditLimit(current, attempted, max int) *CreditLimitError {
	return &CreditLimitError{Current: current, Attempted: attempted, Max: max}
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	var cl *CreditLimitError
	if errors.As(err, &cl) {
		return Wrap(cl, ErrCreditLimitExceeded.Code, ErrCreditLimitExceeded.Message)
	}
	return Wrap(err, ErrInvalidArgument.Code, ErrInvalidArgument.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
