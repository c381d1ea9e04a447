package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneMatchesSentinel(t *testing.T) {
	err := Clone(ErrStudentNotFound, "student S001 not found")
	assert.True(t, stderrors.Is(err, ErrStudentNotFound))
	assert.Equal(t, "student S001 not found", err.Message)
	assert.Equal(t, ErrStudentNotFound.Code, err.Code)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("line 3: field count")
	err := Wrap(cause, ErrInvalidArgument.Code, "malformed csv row")
	assert.True(t, stderrors.Is(err, ErrInvalidArgument))
	assert.ErrorContains(t, err, "malformed csv row")
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestCreditLimitError(t *testing.T) {
	err := CreditLimit(16, 4, 18)
	assert.True(t, stderrors.Is(err, ErrCreditLimitExceeded))

	var cl *CreditLimitError
	require.True(t, stderrors.As(error(err), &cl))
	assert.Equal(t, 16, cl.Current)
	assert.Equal(t, 4, cl.Attempted)
	assert.Equal(t, 18, cl.Max)
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	e := FromError(Clone(ErrCourseNotFound, ""))
	assert.Equal(t, ErrCourseNotFound.Code, e.Code)

	e = FromError(CreditLimit(16, 4, 18))
	assert.Equal(t, ErrCreditLimitExceeded.Code, e.Code)

	e = FromError(fmt.Errorf("plain"))
	assert.Equal(t, ErrInvalidArgument.Code, e.Code)
}
