package errors

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codeError struct{ code string }

func (e *codeError) Error() string { return e.code }

func TestIsAny(t *testing.T) {
	err := Wrap(io.ErrUnexpectedEOF, "read body")

	assert.True(t, IsAny(err, os.ErrNotExist, io.ErrUnexpectedEOF))
	assert.False(t, IsAny(err, os.ErrNotExist))
	assert.False(t, IsAny(nil, io.EOF))
}

func TestFind(t *testing.T) {
	err := Wrapf(&codeError{code: "23505"}, "insert %s", "profiles")

	found, ok := Find[*codeError](err)
	assert.True(t, ok)
	assert.Equal(t, "23505", found.code)

	_, ok = Find[*codeError](io.EOF)
	assert.False(t, ok)
}
