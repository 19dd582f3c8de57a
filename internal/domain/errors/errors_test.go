package errors

import (
	"context"
	"io/fs"
	"net/http"
	"testing"

	"unifeast/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("identityTier: must be one of student, staff, visitor")

	assert.ErrorIs(t, detailed, ErrValidationFailed)
	assert.NotErrorIs(t, detailed, ErrProfileNotFound)
	assert.Empty(t, ErrValidationFailed.Details())
	assert.Equal(t, "Invalid profile data: identityTier: must be one of student, staff, visitor", detailed.Error())
}

func TestBaseError_WithCause(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "catalog.yaml", Err: fs.ErrNotExist}
	err := ErrCatalogUnavailable.WithCause(cause)

	assert.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "catalog.yaml", pathErr.Path)

	appErr, ok := errors.Find[AppError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "CATALOG_UNAVAILABLE", appErr.ErrorCode())
	assert.Empty(t, appErr.Details())
	assert.Contains(t, err.Error(), "catalog.yaml")

	assert.Same(t, ErrCatalogUnavailable, ErrCatalogUnavailable.WithCause(nil))
}

func TestBackendError(t *testing.T) {
	err := errors.Wrap(NewBackendError("secondary", "find", context.DeadlineExceeded), "resolve profile")

	assert.True(t, IsBackendError(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrProfileNotFound)
	assert.False(t, IsBackendError(ErrProfileNotFound))

	appErr, ok := errors.Find[AppError](err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "BACKEND_UNAVAILABLE", appErr.ErrorCode())
	assert.Equal(t, "secondary find", appErr.Details())
}
