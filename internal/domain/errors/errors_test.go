package errors

import (
	"net/http"
	"testing"

	"audiotour/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	err := ErrRouteNotFound.WithDetails("route-42")

	assert.True(t, errors.Is(err, ErrRouteNotFound))
	assert.False(t, errors.Is(err, ErrNoStops))
	assert.Equal(t, "route not found: route-42", err.Error())
	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrNoActiveRoute.WrapMessage("update location")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "NO_ACTIVE_ROUTE", appErr.ErrorCode())
}

func TestPersistenceError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewPersistenceError(cause, "save snapshot")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "save snapshot", err.Details())
}
