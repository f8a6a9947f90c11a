package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("row missing")
	err := ErrNotFound(cause)

	assert.True(t, Is(err, cause))

	var appErr *AppError
	assert.True(t, As(fmt.Errorf("outer: %w", err), &appErr))
	assert.Equal(t, CodeNotFound, appErr.Code)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, HTTPStatus(ErrMobileAlreadyRegistered()))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(NewForbiddenError("no")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Passwords do not match!", UserMessage(ErrPasswordsDoNotMatch()))
	// Unknown errors never leak internals to the user.
	assert.Equal(t, "Something went wrong. Please try again.", UserMessage(errors.New("pq: connection refused")))
}
