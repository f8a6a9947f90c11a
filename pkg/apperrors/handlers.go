package apperrors

import "net/http"

// AsAppError attempts to interpret err as an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HTTPStatus resolves the status code an error should map to. Unknown errors
// are treated as internal.
func HTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPCode
	}
	return http.StatusInternalServerError
}

// UserMessage resolves the user-facing notice for an error. Unknown errors
// map to a generic notice so internals never leak into a flash message.
func UserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Message
	}
	return "Something went wrong. Please try again."
}
