package apperrors

import "net/http"

// Factories for wrapping repository errors.

// ErrNotFound converts a missing-row error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness conflict into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic conflict factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation rejects an operation whose preconditions are not met.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// Prebuilt errors. Messages are the exact notices shown to users.

func ErrInvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "auth", "Invalid mobile number or password. Please try again.", http.StatusUnauthorized)
}

func ErrInvalidResetIdentity() *AppError {
	return New(CodeInvalidCredentials, "auth", "Invalid mobile number or date of birth.", http.StatusUnauthorized)
}

func ErrMobileAlreadyRegistered() *AppError {
	return New(CodeAlreadyExists, "auth", "This mobile number is already registered.", http.StatusConflict)
}

func ErrPasswordsDoNotMatch() *AppError {
	return New(CodeValidationFailed, "auth", "Passwords do not match!", http.StatusBadRequest)
}

func ErrInvalidUserType() *AppError {
	return New(CodeValidationFailed, "auth", "Account type must be farmer or buyer.", http.StatusBadRequest)
}

func ErrLocationRequired() *AppError {
	return New(CodeInvalidOperation, "listing", "Please set your farm location on your profile before adding a listing.", http.StatusBadRequest)
}

func ErrNoItemsAdded() *AppError {
	return New(CodeValidationFailed, "listing", "No items were added. Please enter both quantity and rate.", http.StatusBadRequest)
}

func ErrFarmerNotFound() *AppError {
	return New(CodeNotFound, "profile", "Farmer not found.", http.StatusNotFound)
}

func ErrAccessDenied() *AppError {
	return New(CodeForbidden, "auth", "Access denied.", http.StatusForbidden)
}
