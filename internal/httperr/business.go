package httperr

import "errors"

// ===============================
// Business (state) errors
// ===============================

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// ===============================
// Validation (before any write)
// ===============================

type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Code
}

func ErrValidation(code, message string) error {
	return ValidationError{Code: code, Message: message}
}

// ===============================
// Not found (includes rows hidden by ownership)
// ===============================

type NotFoundError struct {
	Code    string
	Message string
}

func (e NotFoundError) Error() string {
	return e.Code
}

func ErrNotFound(code, message string) error {
	return NotFoundError{Code: code, Message: message}
}

// ===============================
// Backend (store, redis, s3)
// ===============================

type BackendError struct {
	Code string
	Err  error
}

func (e BackendError) Error() string {
	if e.Err == nil {
		return e.Code
	}
	return e.Code + ": " + e.Err.Error()
}

func (e BackendError) Unwrap() error {
	return e.Err
}

func ErrBackend(code string, err error) error {
	return BackendError{Code: code, Err: err}
}

// ===============================
// Unauthorized (no usable session)
// ===============================

type UnauthorizedError struct {
	Code    string
	Message string
}

func (e UnauthorizedError) Error() string {
	return e.Code
}

func ErrUnauthorized(code, message string) error {
	return UnauthorizedError{Code: code, Message: message}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
