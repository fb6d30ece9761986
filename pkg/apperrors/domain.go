package apperrors

import (
	"net/http"

	"agm_backend/pkg/i18n"
)

// ErrNotFound builds a 404 for a lookup-by-id that found nothing.
func ErrNotFound(domain, format string, args ...any) *AppError {
	e := New(CodeNotFound, domain, format, http.StatusNotFound)
	e.Args = args
	return e
}

// ErrInvalidInput builds a 400 for a request that references something that
// does not exist or breaks a business rule.
func ErrInvalidInput(domain, format string, args ...any) *AppError {
	e := New(CodeInvalidInput, domain, format, http.StatusBadRequest)
	e.Args = args
	return e
}

// ErrDatabase wraps an unexpected persistence failure.
func ErrDatabase(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "database", i18n.MsgDatabaseError, http.StatusInternalServerError)
}

var ErrMissingToken = New(
	CodeUnauthorized,
	"auth",
	i18n.MsgAuthHeaderMissing,
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	i18n.MsgInvalidToken,
	http.StatusUnauthorized,
)

var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	i18n.MsgTokenExpired,
	http.StatusUnauthorized,
)
