package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"agm_backend/pkg/i18n"

	"golang.org/x/text/language"
)

// AppError is the error type every service returns to the transport layer.
// Message is an English format string; it doubles as the translation key.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Args     []any       `json:"-"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.text(), e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.text())
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) text() string {
	if len(e.Args) == 0 {
		return e.Message
	}
	return fmt.Sprintf(e.Message, e.Args...)
}

// Localize renders the message in the given language, falling back to English.
func (e *AppError) Localize(tag language.Tag) string {
	return i18n.Sprintf(tag, e.Message, e.Args...)
}

func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// --- generic helpers ---

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", i18n.MsgInternalError, http.StatusInternalServerError)
}

func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", i18n.MsgValidationFailed, http.StatusBadRequest).WithDetails(details)
}

func NewBadRequestError(message string, args ...any) *AppError {
	e := New(CodeValidationFailed, "request", message, http.StatusBadRequest)
	e.Args = args
	return e
}
