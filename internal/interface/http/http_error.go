package http

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yanqian/kundali/internal/domain/kundali"
	apperrors "github.com/yanqian/kundali/pkg/errors"
)

// HTTPError is the transport view of a failure: status, stable code and a
// message safe to show to API callers.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause.
func (e *HTTPError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// serviceError maps kundali error codes onto HTTP statuses. Engine input
// errors are the caller's fault (400, 422); anything uncoded is a 500
// reported under fallbackCode.
func serviceError(err error, fallbackCode string) *HTTPError {
	switch apperrors.CodeOf(err) {
	case kundali.CodeValidation:
		return NewHTTPError(http.StatusBadRequest, "invalid_input", errMessage(err), err)
	case kundali.CodeDomain:
		return NewHTTPError(http.StatusUnprocessableEntity, "unsupported_input", errMessage(err), err)
	case kundali.CodeNotFound:
		return NewHTTPError(http.StatusNotFound, "not_found", errMessage(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, fallbackCode, "chart service unavailable", err)
	}
}

// bindError reports missing or mistyped request fields as invalid input and
// anything unparseable as an invalid request.
func bindError(err error) *HTTPError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err)
	}
	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, jsonFieldName(fe.Field()))
	}
	message := "missing required fields: " + strings.Join(missing, ", ")
	return NewHTTPError(http.StatusBadRequest, "invalid_input", message, err)
}

// jsonFieldName lower-cases the leading initialism of a Go field name, so
// UTCOffset becomes utcOffset and Latitude becomes latitude.
func jsonFieldName(field string) string {
	runes := []rune(field)
	i := 0
	for i < len(runes) && unicode.IsUpper(runes[i]) {
		i++
	}
	if i > 1 && i < len(runes) {
		i--
	}
	return strings.ToLower(string(runes[:i])) + string(runes[i:])
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
