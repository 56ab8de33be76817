// Package errors contains the service error taxonomy shared by every HTTP-facing service.
package errors

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"net/http"
	"syscall"
)

// Category defines error category
type Category int

const (
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError Category = iota
	// CategoryDataError The client sent malformed input: wrong option count,
	// duration below the floor, password mismatch and similar.
	CategoryDataError
	// CategoryUnauthorized The identity token is missing, invalid or expired
	CategoryUnauthorized
	// CategoryForbidden The caller is known but may not act on the resource
	CategoryForbidden
	// CategoryResourceNotFound The referenced account, ballot or request does not exist
	CategoryResourceNotFound
	// CategoryDataConflict The request collides with existing state
	CategoryDataConflict
	// CategoryDependencyFailure The contract gateway or datastore could not be reached
	CategoryDependencyFailure
	// CategoryConnectionTimeout A dependent service did not answer in time
	CategoryConnectionTimeout
)

func (c Category) String() string {
	switch c {
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryUnauthorized:
		return "CategoryUnauthorized"
	case CategoryForbidden:
		return "CategoryForbidden"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryDataConflict:
		return "CategoryDataConflict"
	case CategoryDependencyFailure:
		return "CategoryDependencyFailure"
	case CategoryConnectionTimeout:
		return "CategoryConnectionTimeout"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError carries a category, the message shown to the caller and the
// underlying error that is only logged.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Message + ": " + err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryForbidden:
		return http.StatusForbidden
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryDataConflict:
		return http.StatusConflict
	case CategoryDependencyFailure:
		return http.StatusBadGateway
	case CategoryConnectionTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// IsRetryable reports whether the caller may retry the failed operation as-is.
// Only dependency failures and timeouts qualify.
func IsRetryable(err error) bool {
	return Is(err, CategoryDependencyFailure) || Is(err, CategoryConnectionTimeout)
}

func newError(cat Category, err error, message, fallback string) error {
	if err == nil {
		err = errors.New(fallback)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// GeneralError returns a general service error.
// The message sent to the user is "Internal Server Error"; err is only logged.
func GeneralError(err error) error {
	return newError(CategoryGeneralError, err, "Internal Server Error", "internal server error")
}

// BadRequestError returns an error with category DataError.
// The message is returned to the user, err is logged.
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, message, "bad request: "+message)
}

// UnAuthorizedError returns an error with category CategoryUnauthorized
func UnAuthorizedError(err error, message string) error {
	return newError(CategoryUnauthorized, err, message, "unauthorized")
}

// ForbiddenError returns an error with category CategoryForbidden
func ForbiddenError(err error, message string) error {
	return newError(CategoryForbidden, err, message, "request forbidden")
}

// ResourceNotFoundError returns an error with category ResourceNotFound
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, message, "resource not found: "+message)
}

// ConflictError returns an error with category CategoryDataConflict
func ConflictError(err error, message string) error {
	return newError(CategoryDataConflict, err, message, "conflict")
}

// DependencyError classifies a failed call to the contract gateway or the datastore.
// Deadline expiry maps to CategoryConnectionTimeout, everything else to
// CategoryDependencyFailure.
func DependencyError(err error, message string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return newError(CategoryConnectionTimeout, err, message, "dependency timeout")
	}
	return newError(CategoryDependencyFailure, err, message, "dependency failure")
}

// StoreError classifies a failed datastore call. An unreachable or timed out
// database is a dependency failure the caller may retry; anything else is an
// internal error.
func StoreError(err error) error {
	if isUnavailable(err) {
		return DependencyError(err, "datastore unavailable")
	}
	return GeneralError(err)
}

func isUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
