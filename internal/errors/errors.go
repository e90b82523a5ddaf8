package errors

import (
	"fmt"
	"net/http"
)

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nf, ok := err.(*NotFoundError); ok {
		return nf, true
	}
	return nil, false
}

type RouteConflictError struct {
	Message string
}

func (e *RouteConflictError) Error() string {
	return e.Message
}

func NewRouteConflictError(message string) *RouteConflictError {
	return &RouteConflictError{Message: message}
}

func IsRouteConflictError(err error) (*RouteConflictError, bool) {
	if rc, ok := err.(*RouteConflictError); ok {
		return rc, true
	}
	return nil, false
}

type StateError struct {
	Status  int
	Message string
}

func (e *StateError) Error() string {
	return e.Message
}

func NewStateError(status int, message string) *StateError {
	return &StateError{Status: status, Message: message}
}

func IsStateError(err error) (*StateError, bool) {
	if se, ok := err.(*StateError); ok {
		return se, true
	}
	return nil, false
}

type MethodNotAllowedError struct {
	Message string
}

func (e *MethodNotAllowedError) Error() string {
	return e.Message
}

func NewMethodNotAllowedError(message string) *MethodNotAllowedError {
	return &MethodNotAllowedError{Message: message}
}

func IsMethodNotAllowedError(err error) (*MethodNotAllowedError, bool) {
	if mna, ok := err.(*MethodNotAllowedError); ok {
		return mna, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{Message: message, Cause: cause}
}

func IsInternalError(err error) (*InternalError, bool) {
	if ie, ok := err.(*InternalError); ok {
		return ie, true
	}
	return nil, false
}

func Status(err error) int {
	switch e := err.(type) {
	case *ValidationError:
		return http.StatusBadRequest
	case *NotFoundError:
		return http.StatusNotFound
	case *RouteConflictError:
		// mismatched ids render as 404, not 409
		return http.StatusNotFound
	case *StateError:
		return e.Status
	case *MethodNotAllowedError:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}
