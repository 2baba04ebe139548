package errors

import (
	"errors"
	"fmt"
)

// ErrorCode is the closed set of outcomes core operations can report.
type ErrorCode string

const (
	// Input errors: bad dates, unsupported file extension, malformed identifier.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Not-found errors: an identifier does not resolve.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Conflict errors: overlapping reservation, room has dependents.
	ErrCodeConflict ErrorCode = "CONFLICT"

	// Consistency errors: the relational store and the file store have
	// diverged, or a multi-step operation would make them diverge.
	ErrCodeInconsistency ErrorCode = "INCONSISTENCY"

	// Auth errors.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Everything else: storage unreachable, disk full, ...
	ErrCodeInternal ErrorCode = "INTERNAL"
)

type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func InvalidInput(message string) *AppError {
	return NewAppError(ErrCodeInvalidInput, message, nil)
}

func NotFound(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return NewAppError(ErrCodeConflict, message, nil)
}

func Inconsistency(message string) *AppError {
	return NewAppError(ErrCodeInconsistency, message, nil)
}

func Unauthorized(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, nil)
}

func Internal(message string, err error) *AppError {
	return NewAppError(ErrCodeInternal, message, err)
}

// CodeOf extracts the ErrorCode from err, or ErrCodeInternal for plain errors.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}
