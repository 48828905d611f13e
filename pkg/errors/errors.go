// Package errors provides custom error types and utilities for the itinerary
// solver service. It implements a standardized error handling approach
// across the HTTP facade and the solver boundary.
package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a standardized application error with HTTP status code and error code.
type AppError struct {
	Code        string                 `json:"code"`              // Machine-readable error code
	Message     string                 `json:"message"`           // Human-readable error message
	Status      int                    `json:"-"`                 // HTTP status code
	InternalErr error                  `json:"-"`                 // Internal error (not exposed to client)
	Details     map[string]interface{} `json:"details,omitempty"` // Additional error details
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.InternalErr != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.InternalErr)
	}
	return e.Message
}

// Unwrap returns the internal error for error wrapping.
func (e *AppError) Unwrap() error {
	return e.InternalErr
}

// NewBadRequestError creates a new bad request error.
func NewBadRequestError(message string) *AppError {
	if message == "" {
		message = "Bad request"
	}
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// Solver boundary error kinds (see spec §7: InvalidInput, EmptyCatalog,
// NoFeasibleRoute, InternalFault).

// NewInvalidInputError creates an error for a request whose body cannot be
// bound or that fails cross-field validation. The solver never runs.
func NewInvalidInputError(message string) *AppError {
	if message == "" {
		message = "invalid request"
	}
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
		Status:  http.StatusUnprocessableEntity,
	}
}

// NewUnknownStartNodeError creates the 400 error for a start_node_id that
// does not exist in the loaded catalog.
func NewUnknownStartNodeError(startNodeID int) *AppError {
	return &AppError{
		Code:    "UNKNOWN_START_NODE",
		Message: fmt.Sprintf("start_node_id %d is not in the catalog", startNodeID),
		Status:  http.StatusBadRequest,
	}
}

// NewNoFeasibleRouteError creates the 404 error for a best-ever individual
// whose interior is empty (depot-only route).
func NewNoFeasibleRouteError() *AppError {
	return &AppError{
		Code:    "NO_FEASIBLE_ROUTE",
		Message: "no feasible itinerary could be constructed for these preferences",
		Status:  http.StatusNotFound,
	}
}

// NewInternalFaultError wraps an unexpected solver invariant violation.
func NewInternalFaultError(err error) *AppError {
	return &AppError{
		Code:        "INTERNAL_FAULT",
		Message:     "the solver encountered an unexpected internal condition",
		Status:      http.StatusInternalServerError,
		InternalErr: err,
	}
}

// GetAppError extracts AppError from err, or wraps it as a generic internal
// error if err is not already one. ErrorHandler calls this on whatever the
// last gin.Error in the chain carries, since a handler may c.Error a plain
// error in addition to the constructors above.
func GetAppError(err error) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	return &AppError{
		Code:        "INTERNAL_ERROR",
		Message:     "Internal server error",
		Status:      http.StatusInternalServerError,
		InternalErr: err,
	}
}
