package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Domain error taxonomy. All failures are local and synchronous: a rejected
// mutation leaves the prior snapshot untouched and is reported inline.

// ValidationError indicates a rejected input (missing required field,
// unknown enum value). No mutation occurs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Message)
	}
	return "validation failed: " + e.Message
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError indicates an operation referenced an unknown entity id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// NewNotFoundError builds a NotFoundError for the given entity kind and id.
func NewNotFoundError(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// ForbiddenError indicates the session role lacks a capability. The policy
// table returns it so non-UI callers cannot bypass role checks.
type ForbiddenError struct {
	Role       string
	Capability string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("role %q may not %s", e.Role, e.Capability)
}

// NewForbiddenError builds a ForbiddenError for the role and capability.
func NewForbiddenError(role, capability string) error {
	return &ForbiddenError{Role: role, Capability: capability}
}

// ErrorResponse defines the structure of error responses.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// JSONDomainError maps a domain error to its HTTP status and writes it.
func JSONDomainError(c *gin.Context, err error) {
	var (
		ve *ValidationError
		nf *NotFoundError
		fe *ForbiddenError
	)
	switch {
	case errors.As(err, &ve):
		JSONError(c, http.StatusBadRequest, "Invalid request", ve.Error())
	case errors.As(err, &nf):
		JSONError(c, http.StatusNotFound, "Not found", nf.Error())
	case errors.As(err, &fe):
		JSONError(c, http.StatusForbidden, "Forbidden", fe.Error())
	default:
		GetLogger().Error("Unexpected error", zap.Error(err))
		JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}
