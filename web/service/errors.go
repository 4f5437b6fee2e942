package service

import (
	"errors"
	"fmt"
)

// NotFoundError reports a resource that could not be resolved by the given
// field value. Translated to 404 at the boundary.
type NotFoundError struct {
	Resource string
	Field    string
	Value    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %v", e.Resource, e.Field, e.Value)
}

func newNotFound(resource string, id int64) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: "id", Value: id}
}

// APIError is a domain rule violation carrying the HTTP status it maps to.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// ErrInvalidCredentials is returned on any login failure. It never reveals
// whether the identifier or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username/email or password")

// ErrDefaultRoleMissing means the role reference table lost its seed data.
// A server misconfiguration, not a client error.
var ErrDefaultRoleMissing = errors.New("default user role is not configured")

// Token verification failures. All of them surface as 401 externally but
// stay distinguishable for diagnostics.
var (
	ErrTokenEmpty       = errors.New("token is empty")
	ErrTokenMalformed   = errors.New("invalid token")
	ErrTokenExpired     = errors.New("expired token")
	ErrTokenUnsupported = errors.New("unsupported token")
)
