package models

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorValidation carries field keyed messages for malformed or semantically invalid input.
type ErrorValidation struct {
	Fields map[string][]string
}

func NewValidationError(field, message string) *ErrorValidation {
	return &ErrorValidation{Fields: map[string][]string{field: {message}}}
}

func (e *ErrorValidation) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ErrorNotFound is returned when a referenced id does not resolve. Relation is set when the
// missing row is a favorite, basket or follow entry rather than an entity.
type ErrorNotFound struct {
	Entity   string
	ID       uint
	Message  string
	Relation bool
}

func (e *ErrorNotFound) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.ID != 0 {
		return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
	}
	return e.Entity + " not found"
}

type ErrorForbidden struct {
	Message string
}

func (e *ErrorForbidden) Error() string {
	if e.Message == "" {
		return "you do not have permission to perform this action"
	}
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e *ErrorUnauthorized) Error() string {
	if e.Message == "" {
		return "authentication credentials were not provided"
	}
	return e.Message
}

// ErrorConflict is returned when a unique relation or entity already exists.
type ErrorConflict struct {
	Message string
}

func (e *ErrorConflict) Error() string {
	return e.Message
}

// ErrorInternalServer wraps unexpected store or storage failures.
type ErrorInternalServer struct {
	Inner error
}

func (e *ErrorInternalServer) Error() string {
	return "internal server error: " + e.Inner.Error()
}

func (e *ErrorInternalServer) Unwrap() error {
	return e.Inner
}
