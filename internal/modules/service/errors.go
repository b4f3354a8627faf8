package service

import (
	"errors"
	"fmt"

	"github.com/bizplatform/pmcore/internal/modules/repo"
	"github.com/google/uuid"
)

var (
	ErrNotFound  = repo.ErrNotFound
	ErrForbidden = errors.New("forbidden")
)

// ConfigurationError rejects an entity that violates a domain rule at the
// write boundary, e.g. an end date before the start date.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ConfigurationError{Field: field, Reason: reason}
}

// InstantiationError means a template could not be turned into a project.
// Nothing was written.
type InstantiationError struct {
	TemplateID uuid.UUID
	Err        error
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("instantiate template %s: %v", e.TemplateID, e.Err)
}

func (e *InstantiationError) Unwrap() error { return e.Err }
