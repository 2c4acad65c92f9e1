package usecase

import (
	"fmt"

	"github.com/billwiliams/fyyur/pkg/utils"

	"github.com/google/uuid"
)

// ValidationError rejects a whole submission; Fields maps form field to reason.
type ValidationError struct {
	Entity string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %s", e.Entity, utils.FormatValidationErrors(e.Fields))
}

// NotFoundError reports a missing (or unparseable) entity id.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// StorageError wraps a persistence failure. Its cause is for logs only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func validate(entity string, req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Entity: entity, Fields: errs}
	}
	return nil
}

func parseID(entity, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &NotFoundError{Entity: entity, ID: raw}
	}
	return id, nil
}
