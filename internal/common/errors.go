package common

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Sentinels for errors.Is checks across package boundaries.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrInconsistentState = errors.New("inconsistent state")
)

// NotFoundError reports a missing user/sit/edge. Access-control denials are
// also surfaced as not-found so that private content existence never leaks.
type NotFoundError struct {
	Resource string
	ID       uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ValidationError rejects bad input before any write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// InconsistentStateError is raised when a sit's cached private marker
// disagrees with its owner's current privacy mode. The condition is
// repairable by re-running the visibility sweep for the owner.
type InconsistentStateError struct {
	OwnerID uint64
	Detail  string
}

func (e *InconsistentStateError) Error() string {
	return fmt.Sprintf("visibility markers for user %d are inconsistent: %s", e.OwnerID, e.Detail)
}

func (e *InconsistentStateError) Unwrap() error { return ErrInconsistentState }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// NotFoundOrErr translates gorm's record-not-found into the domain
// NotFoundError at the repository boundary.
func NotFoundOrErr(err error, resource string, id uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return err
}
