package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations. Entity-specific
// variants wrap the generic ones so callers can match either level with
// errors.Is.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a uniqueness
	// constraint. Application-level existence checks catch most duplicates
	// first; this also covers races that slip past them and hit the
	// database constraint.
	ErrDuplicate = errors.New("entity already exists")

	// ErrReferenced is returned when a delete would orphan rows that still
	// reference the entity (e.g. deleting an owner who still has cars).
	ErrReferenced = errors.New("entity is still referenced")

	ErrUserNotFound  = fmt.Errorf("%w: user", ErrNotFound)
	ErrBrandNotFound = fmt.Errorf("%w: brand", ErrNotFound)
	ErrCarNotFound   = fmt.Errorf("%w: car", ErrNotFound)

	ErrUsernameExists  = fmt.Errorf("%w: username", ErrDuplicate)
	ErrEmailExists     = fmt.Errorf("%w: email", ErrDuplicate)
	ErrBrandNameExists = fmt.Errorf("%w: brand name", ErrDuplicate)
	ErrPlateExists     = fmt.Errorf("%w: plate", ErrDuplicate)
)
