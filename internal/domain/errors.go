package domain

import "errors"

var (
	// ErrConfigNotFound is returned when an unknown entity kind is requested.
	ErrConfigNotFound = errors.New("unknown entity kind")

	// ErrEntityNotFound is returned when an entity id does not resolve.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrAlreadyApproved and ErrAlreadyRejected refuse a transition into the
	// state the entity already holds. No mutation occurs.
	ErrAlreadyApproved = errors.New("entity is already approved")
	ErrAlreadyRejected = errors.New("entity is already rejected")
)
