package domain

import "errors"

// Domain errors represent tooltip construction and lookup failures.
// Runtime transitions never fail; these are distinct from infrastructure errors.
var (
	// ErrElementIDRequired indicates a tooltip was configured without a host element identifier.
	ErrElementIDRequired = errors.New("element id is required")

	// ErrHostNotFound indicates the host element identifier does not resolve in the document.
	// Construction yields no usable tooltip in this case.
	ErrHostNotFound = errors.New("host element not found")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown file format or event kind.
	ErrUnsupportedType = errors.New("unsupported type")
)
