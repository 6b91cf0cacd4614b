package point

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by this package wraps exactly one
// of them, so callers can branch on kind with errors.Is.
var (
	// ErrValidation marks input with a malformed shape: mismatched slice
	// lengths, a coupled value without exactly two elements, a combination
	// vector that does not cover every source.
	ErrValidation = errors.New("validation error")

	// ErrLookup marks a well-formed request against a key that does not
	// resolve: an unknown source or state name, an hour with no sample.
	ErrLookup = errors.New("lookup error")
)

var (
	ErrInvalidHour   = fmt.Errorf("%w: invalid hour", ErrLookup)
	ErrUnknownSource = fmt.Errorf("%w: invalid source", ErrLookup)
	ErrUnknownState  = fmt.Errorf("%w: invalid state", ErrLookup)

	ErrLengthMismatch = fmt.Errorf("%w: length mismatch", ErrValidation)
	ErrBadCouple      = fmt.Errorf("%w: coupled value must have exactly two elements", ErrValidation)
)
