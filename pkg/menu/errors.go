package menu

import (
	"errors"
	"fmt"
)

var (
	// ErrCycle is returned when parent references loop back on themselves.
	ErrCycle = errors.New("cyclic menu structure")

	// ErrInvalidKind is returned for an element type that is not a valid tag name.
	ErrInvalidKind = errors.New("invalid menu kind")

	// ErrInvalidDefinition is returned when a menu definition cannot be loaded.
	ErrInvalidDefinition = errors.New("invalid menu definition")
)

// CycleError identifies the item at which a render revisited the tree.
type CycleError struct {
	ItemID int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v at item %d", ErrCycle, e.ItemID)
}

// Unwrap makes errors.Is(err, ErrCycle) hold.
func (e *CycleError) Unwrap() error {
	return ErrCycle
}
