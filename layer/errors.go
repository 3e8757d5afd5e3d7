package layer

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is returned when an operation would break a stack
// invariant. The stack is left unchanged.
var ErrInvalidOperation = errors.New("layer: invalid operation")

// ErrReservedLayer is returned when removing the reserved layer id 0.
var ErrReservedLayer = fmt.Errorf("%w: layer %d is reserved for the canvas", ErrInvalidOperation, Reserved)
