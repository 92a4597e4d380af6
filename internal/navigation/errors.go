package navigation

import (
	"errors"
	"fmt"
)

var ErrIllegalTransition = errors.New("illegal transition")

// TransitionError names the rejected move.
type TransitionError struct {
	From Screen
	To   Screen
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *TransitionError) Is(target error) bool { return target == ErrIllegalTransition }
