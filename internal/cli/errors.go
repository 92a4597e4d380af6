package cli

import "errors"

var (
	ErrWrongScreen    = errors.New("command not available on this screen")
	ErrUsage          = errors.New("wrong arguments")
	ErrIncorrectScore = errors.New("incorrect score, want label=number")
)
