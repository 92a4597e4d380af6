package credentials

import (
	"errors"
	"fmt"
)

// ErrIOFailure marks any failure to read or write the backing file.
var ErrIOFailure = errors.New("credential store io failure")

// StoreError describes which operation on which file failed.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("credentials %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Is reports ErrIOFailure for every StoreError.
func (e *StoreError) Is(target error) bool { return target == ErrIOFailure }
