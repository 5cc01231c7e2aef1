package storage

import (
	"errors"
	"fmt"
)

// ErrRead marks a stored value that could not be read or decoded.
var ErrRead = errors.New("storage read failure")

// ErrWrite marks a value that could not be encoded or written.
var ErrWrite = errors.New("storage write failure")

// KeyError describes a failure on a single key. It matches both its Kind (ErrRead or
// ErrWrite) and the underlying cause with errors.Is.
type KeyError struct {
	Op   string
	Key  string
	Kind error
	Err  error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s %q: %v: %v", e.Op, e.Key, e.Kind, e.Err)
}

func (e *KeyError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func readError(op, key string, err error) *KeyError {
	return &KeyError{Op: op, Key: key, Kind: ErrRead, Err: err}
}

func writeError(op, key string, err error) *KeyError {
	return &KeyError{Op: op, Key: key, Kind: ErrWrite, Err: err}
}
