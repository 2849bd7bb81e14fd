package collection

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySelection is returned by RemoveWhere when nothing matched.
	ErrEmptySelection = errors.New("collection: nothing selected")
	// ErrStorageUnavailable matches every StorageUnavailableError via errors.Is.
	ErrStorageUnavailable = errors.New("collection: storage unavailable")
)

// StorageUnavailableError reports that the key-value store could not serve
// an operation. The mutation it belonged to was not applied.
type StorageUnavailableError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("collection: %s %q: storage unavailable: %v", e.Op, e.Key, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error { return e.Err }

func (e *StorageUnavailableError) Is(target error) bool {
	return target == ErrStorageUnavailable
}
