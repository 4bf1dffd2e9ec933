package store

import (
	"fmt"

	"github.com/pkg/errors"
)

// StorageError is the single failure kind every adapter reports, carrying
// a human-readable cause.
type StorageError struct {
	cause string
}

func (e *StorageError) Error() string {
	return "storage error: " + e.cause
}

func newStorageError(format string, args ...interface{}) *StorageError {
	return &StorageError{cause: fmt.Sprintf(format, args...)}
}

// IsStorageError reports whether the cause of err is a StorageError.
func IsStorageError(err error) bool {
	_, ok := errors.Cause(err).(*StorageError)
	return ok
}
