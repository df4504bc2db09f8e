package repository

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrOutOfRange = errors.New("index out of range")
	ErrCorrupt    = errors.New("corrupt collection")
)

// StorageFault is returned when the store could not be read or written, or
// when a stored collection cannot be decoded. After a failed write the
// persisted state is unknown; the same write may be retried.
type StorageFault struct {
	Op  string
	Err error
}

func (f *StorageFault) Error() string {
	return fmt.Sprintf("storage fault: %s: %v", f.Op, f.Err)
}

func (f *StorageFault) Unwrap() error {
	return f.Err
}

func fault(op string, err error) error {
	return &StorageFault{Op: op, Err: err}
}

// IsStorageFault tells whether err is, or wraps, a StorageFault.
func IsStorageFault(err error) bool {
	var f *StorageFault
	return errors.As(err, &f)
}
