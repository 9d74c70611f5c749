package blobstore

import "fmt"

// TransferError wraps every failure of the adapter, keeping the native cause.
type TransferError struct {
	Op   string
	Path string
	Err  error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("failed to %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

func transferError(op, path string, err error) error {
	return &TransferError{Op: op, Path: path, Err: err}
}
