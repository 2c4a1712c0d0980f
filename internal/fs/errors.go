package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// ErrorKind is the coarse classification surfaced to callers for any
// filesystem failure.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindNotFound
	KindAccessDenied
	KindAlreadyExists
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindAccessDenied:
		return "access denied"
	case KindAlreadyExists:
		return "already exists"
	default:
		return "error"
	}
}

// PathError records a failed filesystem operation together with its kind.
type PathError struct {
	Op   string
	Path string
	Kind ErrorKind
	Err  error
}

func (e *PathError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// NewPathError wraps err and classifies it.
func NewPathError(op, path string, err error) *PathError {
	return &PathError{Op: op, Path: path, Kind: Classify(err), Err: err}
}

// Classify maps an OS error to an ErrorKind. Unrecognised errors are KindOther.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindOther
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission), errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM):
		return KindAccessDenied
	case errors.Is(err, fs.ErrExist):
		return KindAlreadyExists
	}
	return KindOther
}

// KindOf returns the kind carried by a PathError in err's chain, falling
// back to Classify.
func KindOf(err error) ErrorKind {
	var pe *PathError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return Classify(err)
}

var errNotDirectory = errors.New("not a directory")
