package runner

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
)

// Kind is the closed set of run failures.
type Kind int

const (
	KindOther Kind = iota
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not-found"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrNotFound matches (errors.Is) any *Error of KindNotFound.
var ErrNotFound = errors.New("executable not found")

// Error is returned by Run when the child could not be started or waited on.
// A child that exits non-zero is not an Error.
type Error struct {
	Kind Kind
	Op   string // "start" | "wait"
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Kind == KindNotFound
}

// KindOf returns the Kind of err, or KindOther when err is not an *Error.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindOther
}

func classify(op, path string, err error) *Error {
	kind := KindOther
	if isNotFound(err) {
		kind = KindNotFound
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

func isNotFound(err error) bool {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return true
	}
	return isNotFoundErrno(err)
}
