package errors

import "errors"

var (
	New = errors.New
	Is  = errors.Is
	As  = errors.As
)

type baseErr struct {
	base  error
	inner error
}

func (e *baseErr) Unwrap() error {
	return e.inner
}

// Is reports a match against the base error, the cause chain is handled by errors.Is itself.
func (e *baseErr) Is(target error) bool {
	return target == e.base
}

func (e *baseErr) Error() string {
	if e.inner == nil {
		return e.base.Error()
	}
	return e.base.Error() + ": " + e.inner.Error()
}

// Single ties cause to the sentinel base.
func Single(base, cause error) error {
	return &baseErr{
		base:  base,
		inner: cause,
	}
}

func Cause(err error) error {
	if err == nil {
		return nil
	}
L:
	for {
		switch inner := err.(type) {
		case interface{ Unwrap() error }:
			if inner.Unwrap() == nil {
				break L
			}
			err = inner.Unwrap()
		default:
			break L
		}
	}
	return err
}
