package errors

import (
	"errors"
	"fmt"
)

var (
	ErrMissingTimeBound  = errors.New("missing required time bound")
	ErrInvalidTimeBound  = errors.New("invalid time bound")
	ErrInvalidTimeRange  = errors.New("invalid time range")
	ErrInvalidFilterExpr = errors.New("invalid filter expression")
	ErrInvalidFormat     = errors.New("invalid input format")
	ErrInvalidFilePath   = errors.New("invalid file path")
	ErrInputNotFound     = errors.New("input file not found")
	ErrOutputNotWritable = errors.New("output file not writable")
	ErrConfigNotFound    = errors.New("config not found")
	ErrConfigInvalid     = errors.New("invalid configuration")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrCanceled          = errors.New("operation canceled")
)

func NewTimeBoundError(name, value string, reason error) error {
	return fmt.Errorf("%w: %s=%q: %v", ErrInvalidTimeBound, name, value, reason)
}

func NewMissingBoundError(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingTimeBound, name)
}

func NewTimeRangeError(start, end string) error {
	return fmt.Errorf("%w: start=%s end=%s", ErrInvalidTimeRange, start, end)
}

func NewFilterExprError(src string, reason error) error {
	return fmt.Errorf("%w: %q: %v", ErrInvalidFilterExpr, src, reason)
}

func NewFormatError(format string) error {
	return fmt.Errorf("%w: %s", ErrInvalidFormat, format)
}

func NewInputError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, reason)
}

func NewConfigError(field string, value interface{}) error {
	return fmt.Errorf("%w: field=%s value=%v", ErrConfigInvalid, field, value)
}
