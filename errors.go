package guuid

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidFormat indicates that the text is not a valid identifier in any supported notation
	ErrInvalidFormat = errors.New("guuid: not a valid identifier")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("guuid: invalid UUID length (expected 16 bytes)")

	// ErrOutOfRange indicates that a sequential UUID was requested for a time
	// outside the representable window
	ErrOutOfRange = errors.New("guuid: time outside the sequential range")

	// ErrUnsupportedComparison indicates that a comparator was given a value
	// that is not shaped like a 128-bit identifier
	ErrUnsupportedComparison = errors.New("guuid: unsupported comparison")
)

// FormatError is returned by Parse when the input does not decode to 16 bytes.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("guuid: %q is not a valid identifier", e.Input)
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

// RangeError is returned by the sequential generator for instants before
// MinSequentialTime or after MaxSequentialTime.
type RangeError struct {
	Time time.Time
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("guuid: %s is outside the sequential range [%s, %s]",
		e.Time.UTC().Format(time.RFC3339Nano),
		MinSequentialTime.Format(time.RFC3339),
		MaxSequentialTime.Format(time.RFC3339))
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// ComparisonError reports operands a Comparator cannot order.
type ComparisonError struct {
	A, B any
}

func (e *ComparisonError) Error() string {
	return fmt.Sprintf("guuid: cannot compare %T with %T", e.A, e.B)
}

func (e *ComparisonError) Unwrap() error { return ErrUnsupportedComparison }
