package types

import (
	"errors"
	"fmt"
	"strings"
)

// Backend lifecycle errors.
var (
	ErrStoreClosed     = errors.New("store is closed")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Operation errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidID   = errors.New("invalid row ID")
	ErrInvalidData = errors.New("invalid entity data")
)

// Import errors.
var (
	// ErrEmptyInput means the CSV payload had no header or no data lines.
	ErrEmptyInput = errors.New("csv payload must contain a header and at least one data line")

	// ErrNoRowsImported means every data line was skipped. The empty
	// replacement snapshot is committed before this is returned.
	ErrNoRowsImported = errors.New("no waypoint rows imported")
)

// HeaderMismatchError reports required CSV columns absent from the header
// line. No rows are written when it is returned.
type HeaderMismatchError struct {
	Missing []string
}

func (e *HeaderMismatchError) Error() string {
	return fmt.Sprintf("csv header missing required columns: %s", strings.Join(e.Missing, ", "))
}
