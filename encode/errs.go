package encode

import (
	"errors"
	"fmt"

	"github.com/modric/modric/ir"
)

var (
	ErrAllocation  = errors.New("output exceeds maximum size")
	ErrUnknownType = errors.New("unknown node type")
	ErrEncoding    = errors.New("encoding")
)

// PrintError reports why a tree could not be printed.
type PrintError struct {
	Err error
	// Size is the buffer size requested when Err is ErrAllocation.
	Size int
	// Type is the offending node type when Err is ErrUnknownType.
	Type ir.Type
}

func (e *PrintError) Unwrap() error {
	return e.Err
}

func (e *PrintError) Error() string {
	switch e.Err {
	case ErrAllocation:
		return fmt.Sprintf("%s: %d bytes", e.Err, e.Size)
	case ErrUnknownType:
		return fmt.Sprintf("%s: %d", e.Err, int(e.Type))
	}
	return e.Err.Error()
}
