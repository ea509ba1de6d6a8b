package token

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty         = errors.New("empty document")
	ErrUnterminated  = errors.New("unterminated")
	ErrBadEscape     = errors.New("bad escape")
	ErrBadUnicode    = errors.New("bad unicode")
	ErrNumber        = errors.New("number")
	ErrDepth         = errors.New("nesting too deep")
	ErrTrailing      = errors.New("trailing data")
	ErrUnexpected    = errors.New("unexpected")
	ErrUnexpectedEnd = errors.New("unexpected end of input")
	ErrExpected      = errors.New("expected")
	ErrSeparator     = errors.New("missing separator")
	ErrMissingValue  = errors.New("missing value")
	ErrKey           = errors.New("bad key")
)

// ParseError is an error at a position in the input.
type ParseError struct {
	Err error
	Pos Pos
}

func NewParseError(e error, p *Pos) *ParseError {
	return &ParseError{Err: e, Pos: *p}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// Offset is the byte offset at which parsing could not proceed.
func (e *ParseError) Offset() int {
	return e.Pos.I
}

func ExpectedErr(what string, p *Pos) error {
	return NewParseError(fmt.Errorf("%w %s", ErrExpected, what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewParseError(fmt.Errorf("%w %s", ErrUnexpected, what), p)
}
