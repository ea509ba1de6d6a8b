package parse

import (
	"github.com/modric/modric/format"
	"github.com/modric/modric/ir"
	"github.com/modric/modric/token"
)

// DefaultMaxDepth is the nesting limit used when MaxDepth is not given.
const DefaultMaxDepth = 1000

type parseOpts struct {
	format     format.Format
	requireEnd bool
	maxDepth   int
	positions  map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

func ParseEDN() ParseOption {
	return ParseFormat(format.EDNFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// RequireEnd makes anything but whitespace after the top level value an
// error.
func RequireEnd() ParseOption {
	return func(o *parseOpts) { o.requireEnd = true }
}

// MaxDepth limits the nesting of arrays and objects.  Values of n below 1
// leave the default in place.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// ParsePositions records the start position of every parsed node in m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
