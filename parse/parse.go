package parse

import (
	"fmt"
	"strconv"

	"github.com/modric/modric/debug"
	"github.com/modric/modric/format"
	"github.com/modric/modric/ir"
	"github.com/modric/modric/token"
)

// Parse parses a single value from d.  Errors from malformed input are
// *token.ParseError.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.EDNFormat, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	if !pOpts.format.Parseable() {
		return nil, fmt.Errorf("%w: cannot parse %s", format.ErrBadFormat, pOpts.format)
	}
	c := token.NewCursor(d)
	c.SkipBOM()
	c.SkipWhitespace()
	if c.Done() {
		return nil, c.ErrAt(token.ErrEmpty, 0)
	}
	p := &parser{c: c, opts: pOpts}
	res, err := p.value()
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse %s: %v\n", pOpts.format, err)
		}
		return nil, err
	}
	if pOpts.requireEnd {
		c.SkipWhitespace()
		if !c.Done() {
			return nil, c.Err(token.ErrTrailing)
		}
	}
	if debug.Parse() {
		debug.Logf("parsed %v\n", res)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	c    *token.Cursor
	opts *parseOpts
}

func (p *parser) json() bool {
	return p.opts.format == format.JSONFormat
}

func (p *parser) trackPos(node *ir.Node, off int) {
	if p.opts.positions != nil {
		p.opts.positions[node] = p.c.Pos(off)
	}
}

func (p *parser) value() (*ir.Node, error) {
	c := p.c
	start := c.Offset()
	var (
		node *ir.Node
		err  error
	)
	b := c.Peek(0)
	switch {
	case c.HasPrefix("null"):
		c.Advance(4)
		node = ir.Null()
	case c.HasPrefix("false"):
		c.Advance(5)
		node = ir.FromBool(false)
	case c.HasPrefix("true"):
		c.Advance(4)
		node = ir.FromBool(true)
	case b == '"':
		var s string
		s, err = token.DecodeString(c)
		node = ir.FromString(s)
	case b == ':' && !p.json():
		var s string
		s, err = token.DecodeKeyword(c)
		node = ir.FromKeyword(s)
	case b == '-' || (b >= '0' && b <= '9'):
		var f float64
		f, err = token.DecodeNumber(c)
		node = ir.FromFloat(f)
	case b == '[':
		node, err = p.array()
	case b == '{':
		node, err = p.object()
	case c.Done():
		return nil, c.Err(token.ErrUnexpectedEnd)
	default:
		return nil, token.UnexpectedErr(strconv.QuoteRune(rune(b)), c.Pos(start))
	}
	if err != nil {
		return nil, err
	}
	p.trackPos(node, start)
	return node, nil
}

// next consumes what lies between two elements of a collection closed by
// end.  It reports whether the collection was closed.
func (p *parser) next(end byte) (bool, error) {
	c := p.c
	skipped := c.SkipWhitespace()
	if c.Peek(0) == end {
		c.Advance(1)
		return true, nil
	}
	if c.Done() {
		return false, c.Err(token.ErrUnexpectedEnd)
	}
	if p.json() {
		if c.Peek(0) != ',' {
			return false, token.ExpectedErr(fmt.Sprintf("',' or '%c'", end), c.Pos(c.Offset()))
		}
		c.Advance(1)
		c.SkipWhitespace()
		if c.Done() {
			return false, c.Err(token.ErrUnexpectedEnd)
		}
		return false, nil
	}
	if !skipped {
		return false, c.Err(token.ErrSeparator)
	}
	return false, nil
}

func (p *parser) array() (*ir.Node, error) {
	c := p.c
	if !c.Enter(p.opts.maxDepth) {
		return nil, c.Err(token.ErrDepth)
	}
	defer c.Leave()
	c.Advance(1)
	c.SkipWhitespace()
	if c.Peek(0) == ']' {
		c.Advance(1)
		return ir.FromSlice(nil), nil
	}
	if c.Done() {
		return nil, c.Err(token.ErrUnexpectedEnd)
	}
	var vals []*ir.Node
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
		closed, err := p.next(']')
		if err != nil {
			return nil, err
		}
		if closed {
			return ir.FromSlice(vals), nil
		}
	}
}

func (p *parser) object() (*ir.Node, error) {
	c := p.c
	if !c.Enter(p.opts.maxDepth) {
		return nil, c.Err(token.ErrDepth)
	}
	defer c.Leave()
	c.Advance(1)
	c.SkipWhitespace()
	if c.Peek(0) == '}' {
		c.Advance(1)
		return ir.FromKeyVals(nil), nil
	}
	if c.Done() {
		return nil, c.Err(token.ErrUnexpectedEnd)
	}
	var kvs []ir.KeyVal
	for {
		key, err := p.key()
		if err != nil {
			return nil, err
		}
		if err := p.keySep(); err != nil {
			return nil, err
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: v})
		closed, err := p.next('}')
		if err != nil {
			return nil, err
		}
		if closed {
			return ir.FromKeyVals(kvs), nil
		}
	}
}

func (p *parser) key() (string, error) {
	c := p.c
	switch c.Peek(0) {
	case '"':
		return token.DecodeString(c)
	case ':':
		if !p.json() {
			return token.DecodeKeyword(c)
		}
	}
	if p.json() {
		return "", token.NewParseError(fmt.Errorf("%w: expected quoted key", token.ErrKey), c.Pos(c.Offset()))
	}
	return "", token.NewParseError(fmt.Errorf("%w: expected keyword or quoted key", token.ErrKey), c.Pos(c.Offset()))
}

// keySep consumes the separator between a key and its value.
func (p *parser) keySep() error {
	c := p.c
	if p.json() {
		c.SkipWhitespace()
		if c.Peek(0) != ':' {
			if c.Done() {
				return c.Err(token.ErrUnexpectedEnd)
			}
			return token.ExpectedErr("':'", c.Pos(c.Offset()))
		}
		c.Advance(1)
		c.SkipWhitespace()
		if c.Peek(0) == '}' {
			return c.Err(token.ErrMissingValue)
		}
		if c.Done() {
			return c.Err(token.ErrUnexpectedEnd)
		}
		return nil
	}
	skipped := c.SkipWhitespace()
	if c.Peek(0) == '}' {
		return c.Err(token.ErrMissingValue)
	}
	if c.Done() {
		return c.Err(token.ErrUnexpectedEnd)
	}
	if !skipped {
		return c.Err(token.ErrSeparator)
	}
	return nil
}
