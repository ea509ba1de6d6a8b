package encode

import (
	"math"
)

const (
	initialBufferSize = 256
	// DefaultMaxSize bounds the size of printed output.
	DefaultMaxSize = math.MaxInt32
)

// Buffer is the growable output of a print call.  It never holds more than
// its maximum size.
type Buffer struct {
	d   []byte
	max int
}

func NewBuffer(max int) *Buffer {
	if max <= 0 {
		max = DefaultMaxSize
	}
	return &Buffer{
		d:   make([]byte, 0, min(initialBufferSize, max)),
		max: max,
	}
}

// Ensure makes room for n more bytes.  Capacity grows to twice what is
// needed, or to exactly what is needed when twice would pass the maximum.
func (b *Buffer) Ensure(n int) error {
	needed := len(b.d) + n
	if n < 0 || needed < len(b.d) || needed > b.max {
		return &PrintError{Err: ErrAllocation, Size: needed}
	}
	if needed <= cap(b.d) {
		return nil
	}
	size := needed
	if needed <= b.max/2 {
		size = needed * 2
	}
	d := make([]byte, len(b.d), size)
	copy(d, b.d)
	b.d = d
	return nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.Ensure(len(p)); err != nil {
		return 0, err
	}
	b.d = append(b.d, p...)
	return len(p), nil
}

func (b *Buffer) WriteString(s string) (int, error) {
	if err := b.Ensure(len(s)); err != nil {
		return 0, err
	}
	b.d = append(b.d, s...)
	return len(s), nil
}

func (b *Buffer) WriteByte(c byte) error {
	if err := b.Ensure(1); err != nil {
		return err
	}
	b.d = append(b.d, c)
	return nil
}

func (b *Buffer) writeSpaces(n int) error {
	if err := b.Ensure(n); err != nil {
		return err
	}
	for range n {
		b.d = append(b.d, ' ')
	}
	return nil
}

// Bytes returns the buffered output.  It aliases the buffer.
func (b *Buffer) Bytes() []byte { return b.d }
func (b *Buffer) Len() int      { return len(b.d) }
func (b *Buffer) Cap() int      { return cap(b.d) }
