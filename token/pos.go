package token

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// PosDoc maps byte offsets of a document to lines and columns.  The newline
// index is built on first use.
type PosDoc struct {
	d    []byte
	once sync.Once
	n    []int
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

func (p *PosDoc) newlines() []int {
	p.once.Do(func() {
		off := 0
		for {
			i := bytes.IndexByte(p.d[off:], '\n')
			if i == -1 {
				return
			}
			p.n = append(p.n, off+i)
			off += i + 1
		}
	})
	return p.n
}

// LineCol gives the zero based line and column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	n := p.newlines()
	N := len(n)
	di := sort.Search(N, func(i int) bool {
		return n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - n[di-1] - 1
}

// Offset is the inverse of LineCol.  Positions past the end of a line or
// the document are clamped.
func (p *PosDoc) Offset(line, col int) int {
	n := p.newlines()
	start := 0
	switch {
	case line <= 0:
	case line > len(n):
		return len(p.d)
	default:
		start = n[line-1] + 1
	}
	end := len(p.d)
	if line < len(n) {
		end = n[max(line, 0)]
	}
	return min(start+max(col, 0), end)
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	if p.D == nil {
		return fmt.Sprintf("offset %d", p.I)
	}
	d := p.D.d
	lo := min(max(0, p.I-5), len(d))
	hi := min(p.I+5, len(d))
	sample := strconv.Quote(string(d[lo:max(lo, hi)]))
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
