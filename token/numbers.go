package token

import (
	"errors"
	"math"
	"strconv"
)

// decimalPoint is the radix character handed to strconv, which does not
// vary by locale.
const decimalPoint = '.'

// numberScratch bounds the number of bytes considered for a single number.
const numberScratch = 64

// DecodeNumber reads the longest floating point prefix at the cursor and
// advances past it.  Magnitudes beyond float64 decode to ±Inf.
func DecodeNumber(c *Cursor) (float64, error) {
	var buf [numberScratch]byte
	n := 0
scan:
	for n < len(buf)-1 && c.CanRead(n+1) {
		b := c.Peek(n)
		switch b {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '+', '-', 'e', 'E':
			buf[n] = b
		case '.':
			buf[n] = decimalPoint
		default:
			break scan
		}
		n++
	}
	m := floatPrefix(buf[:n])
	if m == 0 {
		return 0, c.Err(ErrNumber)
	}
	f, err := strconv.ParseFloat(string(buf[:m]), 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
			return 0, c.Err(ErrNumber)
		}
	}
	c.Advance(m)
	return f, nil
}

// floatPrefix gives the length of the longest prefix of d which is a
// decimal floating point number: an optional sign, digits with an optional
// fraction, and an optional exponent.
func floatPrefix(d []byte) int {
	i := 0
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		i++
	}
	intDigits := asciiDigits(d[i:])
	i += intDigits
	fracDigits := 0
	if i < len(d) && d[i] == decimalPoint {
		fracDigits = asciiDigits(d[i+1:])
		if intDigits+fracDigits != 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits+fracDigits == 0 {
		return 0
	}
	return i + exp(d[i:])
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

// FormatNumber renders a number given its float value and saturated integer
// alias.
func FormatNumber(f float64, i int64) string {
	return string(AppendNumber(nil, f, i))
}

// AppendNumber appends the shortest of the integer, 15 digit and 17 digit
// forms of f which reads back as f.  NaN and infinities have no textual
// form and are written as null.
func AppendNumber(dst []byte, f float64, i int64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	if f == float64(i) && i < math.MaxInt64 {
		return strconv.AppendInt(dst, i, 10)
	}
	n := len(dst)
	res := strconv.AppendFloat(dst, f, 'g', 15, 64)
	back, err := strconv.ParseFloat(string(res[n:]), 64)
	if err != nil || !closeEnough(back, f) {
		res = strconv.AppendFloat(res[:n], f, 'g', 17, 64)
	}
	return res
}

func closeEnough(a, b float64) bool {
	const epsilon = 2.220446049250313e-16
	return math.Abs(a-b) <= max(math.Abs(a), math.Abs(b))*epsilon
}
