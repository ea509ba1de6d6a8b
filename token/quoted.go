package token

import (
	"unicode/utf8"
)

// DecodeString decodes a double quoted string starting at the cursor.  On
// success the cursor is left just past the closing quote.
func DecodeString(c *Cursor) (string, error) {
	if c.Peek(0) != '"' {
		return "", c.Err(ErrExpected)
	}
	return decodeDelimited(c, isQuote, true)
}

// DecodeKeyword decodes a :keyword starting at the cursor.  A keyword ends
// at whitespace, ']', '}' or the end of input; the cursor is left on the
// terminator.
func DecodeKeyword(c *Cursor) (string, error) {
	if c.Peek(0) != ':' {
		return "", c.Err(ErrExpected)
	}
	return decodeDelimited(c, isKeywordEnd, false)
}

func isQuote(b byte) bool {
	return b == '"'
}

func isKeywordEnd(b byte) bool {
	return b <= ' ' || b == ']' || b == '}'
}

func decodeDelimited(c *Cursor, isEnd func(byte) bool, consumeEnd bool) (string, error) {
	d := c.d
	start := c.off + 1
	// first pass: find the terminator and bound the output size.
	end := start
	skipped := 0
	for ; end < len(d) && !isEnd(d[end]); end++ {
		if d[end] != '\\' {
			continue
		}
		if end+1 >= len(d) {
			return "", c.ErrAt(ErrUnterminated, end)
		}
		skipped++
		end++
	}
	if end == len(d) && consumeEnd {
		return "", c.ErrAt(ErrUnterminated, end)
	}
	out := make([]byte, 0, end-start-skipped)
	i := start
	for i < end {
		b := d[i]
		if b != '\\' {
			out = append(out, b)
			i++
			continue
		}
		switch d[i+1] {
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case '"', '\\', '/':
			out = append(out, d[i+1])
		case 'u':
			r, n, err := decodeUTF16(d[:end], i)
			if err != nil {
				return "", c.ErrAt(err, i)
			}
			out = utf8.AppendRune(out, r)
			i += n
			continue
		default:
			return "", c.ErrAt(ErrBadEscape, i)
		}
		i += 2
	}
	c.off = end
	if consumeEnd {
		c.off++
	}
	return string(out), nil
}

// decodeUTF16 decodes the \uXXXX escape at d[i:], joining a following low
// surrogate when the first unit is a high surrogate.  It returns the code
// point and the number of input bytes used.
func decodeUTF16(d []byte, i int) (rune, int, error) {
	if i+6 > len(d) {
		return 0, 0, ErrUnterminated
	}
	first, ok := hex4(d[i+2 : i+6])
	if !ok {
		return 0, 0, ErrBadUnicode
	}
	switch {
	case first >= 0xDC00 && first <= 0xDFFF:
		return 0, 0, ErrBadUnicode
	case first < 0xD800 || first > 0xDBFF:
		return rune(first), 6, nil
	}
	if i+12 > len(d) {
		return 0, 0, ErrUnterminated
	}
	if d[i+6] != '\\' || d[i+7] != 'u' {
		return 0, 0, ErrBadUnicode
	}
	second, ok := hex4(d[i+8 : i+12])
	if !ok || second < 0xDC00 || second > 0xDFFF {
		return 0, 0, ErrBadUnicode
	}
	r := 0x10000 + ((first&0x3FF)<<10 | (second & 0x3FF))
	return rune(r), 12, nil
}

func hex4(d []byte) (uint32, bool) {
	var v uint32
	for _, c := range d {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint32(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= uint32(c-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}

const hexDigits = "0123456789abcdef"

// AppendQuote appends v as a double quoted string.  Quote, backslash and
// control bytes are escaped; all other bytes are copied unchanged.
func AppendQuote(dst []byte, v string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if c < ' ' {
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
			} else {
				dst = append(dst, c)
			}
		}
	}
	return append(dst, '"')
}

func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

// QuotedLen is the length of AppendQuote(nil, v).
func QuotedLen(v string) int {
	n := 2
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"', '\\', '\b', '\f', '\n', '\r', '\t':
			n += 2
		default:
			if c < ' ' {
				n += 6
			} else {
				n++
			}
		}
	}
	return n
}

// KeywordSafe reports whether v can be written as :v and read back
// unchanged.
func KeywordSafe(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if isKeywordEnd(v[i]) || v[i] == '\\' {
			return false
		}
	}
	return true
}
