package token

import (
	"errors"
	"testing"
)

func TestDecodeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
		off  int
	}{
		{`""`, "", 2},
		{`"abc" rest`, "abc", 5},
		{`"a\"b"`, `a"b`, 6},
		{`"\b\f\n\r\t\/\\"`, "\b\f\n\r\t/\\", 16},
		{`"\u00e9"`, "é", 8},
		{`"\u20ac"`, "€", 8},
		{`"\ud83d\ude00"`, "😀", 14},
		{`"\ud834\udd1e!"`, "𝄞!", 15},
		{`"\u00E9\u0041"`, "éA", 14},
		{"\"caf\xc3\xa9\"", "café", 7},
	}
	for _, tc := range tests {
		c := NewCursor([]byte(tc.in))
		got, err := DecodeString(c)
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %q want %q", tc.in, got, tc.want)
		}
		if c.Offset() != tc.off {
			t.Errorf("%s: offset %d want %d", tc.in, c.Offset(), tc.off)
		}
	}
}

func TestDecodeStringErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
		off int
	}{
		{`"abc`, ErrUnterminated, 3},
		{`"abc\`, ErrUnterminated, 4},
		{`"\x"`, ErrBadEscape, 1},
		{`"\u12"`, ErrUnterminated, 1},
		{`"\u12zz"`, ErrBadUnicode, 1},
		{`"\udc00"`, ErrBadUnicode, 1},
		{`"\ud800"`, ErrUnterminated, 1},
		{`"\ud800abcdef"`, ErrBadUnicode, 1},
		{`"\ud800\x0000"`, ErrBadUnicode, 1},
		{`"\ud800\u0041"`, ErrBadUnicode, 1},
	}
	for _, tc := range tests {
		c := NewCursor([]byte(tc.in))
		_, err := DecodeString(c)
		if !errors.Is(err, tc.err) {
			t.Errorf("%s: got %v want %v", tc.in, err, tc.err)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%s: not a ParseError", tc.in)
			continue
		}
		if pe.Offset() != tc.off {
			t.Errorf("%s: offset %d want %d", tc.in, pe.Offset(), tc.off)
		}
	}
}

func TestDecodeKeyword(t *testing.T) {
	tests := []struct {
		in   string
		want string
		off  int
	}{
		{":a", "a", 2},
		{":key 1", "key", 4},
		{":k]", "k", 2},
		{":k}", "k", 2},
		{":a\\nb ", "a\nb", 5},
		{": x", "", 1},
		{":a[b", "a[b", 4},
	}
	for _, tc := range tests {
		c := NewCursor([]byte(tc.in))
		got, err := DecodeKeyword(c)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %q want %q", tc.in, got, tc.want)
		}
		if c.Offset() != tc.off {
			t.Errorf("%q: offset %d want %d", tc.in, c.Offset(), tc.off)
		}
	}
	if _, err := DecodeKeyword(NewCursor([]byte(`:a\`))); !errors.Is(err, ErrUnterminated) {
		t.Errorf("trailing backslash: %v", err)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", `""`},
		{"a\"b", `"a\"b"`},
		{"\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"\x01\x1f", `"\u0001\u001f"`},
		{"/é\x7f", "\"/é\x7f\""},
		{`\`, `"\\"`},
	}
	for _, tc := range tests {
		got := Quote(tc.in)
		if got != tc.want {
			t.Errorf("Quote(%q) = %s want %s", tc.in, got, tc.want)
		}
		if n := QuotedLen(tc.in); n != len(got) {
			t.Errorf("QuotedLen(%q) = %d want %d", tc.in, n, len(got))
		}
		c := NewCursor([]byte(got))
		back, err := DecodeString(c)
		if err != nil || back != tc.in {
			t.Errorf("decode(%s) = %q, %v", got, back, err)
		}
	}
}

func TestKeywordSafe(t *testing.T) {
	for _, s := range []string{"a", "key-1", "a:b", "é", "[x"} {
		if !KeywordSafe(s) {
			t.Errorf("%q should be keyword safe", s)
		}
	}
	for _, s := range []string{"", "a b", "a]", "a}", "a\\", "a\n"} {
		if KeywordSafe(s) {
			t.Errorf("%q should not be keyword safe", s)
		}
	}
}
