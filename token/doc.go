// Package token provides the byte level pieces of the parser: a bounds
// checked [Cursor], the scalar decoders [DecodeString], [DecodeKeyword] and
// [DecodeNumber], and their printing counterparts [AppendQuote] and
// [AppendNumber].
//
// Errors carry a [Pos] which renders the offending offset with a snippet of
// surrounding input.
package token
