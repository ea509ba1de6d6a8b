// Package parse builds an [ir.Node] tree from EDN-like or JSON text.
//
// In the default EDN mode collections are delimited by whitespace alone
// and object keys are :keywords or quoted strings:
//
//	{:name "modric" :tags [:a :b] :n 1.5}
//
// A key is separated from its value by at least one whitespace byte, as
// are consecutive elements and members.  Commas carry no meaning.
//
// [ParseJSON] selects JSON input instead, where commas separate elements and
// members are written "key": value.
package parse
