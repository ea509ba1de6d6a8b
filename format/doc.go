// Package format names the notations modric reads and writes.
//
// EDN is the keyword-keyed, whitespace-delimited input notation; JSON is the
// pretty printer's bracket/comma output and is also accepted as input; YAML
// is output only.
package format
