// Package libdiff compares documents.
//
// [Diff] walks two trees and reports the changed paths.  Object members are
// aligned by key and array elements by a summary of their type and scalar
// value, both with a Myers diff from go-diff.  [Lines] is a plain line diff
// of printed text.
package libdiff
