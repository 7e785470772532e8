// Package inspect decodes an atom tree into printable nodes for tooling.
//
// Walking dispatches on the atom type's kind. Malformed children do not stop
// the walk: the offending node carries the error and its siblings are still
// visited where the container layout allows it.
package inspect
