// Package types defines the closed set of atom kinds the runtime understands.
//
// A Kind is the tagged-union discriminant used for dispatch. The URID carried
// in an atom header is only ever compared against the resolved ids of these
// kinds; the runtime never interprets the id itself.
//
// This package is internal to the module.
package types
