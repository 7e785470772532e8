// Package abi provides internal utilities for the atom byte layout.
//
// This package contains alignment and checked-arithmetic helpers plus the
// fixed constants of the LV2 atom ABI. Every offset computation in the atom
// package passes through these helpers so that overflow is caught in one
// place rather than at every call site.
//
// # Contents
//
//   - helpers.go: Alignment, padding and overflow-checked uint32 arithmetic
//   - bytes.go: Host byte order field access over a buffer
//
// This package is internal to the module.
package abi
