// Package layout provides the fixed body layouts of atom kinds.
//
// Every atom body is either a fixed-width scalar, variable-length bytes, or a
// container whose body opens with a small fixed header. This package records
// those widths in one table so the writer and reader agree on them.
//
// # Layout Rules
//
//   - Scalars: body width equals the value width (bool/int/float/urid=4, long/double=8)
//   - Text: raw UTF-8 bytes plus one trailing NUL, no body header
//   - Literal: {datatype u32, lang u32} then text
//   - Vector: {child_size u32, child_type u32} then packed elements
//   - Sequence: {unit u32, pad u32} then {time 8B, atom} events
//   - Object: {id u32, otype u32} then {key u32, context u32, atom} properties
//   - Tuple: no body header, back-to-back padded atoms
//
// # Usage
//
//	if uint32(len(body)) < layout.MinBodySize(types.KindVector) {
//		// malformed
//	}
//
// This package is internal to the module.
package layout
