// Package urid provides an in-process URI to URID registry.
//
// A Map interns URIs into small integer ids starting at 1; 0 is reserved and
// never assigned. Ids are stable and injective for the lifetime of the Map.
// Map satisfies atomruntime.Registry and is safe for concurrent use.
//
// # Type Tables
//
// A Table is a YAML snapshot of a registry. Tools use tables to decode
// buffers captured from another process:
//
//	entries:
//	  - id: 1
//	    uri: http://lv2plug.in/ns/ext/atom#Int
//	  - id: 2
//	    uri: http://lv2plug.in/ns/ext/atom#Float
//
//	table, err := urid.LoadTable(f)
//	m, err := urid.NewMapFromTable(table)
package urid
