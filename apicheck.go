// Package apicheck provides a CLI-based API conformance checker for rustdoc
// documentation. It reads a reference page (e.g. the standard library's
// documentation of a type) and a local page (the same type as documented by
// a reimplementing crate), extracts the documented API surface of each, and
// reports every implementation or method the local crate is missing.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, sqlite/).
package apicheck
