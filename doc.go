// Package toml implements a span-preserving parser and deserializer for the
// TOML v1.1.0 configuration format.
//
// Every parsed item carries a byte-range [Span] back into the original
// input, so callers can turn a validation failure on a deserialized record
// back into a precise location in the source document. The tree produced by
// [Parse] lives in an [Arena]; [Item], [Table], and [Array] values borrow
// from that arena and from the input slice and must not outlive either.
//
// Parsing is a single fatal-error-on-first-failure pass. Deserializing into
// a user type with [Root.IntoResult] instead accumulates every problem found
// along the way, via [Context.Errors].
package toml
