// Package nested provides the ordered nested-map model that metric samples
// are loaded into, and the loaders that build it from JSON or YAML input.
//
// A Map keeps its keys in insertion order. Each value is either a Scalar
// (raw scalar text, never interpreted) or another *Map, so a Map is always
// a tree.
//
// # Input formats
//
// JSON and YAML documents are both decoded through yaml.v3 node trees,
// which keep keys in document order. Gzip and zstd compressed payloads are
// detected by their magic bytes and decompressed transparently.
//
// # Unsupported values
//
// Sequences are neither scalars nor maps. By default they are rejected
// with ErrUnsupportedValue; with UnsupportedLeaf they are kept as leaves.
package nested
