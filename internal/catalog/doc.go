// Package catalog composes key-path flattening and descriptor rendering
// into a single pass that feeds rendered entries to a Sink.
//
// Generation is synchronous. Entries reach the sink in the depth-first
// pre-order produced by the flatten package, one entry per key path.
package catalog
