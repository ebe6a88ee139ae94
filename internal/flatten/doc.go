// Package flatten enumerates the key paths of a nested metrics map.
//
// Paths are produced depth-first in pre-order: each key's path is emitted
// before the paths of its children, and siblings follow the map's
// insertion order. Interior nodes therefore appear in the output together
// with every path below them. This order is the order descriptors are
// rendered in.
//
// Paths are dot-joined and start with the separator when walking from an
// empty prefix:
//
//	{"a": {"b": 1, "bytes_c": 2}}  ->  .a  .a.b  .a.bytes_c
package flatten
