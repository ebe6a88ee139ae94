package flatten

import (
	"iter"
	"slices"

	"metric-descriptor-generator/internal/nested"
)

// Visit is a key path together with the node it names.
type Visit struct {
	Path  KeyPath
	Value nested.Value
}

// IsInterior reports whether the visited node is a nested map.
func (v Visit) IsInterior() bool {
	_, ok := v.Value.(*nested.Map)
	return ok
}

// Walk returns the key paths of m in depth-first pre-order, each prefixed
// with prefix. The sequence is lazy and can be ranged over any number of
// times; stopping early ends the traversal.
func Walk(m *nested.Map, prefix KeyPath) iter.Seq[KeyPath] {
	return func(yield func(KeyPath) bool) {
		for v := range WalkNodes(m, prefix) {
			if !yield(v.Path) {
				return
			}
		}
	}
}

// WalkNodes is Walk, yielding the node alongside each path.
func WalkNodes(m *nested.Map, prefix KeyPath) iter.Seq[Visit] {
	return func(yield func(Visit) bool) {
		walk(m, prefix, yield)
	}
}

func walk(m *nested.Map, prefix KeyPath, yield func(Visit) bool) bool {
	for _, e := range m.Entries() {
		path := prefix.Join(e.Key)
		if !yield(Visit{Path: path, Value: e.Value}) {
			return false
		}

		// Scalars are leaves.
		child, ok := e.Value.(*nested.Map)
		if !ok {
			continue
		}

		if !walk(child, path, yield) {
			return false
		}
	}

	return true
}

// Paths collects every key path of m.
func Paths(m *nested.Map, prefix KeyPath) []KeyPath {
	return slices.Collect(Walk(m, prefix))
}
