package flatten

import "strings"

// Separator joins the segments of a KeyPath.
const Separator = "."

// KeyPath is a dot-joined route from the root of a nested map to a node.
type KeyPath string

// Join appends a key to the path.
func (p KeyPath) Join(key string) KeyPath {
	return p + Separator + KeyPath(key)
}

// Trimmed returns the path without its leading separator.
func (p KeyPath) Trimmed() string {
	return strings.TrimPrefix(string(p), Separator)
}

// Segments splits the path into its keys.
// Keys that themselves contain the separator cannot be told apart.
func (p KeyPath) Segments() []string {
	trimmed := p.Trimmed()
	if trimmed == "" {
		return nil
	}

	return strings.Split(trimmed, Separator)
}

// String implements fmt.Stringer.
func (p KeyPath) String() string {
	return string(p)
}
