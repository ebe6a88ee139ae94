package descriptor

import (
	"strings"

	"metric-descriptor-generator/internal/flatten"
)

// Defaults for the fixed descriptor fields.
const (
	DefaultNamespacePrefix = "memory_flow_"
	DefaultHelpText        = "This is a detailed explanation something"
	DefaultHint            = ""
)

// Descriptor describes how a metric is labelled and formatted for display.
type Descriptor struct {
	// Name is the underscore-joined identifier, namespace prefix removed.
	Name string
	// DisplayName is the slash-joined path.
	DisplayName    string
	Hint           string
	FormatFunction FormatFunction
	HelpText       string
	LowerBetter    bool
}

// Name derives the catalogue identifier of a key path.
func Name(path flatten.KeyPath, namespacePrefix string) string {
	name := strings.ReplaceAll(path.Trimmed(), flatten.Separator, "_")

	return strings.TrimPrefix(name, namespacePrefix)
}

// DisplayName derives the human-readable form of a key path.
func DisplayName(path flatten.KeyPath) string {
	return strings.ReplaceAll(path.Trimmed(), flatten.Separator, "/")
}
