// Package config loads the generator configuration file.
//
// The file is YAML:
//
//	version: "1"
//	namespace_prefix: memory_flow_
//	help_text: This is a detailed explanation something
//	hint: ""
//	unsupported_values: reject   # reject | leaf
//	output: ""                   # empty writes to stdout
//
// Every field is optional. Omitted fields take the defaults shown above;
// an explicit empty namespace_prefix disables prefix stripping.
package config
