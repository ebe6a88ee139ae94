package descriptor

import "strings"

//go:generate go tool stringer -type=FormatFunction -linecomment -output=format_string.go

// FormatFunction names the client-side function used to format a metric value.
type FormatFunction int

const (
	_ FormatFunction = iota // zero value is invalid

	BytesFormatter        // formatBytes
	PercentFormatter      // formatPercent
	InstructionsFormatter // formatInstructions
)

// Substrings that select a format function, checked in this order.
const (
	bytesMarker   = "bytes"
	percentMarker = "perc"
)

// SelectFormat picks the format function for a key path by case-sensitive
// substring match.
func SelectFormat(path string) FormatFunction {
	switch {
	case strings.Contains(path, bytesMarker):
		return BytesFormatter
	case strings.Contains(path, percentMarker):
		return PercentFormatter
	default:
		return InstructionsFormatter
	}
}

// IsValid reports whether f is one of the defined format functions.
func (f FormatFunction) IsValid() bool {
	return f >= BytesFormatter && f <= InstructionsFormatter
}
