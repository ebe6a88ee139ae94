package nested

import (
	"fmt"
	"strings"
)

// UnsupportedPolicy decides what happens to values that are neither scalars
// nor mappings (YAML/JSON sequences).
type UnsupportedPolicy int

const (
	// UnsupportedReject fails the load with ErrUnsupportedValue.
	UnsupportedReject UnsupportedPolicy = iota
	// UnsupportedLeaf keeps the value as a leaf holding its YAML text.
	UnsupportedLeaf
)

// String returns the policy name as used in configuration files.
func (p UnsupportedPolicy) String() string {
	switch p {
	case UnsupportedReject:
		return "reject"
	case UnsupportedLeaf:
		return "leaf"
	default:
		return fmt.Sprintf("UnsupportedPolicy(%d)", int(p))
	}
}

// ParseUnsupportedPolicy parses a policy name. An empty name selects the default.
func ParseUnsupportedPolicy(s string) (UnsupportedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return UnsupportedReject, nil
	case "leaf":
		return UnsupportedLeaf, nil
	default:
		return UnsupportedReject, fmt.Errorf("unknown unsupported value policy %q (want reject or leaf)", s)
	}
}

type loadOptions struct {
	unsupported UnsupportedPolicy
}

// Option configures a load.
type Option func(*loadOptions)

// WithUnsupported sets the policy for sequence values.
func WithUnsupported(p UnsupportedPolicy) Option {
	return func(o *loadOptions) {
		o.unsupported = p
	}
}

func buildOptions(opts []Option) loadOptions {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
