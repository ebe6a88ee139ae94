package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metric-descriptor-generator/internal/descriptor"
	"metric-descriptor-generator/internal/nested"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
namespace_prefix: gpu_
help_text: Measured per kernel launch
hint: lower is better
unsupported_values: leaf
output: build/catalog.js
`

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	require.NotNil(t, cfg.NamespacePrefix)
	assert.Equal(t, "gpu_", *cfg.NamespacePrefix)
	require.NotNil(t, cfg.HelpText)
	assert.Equal(t, "Measured per kernel launch", *cfg.HelpText)
	assert.Equal(t, "lower is better", cfg.Hint)
	assert.Equal(t, nested.UnsupportedLeaf, cfg.Unsupported())
	assert.Equal(t, "build/catalog.js", cfg.Output)
}

func TestParse_Defaults(t *testing.T) {
	for _, input := range []string{"", "version: \"1\"\n"} {
		cfg, err := Parse([]byte(input))
		require.NoError(t, err)

		assert.Equal(t, CurrentVersion, cfg.Version)
		assert.Equal(t, descriptor.DefaultNamespacePrefix, *cfg.NamespacePrefix)
		assert.Equal(t, descriptor.DefaultHelpText, *cfg.HelpText)
		assert.Equal(t, "", cfg.Hint)
		assert.Equal(t, nested.UnsupportedReject, cfg.Unsupported())
		assert.Empty(t, cfg.Output)
	}

	assert.Equal(t, Default(), mustParse(t, ""))
}

func TestParse_EmptyPrefixDisablesStripping(t *testing.T) {
	cfg := mustParse(t, `namespace_prefix: ""`)

	r := descriptor.NewRenderer(cfg.RendererOptions()...)
	assert.Equal(t, "memory_flow_general", r.Describe(".memory_flow.general").Name)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad policy", "unsupported_values: ignore", "invalid unsupported_values"},
		{"bad version", `version: "2"`, "unsupported config version"},
		{"unknown field", "prefix: x", "field prefix not found"},
		{"malformed", "help_text: [", "failed to parse config YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generator.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hint: bytes\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bytes", cfg.Hint)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_Options(t *testing.T) {
	cfg := mustParse(t, "namespace_prefix: gpu_\nhelp_text: help\nhint: h\nunsupported_values: leaf\n")

	r := descriptor.NewRenderer(cfg.RendererOptions()...)
	d := r.Describe(".gpu.shared.instructions")
	assert.Equal(t, "shared_instructions", d.Name)
	assert.Equal(t, "help", d.HelpText)
	assert.Equal(t, "h", d.Hint)

	m, err := nested.Parse([]byte(`{"a": [1, 2]}`), cfg.LoadOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
}

func mustParse(t *testing.T, yaml string) *Config {
	t.Helper()

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)

	return cfg
}
