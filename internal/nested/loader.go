package nested

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

var (
	// ErrRootNotMapping is returned when the document root is not a mapping.
	ErrRootNotMapping = errors.New("document root is not a mapping")
	// ErrDuplicateKey is returned when a mapping repeats a key.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrUnsupportedValue is returned for sequence values under UnsupportedReject.
	ErrUnsupportedValue = errors.New("unsupported value")
	// ErrMultipleDocuments is returned when the input holds more than one document.
	ErrMultipleDocuments = errors.New("input holds more than one document")
	// ErrInvalidKey is returned for mapping keys that are not scalars.
	ErrInvalidKey = errors.New("invalid key")
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// LoadFile reads and parses a metrics document from the given path.
func LoadFile(path string, opts ...Option) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metrics file %s: %w", path, err)
	}

	m, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Load reads a metrics document from r until EOF and parses it.
func Load(r io.Reader, opts ...Option) (*Map, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read metrics input: %w", err)
	}

	return Parse(data, opts...)
}

// Parse decodes a JSON or YAML document, decompressing it first if it is
// gzip or zstd encoded.
func Parse(data []byte, opts ...Option) (*Map, error) {
	data, err := decompress(data)
	if err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node

	err = dec.Decode(&doc)
	if errors.Is(err, io.EOF) {
		return New(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse metrics document: %w", err)
	}

	// The input must hold exactly one document.
	var extra yaml.Node

	err = dec.Decode(&extra)
	switch {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, fmt.Errorf("%w: unexpected content after the first document: %v", ErrMultipleDocuments, err)
	default:
		return nil, fmt.Errorf("%w (second document at line %d)", ErrMultipleDocuments, extra.Line)
	}

	// Comment-only input decodes to a zero node.
	if doc.Kind == 0 {
		return New(), nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return New(), nil
		}

		root = root.Content[0]
	}

	root = resolveAlias(root)
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w (line %d)", ErrRootNotMapping, root.Line)
	}

	d := decoder{opts: buildOptions(opts)}

	return d.mapping(root, "")
}

type decoder struct {
	opts loadOptions
}

func (d *decoder) mapping(node *yaml.Node, path string) (*Map, error) {
	m := New()

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := resolveAlias(node.Content[i])
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w at %s (line %d): mapping keys must be scalars", ErrInvalidKey, displayPath(path), keyNode.Line)
		}

		key := keyNode.Value
		childPath := path + "." + key

		if _, ok := m.Get(key); ok {
			return nil, fmt.Errorf("%w %q at %s (line %d)", ErrDuplicateKey, key, displayPath(path), keyNode.Line)
		}

		v, err := d.value(node.Content[i+1], childPath)
		if err != nil {
			return nil, err
		}

		m.Set(key, v)
	}

	return m, nil
}

func (d *decoder) value(node *yaml.Node, path string) (Value, error) {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.MappingNode:
		return d.mapping(node, path)

	case yaml.ScalarNode:
		return Scalar(node.Value), nil

	case yaml.SequenceNode:
		if d.opts.unsupported == UnsupportedLeaf {
			text, err := yaml.Marshal(node)
			if err != nil {
				return nil, fmt.Errorf("failed to encode sequence at %s: %w", displayPath(path), err)
			}

			return Scalar(strings.TrimSpace(string(text))), nil
		}

		return nil, fmt.Errorf("%w at %s (line %d): sequences are not supported", ErrUnsupportedValue, displayPath(path), node.Line)

	default:
		return nil, fmt.Errorf("%w at %s (line %d): unexpected node kind %d", ErrUnsupportedValue, displayPath(path), node.Line, node.Kind)
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

func displayPath(path string) string {
	if path == "" {
		return "<root>"
	}

	return strings.TrimPrefix(path, ".")
}

func decompress(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		gr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gr.Close()

		out, err := io.ReadAll(gr)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress gzip input: %w", err)
		}

		return out, nil

	case bytes.HasPrefix(data, zstdMagic):
		decoder, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		defer decoder.Close()

		out, err := io.ReadAll(decoder)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress zstd input: %w", err)
		}

		return out, nil

	default:
		return data, nil
	}
}
