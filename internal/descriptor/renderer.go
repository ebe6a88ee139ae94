package descriptor

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	"metric-descriptor-generator/internal/flatten"
)

// The name slot intentionally receives the display form.
const entryTemplate = `{{.Name}}: {
    name: '{{.DisplayName}}',
    display_name: '{{.DisplayName}}',
    hint: '{{.Hint}}',
    format_function: {{.FormatFunction}},
    help_text: '{{.HelpText}}',
    lower_better: {{.LowerBetter}}
},
`

var entry = template.Must(template.New("entry").Parse(entryTemplate))

// Renderer turns key paths into rendered catalogue entries.
type Renderer struct {
	namespacePrefix string
	helpText        string
	hint            string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithNamespacePrefix sets the leading token stripped from names.
// An empty prefix disables stripping.
func WithNamespacePrefix(prefix string) Option {
	return func(r *Renderer) {
		r.namespacePrefix = prefix
	}
}

// WithHelpText sets the help text placed in every descriptor.
func WithHelpText(text string) Option {
	return func(r *Renderer) {
		r.helpText = text
	}
}

// WithHint sets the hint placed in every descriptor.
func WithHint(hint string) Option {
	return func(r *Renderer) {
		r.hint = hint
	}
}

// NewRenderer creates a Renderer with the default fixed fields.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		namespacePrefix: DefaultNamespacePrefix,
		helpText:        DefaultHelpText,
		hint:            DefaultHint,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Describe derives the descriptor of a key path. Every path yields a descriptor.
func (r *Renderer) Describe(path flatten.KeyPath) Descriptor {
	return Descriptor{
		Name:           Name(path, r.namespacePrefix),
		DisplayName:    DisplayName(path),
		Hint:           r.hint,
		FormatFunction: SelectFormat(string(path)),
		HelpText:       r.helpText,
		LowerBetter:    true,
	}
}

// Render writes the catalogue entry for d to w.
func (r *Renderer) Render(w io.Writer, d Descriptor) error {
	err := entry.Execute(w, d)
	if err != nil {
		return fmt.Errorf("rendering descriptor %s: %w", d.Name, err)
	}

	return nil
}

// RenderPath describes path and renders the result to w.
func (r *Renderer) RenderPath(w io.Writer, path flatten.KeyPath) error {
	return r.Render(w, r.Describe(path))
}

// Block returns the rendered entry for d.
func (r *Renderer) Block(d Descriptor) (string, error) {
	var buf bytes.Buffer

	err := r.Render(&buf, d)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
