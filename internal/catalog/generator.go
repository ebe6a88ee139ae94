package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"metric-descriptor-generator/internal/descriptor"
	"metric-descriptor-generator/internal/diagnostic"
	"metric-descriptor-generator/internal/flatten"
	"metric-descriptor-generator/internal/nested"
)

// Result summarizes a generation run.
type Result struct {
	// Count is the number of entries written to the sink.
	Count       int
	Diagnostics diagnostic.Diagnostics
}

// Generator renders a catalogue entry for every key path of a nested map.
type Generator struct {
	renderer *descriptor.Renderer
	logger   *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for per-run reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a Generator. A nil renderer selects the default renderer.
func New(renderer *descriptor.Renderer, opts ...Option) *Generator {
	if renderer == nil {
		renderer = descriptor.NewRenderer()
	}

	g := &Generator{
		renderer: renderer,
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Descriptors returns the descriptor of every key path of m, in output order.
func (g *Generator) Descriptors(m *nested.Map) []descriptor.Descriptor {
	res := make([]descriptor.Descriptor, 0, nested.CountKeys(m))
	for path := range flatten.Walk(m, "") {
		res = append(res, g.renderer.Describe(path))
	}

	return res
}

// Generate renders every key path of m to sink. The context is checked
// between entries; on cancellation the entries already written stay written.
// A render or sink failure stops the run and is also recorded as an error
// diagnostic in the returned Result.
func (g *Generator) Generate(ctx context.Context, m *nested.Map, sink Sink) (*Result, error) {
	res := &Result{}
	seen := map[string]flatten.KeyPath{}

	err := g.generate(ctx, m, sink, res, seen)
	g.report(res)

	return res, err
}

func (g *Generator) generate(ctx context.Context, m *nested.Map, sink Sink, res *Result, seen map[string]flatten.KeyPath) error {
	for v := range flatten.WalkNodes(m, "") {
		if err := ctx.Err(); err != nil {
			res.Diagnostics.AddError(diagnostic.CodeInterrupted, err.Error(), v.Path.String())
			return fmt.Errorf("generation interrupted after %d entries: %w", res.Count, err)
		}

		d := g.renderer.Describe(v.Path)
		g.check(&res.Diagnostics, v, d, seen)

		block, err := g.renderer.Block(d)
		if err != nil {
			res.Diagnostics.AddError(diagnostic.CodeRenderFailed, err.Error(), v.Path.String())
			return err
		}

		err = sink.WriteBlock(block)
		if err != nil {
			res.Diagnostics.AddError(diagnostic.CodeWriteFailed, err.Error(), v.Path.String())
			return fmt.Errorf("emitting %s: %w", v.Path, err)
		}

		res.Count++

		g.logger.Debug("descriptor emitted",
			slog.String("path", v.Path.String()),
			slog.String("name", d.Name),
			slog.String("format", d.FormatFunction.String()))
	}

	return nil
}

// report logs the diagnostics of a run and its summary.
func (g *Generator) report(res *Result) {
	for _, diag := range res.Diagnostics.All() {
		attrs := []any{slog.String("code", diag.Code), slog.String("path", diag.Path)}
		if len(diag.Related) > 0 {
			attrs = append(attrs, slog.Any("related", diag.Related))
		}

		switch diag.Severity {
		case diagnostic.SeverityError:
			g.logger.Error(diag.Message, attrs...)
		case diagnostic.SeverityWarning:
			g.logger.Warn(diag.Message, attrs...)
		default:
			g.logger.Debug(diag.Message, attrs...)
		}
	}

	if res.Diagnostics.HasErrors() {
		g.logger.Error("catalogue incomplete",
			slog.Int("descriptors", res.Count),
			slog.Int("errors", len(res.Diagnostics.Errors)))

		return
	}

	g.logger.Info("catalogue generated",
		slog.Int("descriptors", res.Count),
		slog.Int("warnings", len(res.Diagnostics.Warnings)))
}

func (g *Generator) check(diags *diagnostic.Diagnostics, v flatten.Visit, d descriptor.Descriptor, seen map[string]flatten.KeyPath) {
	if prev, ok := seen[d.Name]; ok {
		diags.AddWarning(diagnostic.CodeDuplicateName,
			fmt.Sprintf("name %q is already used", d.Name), v.Path.String(), prev.String())
	} else {
		seen[d.Name] = v.Path
	}

	if child, ok := v.Value.(*nested.Map); ok && child.Len() == 0 {
		diags.AddInfo(diagnostic.CodeEmptyMap, "map has no keys", v.Path.String())
	}
}
