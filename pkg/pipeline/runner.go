package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/linkplot/pkg/errors"
	"github.com/matzehuels/linkplot/pkg/fai"
	"github.com/matzehuels/linkplot/pkg/linkmap"
	"github.com/matzehuels/linkplot/pkg/observability"
	"github.com/matzehuels/linkplot/pkg/render/mapplot"
	"github.com/matzehuels/linkplot/pkg/render/scene"
	"github.com/matzehuels/linkplot/pkg/render/sink"
	"github.com/matzehuels/linkplot/pkg/stats"
)

// Runner executes the pipeline. It holds no per-run state.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{Logger: logger}
}

// Execute runs every stage and returns the rendered artifacts without writing
// them.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	result := &Result{}

	hooks := observability.Pipeline()

	loadStart := time.Now()
	hooks.OnLoadStart(ctx, opts.MapPath)
	m, unmatched, err := r.Load(ctx, opts)
	if err != nil {
		hooks.OnLoadComplete(ctx, 0, 0, time.Since(loadStart), err)
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Map = m
	result.Unmatched = unmatched
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Groups = m.Len()
	for _, c := range m.Groups() {
		result.Stats.Markers += len(c.Markers)
	}
	hooks.OnLoadComplete(ctx, result.Stats.Groups, result.Stats.Markers, result.Stats.LoadTime, nil)
	r.Logger.Info("loaded map",
		"groups", result.Stats.Groups,
		"markers", result.Stats.Markers,
		"duration", result.Stats.LoadTime)

	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, m.Len())
	sc, err := r.Layout(m)
	if err != nil {
		hooks.OnLayoutComplete(ctx, 0, time.Since(layoutStart), err)
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Scene = sc
	result.Stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, sc.Len(), result.Stats.LayoutTime, nil)
	r.Logger.Info("drew map",
		"shapes", sc.Len(),
		"width", sc.Width,
		"height", sc.Height,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, err := r.Render(ctx, sc, opts.Formats)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	summary, err := stats.Compute(m)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	result.Summary = summary
	return result, nil
}

// Load reads the index and the map named in opts. It also returns the
// reversal names that matched no group.
func (r *Runner) Load(ctx context.Context, opts Options) (*linkmap.Map, []string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	r.Logger.Debug("reading index", "path", opts.IndexPath)
	lengths, err := fai.Load(opts.IndexPath)
	if err != nil {
		return nil, nil, err
	}
	r.Logger.Debug("indexed sequences", "count", len(lengths))

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	r.Logger.Debug("reading map", "path", opts.MapPath)
	m, err := linkmap.Load(opts.MapPath, lengths, opts.Reverse)
	if err != nil {
		return nil, nil, err
	}

	unmatched := m.Unmatched(opts.Reverse)
	for _, name := range unmatched {
		r.Logger.Warn("linkage group to reverse not found in map", "group", name)
	}
	for _, c := range m.Groups() {
		if c.Reversed() {
			r.Logger.Debug("reversed linkage group", "group", c.Group, "genetic_end", c.GeneticEnd)
		}
	}
	return m, unmatched, nil
}

// Layout draws m onto a scene.
func (r *Runner) Layout(m *linkmap.Map) (*scene.Scene, error) {
	return mapplot.Render(m, mapplot.WithLogger(r.Logger))
}

// Render serializes sc to each format.
func (r *Runner) Render(ctx context.Context, sc *scene.Scene, formats []string) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		data, err := renderFormat(ctx, sc, format)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", format, err)
		}
		r.Logger.Debug("generated artifact", "format", format, "bytes", len(data))
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, sc *scene.Scene, format string) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(sc), nil
	case FormatJSON:
		return sink.RenderJSON(sc)
	case FormatPDF:
		return sink.RenderPDF(ctx, sc)
	case FormatPNG:
		return sink.RenderPNG(ctx, sc)
	default:
		return nil, errs.New(errs.ErrCodeUnsupported, "unsupported format: %s", format)
	}
}

// WriteArtifacts writes every artifact of result into dir under the fixed
// output name and returns the paths written, in format order.
func WriteArtifacts(dir string, result *Result) ([]string, error) {
	formats := make([]string, 0, len(result.Artifacts))
	for f := range result.Artifacts {
		formats = append(formats, f)
	}
	slices.Sort(formats)

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := filepath.Join(dir, FileName(f))
		if err := os.WriteFile(path, result.Artifacts[f], 0644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
