// Package pipeline runs the complete load → layout → render → report flow.
//
// The CLI builds an [Options] value (from flags, optionally layered over a
// TOML config file) and hands it to a [Runner]. Nothing here reads process
// globals; every input arrives through Options.
//
// # Stages
//
//  1. Load: read the FASTA index, then the map, resolving and reversing groups
//  2. Layout: compute shared scales and draw the scene
//  3. Render: serialize the scene to each requested format
//  4. Report: aggregate map statistics
//
// Any error aborts the run before files are written.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    MapPath:   "map.txt",
//	    IndexPath: "genome.fa.fai",
//	    Reverse:   []string{"LG3"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	paths, err := pipeline.WriteArtifacts(".", result)
package pipeline

import (
	"slices"
	"strings"
	"time"

	errs "github.com/matzehuels/linkplot/pkg/errors"
	"github.com/matzehuels/linkplot/pkg/linkmap"
	"github.com/matzehuels/linkplot/pkg/render/scene"
	"github.com/matzehuels/linkplot/pkg/stats"
)

// OutputBase is the fixed file name, without extension, of the diagram.
const OutputBase = "linkage-map"

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Options is the explicit configuration of one run.
type Options struct {
	MapPath   string   `toml:"map"`
	IndexPath string   `toml:"index"`
	Reverse   []string `toml:"reverse"`
	Formats   []string `toml:"formats"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Map       *linkmap.Map
	Scene     *scene.Scene
	Summary   stats.Summary
	Artifacts map[string][]byte

	// Unmatched lists reversal names that matched no group.
	Unmatched []string

	Stats Stats
}

// Stats contains pipeline execution timings and sizes.
type Stats struct {
	Groups     int
	Markers    int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// ParseList splits a comma-separated flag value, trimming blanks and
// dropping empty entries.
func ParseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ValidateFormats checks that all requested formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if !ValidFormats[f] {
			return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'json', 'pdf', or 'png')", f)
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required paths and fills in the default
// format.
func (o *Options) ValidateAndSetDefaults() error {
	if o.MapPath == "" {
		return errs.New(errs.ErrCodeInvalidInput, "map path is required")
	}
	if o.IndexPath == "" {
		return errs.New(errs.ErrCodeInvalidInput, "index path is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	o.Formats = dedupe(o.Formats)
	o.Reverse = dedupe(o.Reverse)
	return ValidateFormats(o.Formats)
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// FileName returns the output file name for format.
func FileName(format string) string {
	return OutputBase + "." + format
}
