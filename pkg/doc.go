// Package pkg provides the libraries behind linkplot, a tool that draws a
// genetic linkage map against the assembly it was built on.
//
// # Overview
//
// The pkg directory is organized by stage:
//
//  1. [fai] - sequence lengths from a FASTA index
//  2. [linkmap] - markers, linkage groups and the map loader
//  3. [render] - layout, scenes and output formats
//  4. [stats] - map statistics
//  5. [pipeline] - orchestration (load → layout → render → stats)
//
// # Architecture
//
//	map.tsv + assembly.fa.fai
//	         ↓
//	    [linkmap] package (resolve each group to its sequence)
//	         ↓
//	    [render/mapplot] package (scales, rulers, group tracks)
//	         ↓
//	    [render/sink] package (SVG/JSON, PDF/PNG via rsvg-convert)
//
// # Quick Start
//
//	lengths, _ := fai.Load("assembly.fa.fai")
//	m, _ := linkmap.Load("map.tsv", lengths, []string{"LG3"})
//	sc, _ := mapplot.Render(m)
//	os.WriteFile("linkage-map.svg", sink.RenderSVG(sc), 0o644)
//
// [fai]: github.com/matzehuels/linkplot/pkg/fai
// [linkmap]: github.com/matzehuels/linkplot/pkg/linkmap
// [render]: github.com/matzehuels/linkplot/pkg/render
// [stats]: github.com/matzehuels/linkplot/pkg/stats
// [pipeline]: github.com/matzehuels/linkplot/pkg/pipeline
package pkg
