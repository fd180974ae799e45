// Package render draws linkage maps and converts the result between formats.
//
// # Overview
//
// Rendering is split into three layers:
//
//   - [scene]: a format-neutral list of lines, arcs and text
//   - [mapplot]: the linkage-map layout that fills a scene
//   - [sink]: serializers that turn a scene into SVG or JSON
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert SVG to other formats using the
// external rsvg-convert tool (from librsvg).
//
//	sc, err := mapplot.Render(m)
//	svg := sink.RenderSVG(sc)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// [scene]: github.com/matzehuels/linkplot/pkg/render/scene
// [mapplot]: github.com/matzehuels/linkplot/pkg/render/mapplot
// [sink]: github.com/matzehuels/linkplot/pkg/render/sink
package render
