// Package sink serializes a [scene.Scene] into output formats.
//
//   - SVG: [RenderSVG], sized by the scene's pixel scale
//   - JSON: [RenderJSON], every shape with its kind, class and geometry
//   - PDF: [RenderPDF] (requires rsvg-convert)
//   - PNG: [RenderPNG] (requires rsvg-convert)
//
// Basic usage:
//
//	sc, err := mapplot.Render(m)
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(sc)
package sink
