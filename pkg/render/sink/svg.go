package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"

	"github.com/matzehuels/linkplot/pkg/render/scene"
)

// RenderSVG writes s as a standalone SVG document. The view box is the canvas
// size; the width and height attributes are scaled by the pixel scale.
func RenderSVG(s *scene.Scene) []byte {
	scale := s.PixelScale
	if scale <= 0 {
		scale = 1
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.Width, s.Height, s.Width*scale, s.Height*scale)

	for _, sh := range s.Shapes() {
		switch v := sh.(type) {
		case scene.Line:
			renderLine(&buf, v)
		case scene.Arc:
			renderArc(&buf, v)
		case scene.Text:
			renderText(&buf, v)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderLine(buf *bytes.Buffer, l scene.Line) {
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%g" fill="none"%s/>`+"\n",
		l.X1, l.Y1, l.X2, l.Y2, escapeXML(l.Stroke), l.Width, classAttr(l.Class))
}

func renderArc(buf *bytes.Buffer, a scene.Arc) {
	fmt.Fprintf(buf, `  <path d="%s" stroke="%s" stroke-width="%g" fill="none"%s/>`+"\n",
		arcPath(a), escapeXML(a.Stroke), a.Width, classAttr(a.Class))
}

func renderText(buf *bytes.Buffer, t scene.Text) {
	anchor := t.Anchor
	if anchor == "" {
		anchor = "start"
	}
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%g" font-family="sans-serif" fill="%s" text-anchor="%s" dominant-baseline="central"%s>%s</text>`+"\n",
		t.X, t.Y, t.Size, escapeXML(t.Fill), anchor, classAttr(t.Class), escapeXML(t.Value))
}

// arcPath converts an arc to SVG path data. Spans of a full turn or more are
// drawn as two half arcs, which a single SVG arc command cannot express.
func arcPath(a scene.Arc) string {
	span := a.End - a.Start
	if span < 0 {
		span = math.Mod(span, 360) + 360
	}
	x0, y0 := arcPoint(a, a.Start)
	if span >= 360 {
		xm, ym := arcPoint(a, a.Start+180)
		return fmt.Sprintf("M %.2f %.2f A %g %g 0 0 0 %.2f %.2f A %g %g 0 0 0 %.2f %.2f",
			x0, y0, a.R, a.R, xm, ym, a.R, a.R, x0, y0)
	}
	x1, y1 := arcPoint(a, a.Start+span)
	large := 0
	if span > 180 {
		large = 1
	}
	return fmt.Sprintf("M %.2f %.2f A %g %g 0 %d 0 %.2f %.2f", x0, y0, a.R, a.R, large, x1, y1)
}

// arcPoint returns the screen point at deg on the arc's circle.
func arcPoint(a scene.Arc, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return a.CX + a.R*math.Cos(rad), a.CY - a.R*math.Sin(rad)
}

func classAttr(class string) string {
	if class == "" {
		return ""
	}
	return fmt.Sprintf(` class="%s"`, escapeXML(class))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
