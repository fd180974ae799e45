package sink

import (
	"encoding/json"

	"github.com/matzehuels/linkplot/pkg/render/scene"
)

type jsonOutput struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	PixelScale float64 `json:"pixel_scale"`
	Shapes     []any   `json:"shapes"`
}

type jsonLine struct {
	Kind   string  `json:"kind"`
	Class  string  `json:"class,omitempty"`
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
	Stroke string  `json:"stroke,omitempty"`
	Width  float64 `json:"width,omitempty"`
}

type jsonArc struct {
	Kind   string  `json:"kind"`
	Class  string  `json:"class,omitempty"`
	CX     float64 `json:"cx"`
	CY     float64 `json:"cy"`
	R      float64 `json:"r"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Stroke string  `json:"stroke,omitempty"`
	Width  float64 `json:"width,omitempty"`
}

type jsonText struct {
	Kind   string  `json:"kind"`
	Class  string  `json:"class,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Value  string  `json:"value"`
	Size   float64 `json:"size"`
	Fill   string  `json:"fill,omitempty"`
	Anchor string  `json:"anchor,omitempty"`
}

// RenderJSON encodes every shape of s, in drawing order, with its kind and
// class. The output is meant for external tools and for diffing layouts.
func RenderJSON(s *scene.Scene) ([]byte, error) {
	out := jsonOutput{
		Width:      s.Width,
		Height:     s.Height,
		PixelScale: s.PixelScale,
		Shapes:     make([]any, 0, s.Len()),
	}
	for _, sh := range s.Shapes() {
		switch v := sh.(type) {
		case scene.Line:
			out.Shapes = append(out.Shapes, jsonLine{
				Kind: "line", Class: v.Class,
				X1: v.X1, Y1: v.Y1, X2: v.X2, Y2: v.Y2,
				Stroke: v.Stroke, Width: v.Width,
			})
		case scene.Arc:
			out.Shapes = append(out.Shapes, jsonArc{
				Kind: "arc", Class: v.Class,
				CX: v.CX, CY: v.CY, R: v.R, Start: v.Start, End: v.End,
				Stroke: v.Stroke, Width: v.Width,
			})
		case scene.Text:
			out.Shapes = append(out.Shapes, jsonText{
				Kind: "text", Class: v.Class,
				X: v.X, Y: v.Y, Value: v.Value, Size: v.Size,
				Fill: v.Fill, Anchor: v.Anchor,
			})
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
