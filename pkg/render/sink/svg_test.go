package sink

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/linkplot/pkg/render/scene"
)

func sampleScene() *scene.Scene {
	s := scene.New(200, 100)
	s.SetPixelScale(2)
	s.Line(scene.Line{X1: 10, Y1: 10, X2: 10, Y2: 90, Stroke: "black", Width: 1, Class: "group-axis"})
	s.Arc(scene.Arc{CX: 40, CY: 10, R: 4, Start: 0, End: 180, Stroke: "black", Width: 0.7, Class: "sequence-cap"})
	s.Text(scene.Text{X: 25, Y: 5, Value: "LG<1>", Size: 20, Fill: "black", Anchor: "middle", Class: "group-label"})
	return s
}

func TestRenderSVG(t *testing.T) {
	out := string(RenderSVG(sampleScene()))

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200.0 100.0" width="400" height="200">`) {
		t.Errorf("unexpected header: %s", strings.SplitN(out, "\n", 2)[0])
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("SVG should be closed")
	}

	for _, want := range []string{
		`<line x1="10.00" y1="10.00" x2="10.00" y2="90.00" stroke="black" stroke-width="1" fill="none" class="group-axis"/>`,
		`<path d="M 44.00 10.00 A 4 4 0 0 0 36.00 10.00"`,
		`class="sequence-cap"`,
		`text-anchor="middle"`,
		`>LG&lt;1&gt;</text>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRenderSVGDefaultScale(t *testing.T) {
	s := scene.New(50, 25)
	s.PixelScale = 0
	out := RenderSVG(s)
	if !bytes.Contains(out, []byte(`width="50" height="25"`)) {
		t.Errorf("zero pixel scale should render at 1x: %s", out)
	}
}

func TestArcPath(t *testing.T) {
	tests := []struct {
		name string
		arc  scene.Arc
		want string
	}{
		{
			name: "upper half",
			arc:  scene.Arc{CX: 10, CY: 10, R: 4, Start: 0, End: 180},
			want: "M 14.00 10.00 A 4 4 0 0 0 6.00 10.00",
		},
		{
			name: "lower half",
			arc:  scene.Arc{CX: 10, CY: 50, R: 4, Start: 180, End: 360},
			want: "M 6.00 50.00 A 4 4 0 0 0 14.00 50.00",
		},
		{
			name: "large arc",
			arc:  scene.Arc{CX: 0, CY: 10, R: 2, Start: 90, End: 360},
			want: "M 0.00 8.00 A 2 2 0 1 0 2.00 10.00",
		},
		{
			name: "full circle",
			arc:  scene.Arc{CX: 10, CY: 10, R: 1, Start: 0, End: 360},
			want: "M 11.00 10.00 A 1 1 0 0 0 9.00 10.00 A 1 1 0 0 0 11.00 10.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := arcPath(tt.arc); got != tt.want {
				t.Errorf("arcPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(sampleScene())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out struct {
		Width      float64          `json:"width"`
		Height     float64          `json:"height"`
		PixelScale float64          `json:"pixel_scale"`
		Shapes     []map[string]any `json:"shapes"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out.Width != 200 || out.Height != 100 || out.PixelScale != 2 {
		t.Errorf("canvas = %vx%v @%v, want 200x100 @2", out.Width, out.Height, out.PixelScale)
	}
	if len(out.Shapes) != 3 {
		t.Fatalf("got %d shapes, want 3", len(out.Shapes))
	}
	kinds := []string{"line", "arc", "text"}
	for i, k := range kinds {
		if out.Shapes[i]["kind"] != k {
			t.Errorf("shape %d kind = %v, want %s", i, out.Shapes[i]["kind"], k)
		}
	}
	if out.Shapes[2]["value"] != "LG<1>" {
		t.Errorf("text value = %v, want LG<1>", out.Shapes[2]["value"])
	}
}
