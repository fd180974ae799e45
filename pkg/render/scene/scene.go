// Package scene is a minimal retained drawing surface.
//
// A [Scene] records lines, arcs and text in insertion order together with a
// canvas size. It knows nothing about output formats; the sink package turns
// a scene into SVG or JSON. Coordinates follow SVG conventions: the origin is
// the top-left corner and y grows downward.
package scene

// Shape is a primitive placed on a scene: [Line], [Arc] or [Text].
type Shape interface {
	ShapeClass() string
}

// Line is a straight stroke from (X1, Y1) to (X2, Y2).
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	Width          float64
	Class          string
}

// Arc is a circular arc around (CX, CY). Angles are in degrees and run
// counter-clockwise as seen on screen, from Start to End.
type Arc struct {
	CX, CY, R  float64
	Start, End float64
	Stroke     string
	Width      float64
	Class      string
}

// Text is a label centered on (X, Y).
type Text struct {
	X, Y   float64
	Value  string
	Size   float64
	Fill   string
	Anchor string // start, middle or end
	Class  string
}

func (l Line) ShapeClass() string { return l.Class }
func (a Arc) ShapeClass() string  { return a.Class }
func (t Text) ShapeClass() string { return t.Class }

// Scene is an ordered collection of shapes on a fixed-size canvas.
type Scene struct {
	Width, Height float64

	// PixelScale multiplies the canvas size to get the rendered size.
	PixelScale float64

	shapes []Shape
}

// New creates an empty scene of the given size.
func New(width, height float64) *Scene {
	return &Scene{Width: width, Height: height, PixelScale: 1}
}

// SetSize changes the canvas size.
func (s *Scene) SetSize(width, height float64) {
	s.Width, s.Height = width, height
}

// SetPixelScale sets the output scale factor.
func (s *Scene) SetPixelScale(scale float64) {
	s.PixelScale = scale
}

// Line adds a line.
func (s *Scene) Line(l Line) { s.shapes = append(s.shapes, l) }

// Arc adds an arc.
func (s *Scene) Arc(a Arc) { s.shapes = append(s.shapes, a) }

// Text adds a label.
func (s *Scene) Text(t Text) { s.shapes = append(s.shapes, t) }

// Add appends shapes of any kind.
func (s *Scene) Add(shapes ...Shape) { s.shapes = append(s.shapes, shapes...) }

// Shapes returns the shapes in insertion order.
func (s *Scene) Shapes() []Shape { return s.shapes }

// Len returns the number of shapes.
func (s *Scene) Len() int { return len(s.shapes) }

// ByClass returns the shapes whose class equals class.
func (s *Scene) ByClass(class string) []Shape {
	var out []Shape
	for _, sh := range s.shapes {
		if sh.ShapeClass() == class {
			out = append(out, sh)
		}
	}
	return out
}
