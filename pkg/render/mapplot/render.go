package mapplot

import (
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/linkplot/pkg/linkmap"
	"github.com/matzehuels/linkplot/pkg/render/scene"
)

// Shape classes.
const (
	ClassRuler            = "ruler"
	ClassRulerTick        = "ruler-tick"
	ClassRulerLabel       = "ruler-label"
	ClassRulerUnit        = "ruler-unit"
	ClassGroupAxis        = "group-axis"
	ClassSequence         = "sequence"
	ClassSequenceCap      = "sequence-cap"
	ClassMarker           = "marker"
	ClassMarkerDiscordant = "marker-discordant"
	ClassPhysicalTick     = "physical-tick"
	ClassConnector        = "connector"
	ClassGroupLabel       = "group-label"
)

// Colors.
const (
	ColorInk        = "black"
	ColorDiscordant = "magenta"
	ColorConnector  = "green"
)

// Glyph geometry.
const (
	sequenceDX    = 30.0 // from the genetic axis to the sequence glyph center
	sequenceWidth = 8.0
	markerHalf    = 2.5
	rulerTickLen  = 5.0
	rulerLabelDX  = 15.0
	rulerUnitDX   = 40.0
	groupLabelDX  = 15.0
	groupLabelDY  = 25.0
)

type side int

const (
	left side = iota
	right
)

// Option configures [Render].
type Option func(*renderer)

type renderer struct {
	logger *log.Logger
}

// WithLogger logs each group at debug level as it is drawn.
func WithLogger(l *log.Logger) Option {
	return func(r *renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// Render lays out m and draws it onto a new scene.
func Render(m *linkmap.Map, opts ...Option) (*scene.Scene, error) {
	r := renderer{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&r)
	}

	l, err := ComputeLayout(m)
	if err != nil {
		return nil, err
	}
	return r.draw(l), nil
}

// Draw renders a precomputed layout.
func Draw(l Layout, opts ...Option) *scene.Scene {
	r := renderer{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&r)
	}
	return r.draw(l)
}

func (r *renderer) draw(l Layout) *scene.Scene {
	s := scene.New(l.Width, l.Height)
	s.SetPixelScale(PixelScale)

	drawRuler(s, l, l.LeftRulerX, "cM", CMTick, l.CMScale, left)
	for _, slot := range l.Slots {
		r.logger.Debug("Drawing", "group", slot.Chromosome.Group, "detail", slot.Chromosome.String())
		drawGroup(s, l, slot)
	}
	drawRuler(s, l, l.RightRulerX, "Mb", MbTick, l.MbScale, right)
	return s
}

func drawRuler(s *scene.Scene, l Layout, x float64, unit string, tick, scale float64, sd side) {
	dir := 1.0
	if sd == left {
		dir = -1.0
	}
	top, length := l.Baseline, l.RulerLength

	s.Line(scene.Line{X1: x, Y1: top, X2: x, Y2: top + length, Stroke: ColorInk, Width: 1.5, Class: ClassRuler})
	s.Text(scene.Text{
		X: x + dir*rulerUnitDX, Y: top + length/2,
		Value: unit, Size: 15, Fill: ColorInk, Anchor: "middle", Class: ClassRulerUnit,
	})

	for i := 0; ; i++ {
		offset := float64(i) * tick * scale
		if offset >= length {
			break
		}
		y := top + offset
		s.Line(scene.Line{X1: x, Y1: y, X2: x + dir*rulerTickLen, Y2: y, Stroke: ColorInk, Width: 1, Class: ClassRulerTick})
		s.Text(scene.Text{
			X: x + dir*rulerLabelDX, Y: y,
			Value: strconv.FormatFloat(float64(i)*tick, 'f', -1, 64),
			Size:  10, Fill: ColorInk, Anchor: "middle", Class: ClassRulerLabel,
		})
	}
}

func drawGroup(s *scene.Scene, l Layout, slot Slot) {
	c, x, top := slot.Chromosome, slot.X, l.Baseline

	s.Line(scene.Line{X1: x, Y1: top, X2: x, Y2: l.GeneticY(c.GeneticEnd), Stroke: ColorInk, Width: 1, Class: ClassGroupAxis})

	seqX := x + sequenceDX
	half := sequenceWidth / 2
	bottom := l.PhysicalY(c.PhysicalMb())
	s.Line(scene.Line{X1: seqX - half, Y1: top, X2: seqX - half, Y2: bottom, Stroke: ColorInk, Width: 0.7, Class: ClassSequence})
	s.Line(scene.Line{X1: seqX + half, Y1: top, X2: seqX + half, Y2: bottom, Stroke: ColorInk, Width: 0.7, Class: ClassSequence})
	s.Arc(scene.Arc{CX: seqX, CY: top, R: half, Start: 0, End: 180, Stroke: ColorInk, Width: 0.7, Class: ClassSequenceCap})
	s.Arc(scene.Arc{CX: seqX, CY: bottom, R: half, Start: 180, End: 360, Stroke: ColorInk, Width: 0.7, Class: ClassSequenceCap})

	for _, m := range c.Markers {
		gy := l.GeneticY(m.Genetic)
		if !c.Agrees(m) {
			s.Line(scene.Line{X1: x - markerHalf, Y1: gy, X2: x + markerHalf, Y2: gy, Stroke: ColorDiscordant, Width: 0.5, Class: ClassMarkerDiscordant})
			continue
		}
		py := l.PhysicalY(m.PhysicalMb())
		s.Line(scene.Line{X1: x - markerHalf, Y1: gy, X2: x + markerHalf, Y2: gy, Stroke: ColorInk, Width: 0.5, Class: ClassMarker})
		s.Line(scene.Line{X1: seqX - half, Y1: py, X2: seqX + half, Y2: py, Stroke: ColorInk, Width: 0.5, Class: ClassPhysicalTick})
		s.Line(scene.Line{X1: x + markerHalf, Y1: gy, X2: seqX - half, Y2: py, Stroke: ColorConnector, Width: 0.1, Class: ClassConnector})
	}

	s.Text(scene.Text{
		X: x + groupLabelDX, Y: top - groupLabelDY,
		Value: c.Group, Size: 20, Fill: ColorInk, Anchor: "middle", Class: ClassGroupLabel,
	})
}
