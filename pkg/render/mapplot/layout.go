package mapplot

import (
	"math"

	errs "github.com/matzehuels/linkplot/pkg/errors"
	"github.com/matzehuels/linkplot/pkg/linkmap"
)

// Layout constants. None of these are user-configurable.
const (
	Margin         = 100.0 // canvas width reserved for rulers and borders
	SlotWidth      = 100.0 // canvas width per linkage group
	TrackFraction  = 0.8   // share of the canvas height used by the longest track
	BaselineHeight = 0.9   // track tops, as a fraction of height above the bottom edge
	PixelScale     = 2.0

	LeftRulerX   = 55.0 // x of the cM ruler
	FirstGroupDX = 30.0 // from the cM ruler to the first group
	GroupAdvance = 90.0 // between consecutive groups

	CMTick = 10.0 // cM between ruler ticks
	MbTick = 0.5  // Mb between ruler ticks
)

// Slot is one group's horizontal position.
type Slot struct {
	Chromosome *linkmap.Chromosome
	X          float64 // x of the genetic axis
}

// Layout is the geometry shared by every element of the diagram.
type Layout struct {
	Width, Height float64

	CMMax, MbMax     float64
	CMScale, MbScale float64

	// Baseline is the y of the top of every track.
	Baseline float64
	// RulerLength is the drawn length of both rulers.
	RulerLength float64

	LeftRulerX, RightRulerX float64
	Slots                   []Slot
}

// CanvasSize returns the canvas dimensions for n linkage groups.
func CanvasSize(n int) (width, height float64) {
	width = Margin + SlotWidth*float64(n)
	return width, width / 2
}

// ScaleFactor returns the units-to-pixels factor that fits extent into the
// track share of height.
func ScaleFactor(extent, height float64) float64 {
	return TrackFraction * height / extent
}

// ComputeLayout derives the shared scales and slot positions for m.
func ComputeLayout(m *linkmap.Map) (Layout, error) {
	groups := m.Groups()
	if len(groups) == 0 {
		return Layout{}, errs.New(errs.ErrCodeEmptyGroup, "map has no linkage groups")
	}

	var l Layout
	l.Width, l.Height = CanvasSize(len(groups))
	for _, c := range groups {
		l.CMMax = max(l.CMMax, c.GeneticEnd)
		l.MbMax = max(l.MbMax, c.PhysicalMb())
	}
	if l.CMMax <= 0 {
		return Layout{}, errs.New(errs.ErrCodeEmptyGroup, "no linkage group has a positive genetic length")
	}
	if l.MbMax <= 0 {
		return Layout{}, errs.New(errs.ErrCodeEmptyGroup, "no linkage group has a positive physical length")
	}
	l.CMScale = ScaleFactor(l.CMMax, l.Height)
	l.MbScale = ScaleFactor(l.MbMax, l.Height)

	l.Baseline = l.Height - BaselineHeight*l.Height
	l.RulerLength = math.Ceil(l.CMMax * l.CMScale)

	l.LeftRulerX = LeftRulerX
	x := LeftRulerX + FirstGroupDX
	l.Slots = make([]Slot, len(groups))
	for i, c := range groups {
		l.Slots[i] = Slot{Chromosome: c, X: x}
		x += GroupAdvance
	}
	l.RightRulerX = x
	return l, nil
}

// GeneticY returns the y of a genetic position in cM.
func (l Layout) GeneticY(cM float64) float64 { return l.Baseline + cM*l.CMScale }

// PhysicalY returns the y of a physical position in Mb.
func (l Layout) PhysicalY(mb float64) float64 { return l.Baseline + mb*l.MbScale }
