package linkmap

import (
	"fmt"

	errs "github.com/matzehuels/linkplot/pkg/errors"
)

// Chromosome is one linkage group and the physical sequence it resolves to.
type Chromosome struct {
	Group    string   // linkage group name from the map file
	Sequence string   // resolved physical sequence; empty until Resolve
	Markers  []Marker // in read order

	PhysicalStart int // always 0
	PhysicalEnd   int
	GeneticStart  float64
	GeneticEnd    float64

	reversed bool
}

// NewChromosome creates an empty group.
func NewChromosome(group string) *Chromosome {
	return &Chromosome{Group: group}
}

// AddMarker appends m to the group.
func (c *Chromosome) AddMarker(m Marker) {
	c.Markers = append(c.Markers, m)
}

// Resolve names the group after the most common marker sequence. Ties go to
// the sequence seen first.
func (c *Chromosome) Resolve() {
	c.Sequence = mostCommon(c.Markers)
}

func mostCommon(markers []Marker) string {
	counts := make(map[string]int)
	var order []string
	for _, m := range markers {
		if _, seen := counts[m.Sequence]; !seen {
			order = append(order, m.Sequence)
		}
		counts[m.Sequence]++
	}

	best, bestN := "", 0
	for _, name := range order {
		if counts[name] > bestN {
			best, bestN = name, counts[name]
		}
	}
	return best
}

// Agrees reports whether m lies on the group's resolved sequence.
func (c *Chromosome) Agrees(m Marker) bool {
	return m.Sequence == c.Sequence
}

// Agreeing returns the markers on the resolved sequence.
func (c *Chromosome) Agreeing() []Marker {
	out := make([]Marker, 0, len(c.Markers))
	for _, m := range c.Markers {
		if c.Agrees(m) {
			out = append(out, m)
		}
	}
	return out
}

// UpdateCoordinates derives the extents. A positive length is taken as the
// physical end; otherwise the furthest agreeing marker is used. Genetic
// extents span the agreeing markers only.
func (c *Chromosome) UpdateCoordinates(length int) error {
	on := c.Agreeing()
	if len(on) == 0 {
		return errs.New(errs.ErrCodeEmptyGroup, "linkage group %s has no markers on %q", c.Group, c.Sequence)
	}

	c.PhysicalStart = 0
	if length > 0 {
		c.PhysicalEnd = length
	} else {
		c.PhysicalEnd = 0
		for _, m := range on {
			c.PhysicalEnd = max(c.PhysicalEnd, m.Physical)
		}
	}

	c.GeneticStart, c.GeneticEnd = on[0].Genetic, on[0].Genetic
	for _, m := range on[1:] {
		c.GeneticStart = min(c.GeneticStart, m.Genetic)
		c.GeneticEnd = max(c.GeneticEnd, m.Genetic)
	}
	return nil
}

// Reverse flips the genetic coordinates of every marker around GeneticEnd.
// Extents are left as they are, so calling Reverse twice restores the
// original positions.
func (c *Chromosome) Reverse() {
	flipped := make([]Marker, len(c.Markers))
	for i, m := range c.Markers {
		flipped[i] = Marker{Sequence: m.Sequence, Physical: m.Physical, Genetic: c.GeneticEnd - m.Genetic}
	}
	c.Markers = flipped
	c.reversed = !c.reversed
}

// Reversed reports whether the group is currently flipped.
func (c *Chromosome) Reversed() bool { return c.reversed }

// PhysicalMb returns the physical end in megabases.
func (c *Chromosome) PhysicalMb() float64 { return float64(c.PhysicalEnd) / 1e6 }

func (c *Chromosome) String() string {
	return fmt.Sprintf("chromosome %s (LG %s): %d bp, %d markers, %g cM",
		c.Sequence, c.Group, c.PhysicalEnd, len(c.Markers), c.GeneticEnd)
}
