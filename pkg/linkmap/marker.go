package linkmap

import (
	"fmt"
	"math"
)

// Marker is a single genotyped locus placed on both maps.
type Marker struct {
	Sequence string  // physical sequence the marker was called against
	Physical int     // base-pair offset within Sequence
	Genetic  float64 // centimorgan position within the linkage group
}

// NewMarker validates and builds a marker.
func NewMarker(sequence string, physical int, genetic float64) (Marker, error) {
	if physical < 0 {
		return Marker{}, fmt.Errorf("negative physical position %d", physical)
	}
	if math.IsNaN(genetic) || math.IsInf(genetic, 0) {
		return Marker{}, fmt.Errorf("genetic position %v is not finite", genetic)
	}
	return Marker{Sequence: sequence, Physical: physical, Genetic: genetic}, nil
}

// PhysicalMb returns the physical position in megabases.
func (m Marker) PhysicalMb() float64 { return float64(m.Physical) / 1e6 }

func (m Marker) String() string {
	return fmt.Sprintf("%s:%d @ %g cM", m.Sequence, m.Physical, m.Genetic)
}
