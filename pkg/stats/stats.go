// Package stats summarizes a linkage map.
//
// [Compute] aggregates genetic lengths (each group's genetic end, in cM) and
// marker counts across all groups. It only reads the map.
package stats

import (
	"fmt"

	mstats "github.com/montanaflynn/stats"

	errs "github.com/matzehuels/linkplot/pkg/errors"
	"github.com/matzehuels/linkplot/pkg/linkmap"
)

// Aggregate is the total, extremes and mean of one measure across groups.
type Aggregate struct {
	Total float64
	Min   float64
	Max   float64
	Mean  float64
}

// Summary describes a whole map.
type Summary struct {
	Groups   int
	Distance Aggregate // genetic length per group, cM
	Markers  Aggregate // markers per group
}

// Row is one labelled line of a report.
type Row struct {
	Label string
	Value string
}

// Compute summarizes m. An empty map is an EMPTY_GROUP error.
func Compute(m *linkmap.Map) (Summary, error) {
	groups := m.Groups()
	if len(groups) == 0 {
		return Summary{}, errs.New(errs.ErrCodeEmptyGroup, "map has no linkage groups")
	}

	lengths := make(mstats.Float64Data, len(groups))
	counts := make(mstats.Float64Data, len(groups))
	for i, c := range groups {
		lengths[i] = c.GeneticEnd
		counts[i] = float64(len(c.Markers))
	}

	distance, err := aggregate(lengths)
	if err != nil {
		return Summary{}, err
	}
	markers, err := aggregate(counts)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Groups: len(groups), Distance: distance, Markers: markers}, nil
}

func aggregate(data mstats.Float64Data) (Aggregate, error) {
	var a Aggregate
	var err error
	if a.Total, err = mstats.Sum(data); err != nil {
		return Aggregate{}, errs.Wrap(errs.ErrCodeInternal, err, "sum")
	}
	if a.Min, err = mstats.Min(data); err != nil {
		return Aggregate{}, errs.Wrap(errs.ErrCodeInternal, err, "min")
	}
	if a.Max, err = mstats.Max(data); err != nil {
		return Aggregate{}, errs.Wrap(errs.ErrCodeInternal, err, "max")
	}
	if a.Mean, err = mstats.Mean(data); err != nil {
		return Aggregate{}, errs.Wrap(errs.ErrCodeInternal, err, "mean")
	}
	return a, nil
}

// Rows lists the summary in report order.
func (s Summary) Rows() []Row {
	return []Row{
		{"Linkage groups", fmt.Sprintf("%d", s.Groups)},
		{"Total distance", fmt.Sprintf("%g cM", s.Distance.Total)},
		{"Maximum LG distance", fmt.Sprintf("%g cM", s.Distance.Max)},
		{"Minimum LG distance", fmt.Sprintf("%g cM", s.Distance.Min)},
		{"Average distance per LG", fmt.Sprintf("%.2f cM", s.Distance.Mean)},
		{"Total markers", fmt.Sprintf("%.0f", s.Markers.Total)},
		{"Maximum markers for one LG", fmt.Sprintf("%.0f", s.Markers.Max)},
		{"Minimum markers for one LG", fmt.Sprintf("%.0f", s.Markers.Min)},
		{"Average markers per LG", fmt.Sprintf("%.2f", s.Markers.Mean)},
	}
}
