package linkmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/linkplot/pkg/errors"
)

func group(name string, markers ...Marker) *Chromosome {
	c := NewChromosome(name)
	for _, m := range markers {
		c.AddMarker(m)
	}
	return c
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		seqs []string
		want string
	}{
		{"majority", []string{"A", "A", "B"}, "A"},
		{"majority later", []string{"B", "A", "A"}, "A"},
		{"tie goes to first seen", []string{"B", "A", "A", "B"}, "B"},
		{"single", []string{"C"}, "C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChromosome("LG1")
			for i, s := range tt.seqs {
				c.AddMarker(Marker{Sequence: s, Physical: i, Genetic: float64(i)})
			}
			c.Resolve()
			assert.Equal(t, tt.want, c.Sequence)
		})
	}
}

func TestUpdateCoordinates(t *testing.T) {
	c := group("LG1",
		Marker{Sequence: "A", Physical: 100, Genetic: 5},
		Marker{Sequence: "A", Physical: 900, Genetic: 40},
		Marker{Sequence: "B", Physical: 5000, Genetic: 80},
		Marker{Sequence: "A", Physical: 400, Genetic: 2},
	)
	c.Resolve()

	t.Run("index length preferred", func(t *testing.T) {
		require.NoError(t, c.UpdateCoordinates(2000))
		assert.Equal(t, 0, c.PhysicalStart)
		assert.Equal(t, 2000, c.PhysicalEnd)
		assert.Equal(t, 2.0, c.GeneticStart)
		assert.Equal(t, 40.0, c.GeneticEnd)
	})

	t.Run("zero length falls back to markers", func(t *testing.T) {
		require.NoError(t, c.UpdateCoordinates(0))
		assert.Equal(t, 900, c.PhysicalEnd)
		assert.Equal(t, 40.0, c.GeneticEnd)
	})
}

func TestUpdateCoordinatesEmpty(t *testing.T) {
	c := group("LG9", Marker{Sequence: "A", Physical: 1, Genetic: 1})
	c.Sequence = "Z"
	err := c.UpdateCoordinates(10)
	assert.True(t, errs.Is(err, errs.ErrCodeEmptyGroup), "got %v", err)
}

func TestReverse(t *testing.T) {
	c := group("LG1",
		Marker{Sequence: "A", Physical: 10, Genetic: 0},
		Marker{Sequence: "A", Physical: 20, Genetic: 12},
		Marker{Sequence: "B", Physical: 30, Genetic: 20},
		Marker{Sequence: "A", Physical: 40, Genetic: 50},
	)
	c.Resolve()
	require.NoError(t, c.UpdateCoordinates(100))
	require.Equal(t, 50.0, c.GeneticEnd)

	original := append([]Marker(nil), c.Markers...)

	c.Reverse()
	assert.True(t, c.Reversed())
	assert.Equal(t, 38.0, c.Markers[1].Genetic)
	assert.Equal(t, 50.0, c.Markers[0].Genetic)
	assert.Equal(t, 30.0, c.Markers[2].Genetic)
	assert.Equal(t, 0.0, c.Markers[3].Genetic)
	assert.Equal(t, 50.0, c.GeneticEnd, "extents are not recomputed")
	for i := range original {
		assert.Equal(t, original[i].Sequence, c.Markers[i].Sequence)
		assert.Equal(t, original[i].Physical, c.Markers[i].Physical)
	}

	c.Reverse()
	assert.False(t, c.Reversed())
	assert.Equal(t, original, c.Markers)
}

func TestAgreeing(t *testing.T) {
	c := group("LG1",
		Marker{Sequence: "A", Physical: 1, Genetic: 1},
		Marker{Sequence: "B", Physical: 2, Genetic: 2},
		Marker{Sequence: "A", Physical: 3, Genetic: 3},
	)
	c.Resolve()
	assert.Len(t, c.Agreeing(), 2)
	assert.False(t, c.Agrees(c.Markers[1]))
}

func TestChromosomeString(t *testing.T) {
	c := group("LG2", Marker{Sequence: "chr2", Physical: 5, Genetic: 7.5})
	c.Resolve()
	require.NoError(t, c.UpdateCoordinates(1000))
	assert.Equal(t, "chromosome chr2 (LG LG2): 1000 bp, 1 markers, 7.5 cM", c.String())
}
