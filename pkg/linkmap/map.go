package linkmap

import (
	"slices"
)

// Map is a set of linkage groups keyed by group name.
type Map struct {
	groups map[string]*Chromosome
}

// New creates an empty map.
func New() *Map {
	return &Map{groups: make(map[string]*Chromosome)}
}

// Group returns the named group, creating it on first use.
func (m *Map) Group(name string) *Chromosome {
	c, ok := m.groups[name]
	if !ok {
		c = NewChromosome(name)
		m.groups[name] = c
	}
	return c
}

// Get returns the named group if present.
func (m *Map) Get(name string) (*Chromosome, bool) {
	c, ok := m.groups[name]
	return c, ok
}

// Len returns the number of groups.
func (m *Map) Len() int { return len(m.groups) }

// Names returns the group names in lexicographic order.
func (m *Map) Names() []string {
	names := make([]string, 0, len(m.groups))
	for name := range m.groups {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Groups returns the groups in lexicographic order of their names.
func (m *Map) Groups() []*Chromosome {
	names := m.Names()
	out := make([]*Chromosome, len(names))
	for i, name := range names {
		out[i] = m.groups[name]
	}
	return out
}

// Unmatched returns the names in groups that the map does not contain.
func (m *Map) Unmatched(groups []string) []string {
	var out []string
	for _, g := range groups {
		if _, ok := m.groups[g]; !ok && !slices.Contains(out, g) {
			out = append(out, g)
		}
	}
	return out
}
