package linkmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	errs "github.com/matzehuels/linkplot/pkg/errors"
	"github.com/matzehuels/linkplot/pkg/fai"
)

// HeaderToken is the first field of the optional header line of a map file.
const HeaderToken = "group"

// ParseMarkerID splits a locus such as "scaffold_7_1500" into its sequence
// name and base-pair position. Only the rightmost underscore separates them.
func ParseMarkerID(id string) (string, int, error) {
	i := strings.LastIndexByte(id, '_')
	if i <= 0 || i == len(id)-1 {
		return "", 0, fmt.Errorf("marker %q is not of the form <sequence>_<position>", id)
	}
	pos, err := strconv.Atoi(id[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("marker %q has a non-integer position", id)
	}
	if pos < 0 {
		return "", 0, fmt.Errorf("marker %q has a negative position", id)
	}
	return id[:i], pos, nil
}

// Load reads the map file at path. See [Read].
func Load(path string, lengths fai.Lengths, reverse []string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open map %s", path)
	}
	defer f.Close()

	m, err := Read(f, lengths, reverse)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Read parses a map, resolves every group against lengths, and then reverses
// the groups named in reverse. Names in reverse that match no group are
// ignored; use [Map.Unmatched] to find them.
func Read(r io.Reader, lengths fai.Lengths, reverse []string) (*Map, error) {
	m, err := parse(r)
	if err != nil {
		return nil, err
	}
	if m.Len() == 0 {
		return nil, errs.New(errs.ErrCodeEmptyGroup, "map has no linkage groups")
	}
	if err := resolve(m, lengths); err != nil {
		return nil, err
	}

	done := make(map[string]bool, len(reverse))
	for _, name := range reverse {
		if done[name] {
			continue
		}
		done[name] = true
		if c, ok := m.Get(name); ok {
			c.Reverse()
		}
	}
	return m, nil
}

func parse(r io.Reader) (*Map, error) {
	m := New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || isHeader(line) {
			continue
		}
		group, marker, err := parseLine(line)
		if err != nil {
			return nil, errs.Line("map", n, line, "%v", err)
		}
		m.Group(group).AddMarker(marker)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	return m, nil
}

func isHeader(line string) bool {
	first, _, _ := strings.Cut(line, "\t")
	return first == HeaderToken
}

func parseLine(line string) (string, Marker, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 {
		return "", Marker{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	genetic, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return "", Marker{}, fmt.Errorf("genetic position %q is not a number", fields[1])
	}
	seq, phys, err := ParseMarkerID(fields[2])
	if err != nil {
		return "", Marker{}, err
	}
	marker, err := NewMarker(seq, phys, genetic)
	if err != nil {
		return "", Marker{}, err
	}
	return fields[0], marker, nil
}

func resolve(m *Map, lengths fai.Lengths) error {
	for _, c := range m.Groups() {
		c.Resolve()
		length, ok := lengths.Lookup(c.Sequence)
		if !ok {
			return errs.New(errs.ErrCodeMissingLength, "linkage group %s resolves to %q, which is not in the index", c.Group, c.Sequence)
		}
		if err := c.UpdateCoordinates(length); err != nil {
			return err
		}
	}
	return nil
}
