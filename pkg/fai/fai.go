package fai

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"

	errs "github.com/matzehuels/linkplot/pkg/errors"
)

// Entry is one indexed sequence.
type Entry struct {
	Name   string
	Length int
}

// Lengths maps sequence names to their lengths in base pairs.
type Lengths map[string]int

// Lookup returns the length of name and whether it was indexed.
func (l Lengths) Lookup(name string) (int, bool) {
	n, ok := l[name]
	return n, ok
}

// Scan returns a sequence over the entries in r. A malformed line yields a
// FORMAT_ERROR and ends the sequence; so does a read error.
func Scan(r io.Reader) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		n := 0
		for sc.Scan() {
			n++
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			e, err := parseLine(n, line)
			if err != nil {
				yield(Entry{}, err)
				return
			}
			if !yield(e, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(Entry{}, fmt.Errorf("read index: %w", err))
		}
	}
}

func parseLine(n int, line string) (Entry, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return Entry{}, errs.Line("index", n, line, "expected at least 2 fields, got %d", len(fields))
	}
	length, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, errs.Line("index", n, line, "length %q is not an integer", fields[1])
	}
	if length < 0 {
		return Entry{}, errs.Line("index", n, line, "negative length %d", length)
	}
	return Entry{Name: fields[0], Length: length}, nil
}

// ReadLengths consumes every entry in r.
func ReadLengths(r io.Reader) (Lengths, error) {
	lengths := make(Lengths)
	for e, err := range Scan(r) {
		if err != nil {
			return nil, err
		}
		lengths[e.Name] = e.Length
	}
	return lengths, nil
}

// Load reads the index file at path.
func Load(path string) (Lengths, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open index %s", path)
	}
	defer f.Close()

	lengths, err := ReadLengths(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lengths, nil
}
