package fai

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/linkplot/pkg/errors"
)

func TestScan(t *testing.T) {
	input := "chr1\t1500000\t6\t60\t61\nchr2\t800\n\nscaffold_7\t42\textra\n"

	var got []Entry
	for e, err := range Scan(strings.NewReader(input)) {
		if err != nil {
			t.Fatalf("Scan() error: %v", err)
		}
		got = append(got, e)
	}

	want := []Entry{
		{Name: "chr1", Length: 1500000},
		{Name: "chr2", Length: 800},
		{Name: "scaffold_7", Length: 42},
	}
	if len(got) != len(want) {
		t.Fatalf("Scan() yielded %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScanStopsEarly(t *testing.T) {
	input := "a\t1\nb\t2\nc\t3\n"
	count := 0
	for range Scan(strings.NewReader(input)) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestReadLengthsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"single field", "chr1\n"},
		{"non-numeric length", "chr1\tlong\n"},
		{"negative length", "chr1\t-5\n"},
		{"bad line after good", "chr1\t10\nchr2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadLengths(strings.NewReader(tt.input))
			if !errs.Is(err, errs.ErrCodeFormat) {
				t.Errorf("ReadLengths() error = %v, want %s", err, errs.ErrCodeFormat)
			}
		})
	}
}

func TestReadLengthsDuplicatesOverwrite(t *testing.T) {
	lengths, err := ReadLengths(strings.NewReader("chr1\t10\nchr1\t20\n"))
	if err != nil {
		t.Fatalf("ReadLengths() error: %v", err)
	}
	if n, ok := lengths.Lookup("chr1"); !ok || n != 20 {
		t.Errorf("Lookup(chr1) = %d, %v; want 20, true", n, ok)
	}
	if _, ok := lengths.Lookup("chr2"); ok {
		t.Error("Lookup(chr2) should miss")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "genome.fa.fai")
	if err := os.WriteFile(path, []byte("chr1\t100\t0\t60\t61\n"), 0644); err != nil {
		t.Fatal(err)
	}

	lengths, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if lengths["chr1"] != 100 {
		t.Errorf("lengths[chr1] = %d, want 100", lengths["chr1"])
	}

	if _, err := Load(filepath.Join(dir, "missing.fai")); !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want %s", err, errs.ErrCodeFileNotFound)
	}
}
