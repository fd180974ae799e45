package pipeline

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	errs "github.com/matzehuels/linkplot/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	opts, err := ParseConfig(`
map = "map.txt"
index = "genome.fa.fai"
reverse = ["LG3", "LG7"]
formats = ["svg", "pdf"]
`)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if opts.MapPath != "map.txt" || opts.IndexPath != "genome.fa.fai" {
		t.Errorf("paths = %q, %q", opts.MapPath, opts.IndexPath)
	}
	if !slices.Equal(opts.Reverse, []string{"LG3", "LG7"}) {
		t.Errorf("Reverse = %v", opts.Reverse)
	}
	if !slices.Equal(opts.Formats, []string{"svg", "pdf"}) {
		t.Errorf("Formats = %v", opts.Formats)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax", `map = `},
		{"unknown key", `scale = 2.0`},
		{"wrong type", `reverse = "LG1"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig(tt.input); !errs.Is(err, errs.ErrCodeInvalidConfig) {
				t.Errorf("ParseConfig(%q) error = %v, want %s", tt.input, err, errs.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkplot.toml")
	if err := os.WriteFile(path, []byte(`reverse = ["LG1"]`), 0644); err != nil {
		t.Fatal(err)
	}
	opts, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if !slices.Equal(opts.Reverse, []string{"LG1"}) {
		t.Errorf("Reverse = %v, want [LG1]", opts.Reverse)
	}

	if _, err := LoadConfig(path + ".missing"); !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("LoadConfig(missing) error = %v, want %s", err, errs.ErrCodeFileNotFound)
	}
}

func TestMerge(t *testing.T) {
	base := Options{MapPath: "a", IndexPath: "b", Reverse: []string{"LG1"}, Formats: []string{"pdf"}}
	got := Merge(base, Options{MapPath: "c", Formats: []string{"svg"}})

	if got.MapPath != "c" || got.IndexPath != "b" {
		t.Errorf("paths = %q, %q; want c, b", got.MapPath, got.IndexPath)
	}
	if !slices.Equal(got.Reverse, []string{"LG1"}) {
		t.Errorf("Reverse = %v, want [LG1]", got.Reverse)
	}
	if !slices.Equal(got.Formats, []string{"svg"}) {
		t.Errorf("Formats = %v, want [svg]", got.Formats)
	}
}
