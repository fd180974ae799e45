package pipeline

import (
	"os"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/linkplot/pkg/errors"
)

// LoadConfig reads Options from a TOML file:
//
//	map = "map.txt"
//	index = "genome.fa.fai"
//	reverse = ["LG3", "LG7"]
//	formats = ["svg", "pdf"]
//
// Unknown keys are rejected.
func LoadConfig(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "read config %s", path)
	}
	return ParseConfig(string(data))
}

// ParseConfig decodes Options from TOML text.
func ParseConfig(data string) (Options, error) {
	var opts Options
	md, err := toml.Decode(data, &opts)
	if err != nil {
		return Options{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Options{}, errs.New(errs.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	return opts, nil
}

// Merge returns base with every non-empty field of override applied.
func Merge(base, override Options) Options {
	if override.MapPath != "" {
		base.MapPath = override.MapPath
	}
	if override.IndexPath != "" {
		base.IndexPath = override.IndexPath
	}
	if len(override.Reverse) > 0 {
		base.Reverse = override.Reverse
	}
	if len(override.Formats) > 0 {
		base.Formats = override.Formats
	}
	return base
}
