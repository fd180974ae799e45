// Package cli implements the linkplot command-line interface.
//
// # Commands
//
//   - plot: draw a linkage map against its assembly and report statistics
//   - stats: report statistics only
//   - completion: generate shell completion scripts
//
// # Configuration
//
// Inputs come from positional arguments and flags, optionally layered over a
// TOML file given with --config. Flag values win over file values.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/linkplot/pkg/buildinfo"
	errs "github.com/matzehuels/linkplot/pkg/errors"
	"github.com/matzehuels/linkplot/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "linkplot"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "linkplot draws genetic linkage maps against their assemblies",
		Long:         `linkplot reads a linkage map and a FASTA index, places each linkage group next to the physical sequence its markers agree on, and draws both on shared scales so map and assembly order can be compared.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(contextOf(cmd), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.plotCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// inputFlags are the flags shared by every command that reads a map.
type inputFlags struct {
	config  string
	reverse string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.config, "config", "", "TOML config file with map, index, reverse and formats")
	cmd.Flags().StringVarP(&f.reverse, "reverse", "r", "", "comma-separated linkage groups whose marker order is reversed")
}

// options builds the run configuration from the config file, positional
// arguments and flags, in increasing order of precedence.
func (f *inputFlags) options(args []string, formats string) (pipeline.Options, error) {
	var base pipeline.Options
	if f.config != "" {
		cfg, err := pipeline.LoadConfig(f.config)
		if err != nil {
			return pipeline.Options{}, err
		}
		base = cfg
	}

	var override pipeline.Options
	if len(args) == 2 {
		override.MapPath, override.IndexPath = args[0], args[1]
	}
	override.Reverse = pipeline.ParseList(f.reverse)
	override.Formats = pipeline.ParseList(formats)

	opts := pipeline.Merge(base, override)
	if opts.MapPath == "" || opts.IndexPath == "" {
		return pipeline.Options{}, errs.New(errs.ErrCodeInvalidInput, "a map file and an index file are required (as arguments or in --config)")
	}
	return opts, nil
}

// mapArgs accepts either no positional arguments (paths come from --config)
// or exactly a map and an index.
func mapArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || len(args) == 2 {
		return nil
	}
	return errs.New(errs.ErrCodeInvalidInput, "expected MAP and FAI arguments, got %d argument(s)", len(args))
}
