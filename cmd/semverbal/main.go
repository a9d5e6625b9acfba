// Package main provides the semverbal binary entry point.
// Semverbal renders ontology class expressions, definitions, and
// justification chains into controlled natural language, driven by curated
// phrase packs.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/c360studio/semverbal/config"
	"github.com/c360studio/semverbal/ontology"
	"github.com/c360studio/semverbal/ontology/sqlitestore"
	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semverbal"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "semverbal",
		Short: "Natural-language rendering for ontology class expressions",
		Long: `Semverbal renders OWL class expressions, class definitions, and
justification chains into controlled natural language.

Phrasing is driven entirely by curated YAML phrase packs: each object
property maps to a singular phrase, a plural phrase, and a definition
prompt. Ontology content is served from a SQLite store built with the
load command, or directly from a JSON dump via --dump for small
ontologies.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.setupLogging()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringSliceVarP(&opts.configGlobs, "config", "c", nil, "Phrase pack file or glob (repeatable)")
	pf.StringVar(&opts.storePath, "store", "", "SQLite ontology store path")
	pf.StringVar(&opts.dumpPath, "dump", "", "Ontology dump file served from memory (alternative to --store)")
	pf.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		renderCmd(opts),
		explainCmd(opts),
		corpusCmd(opts),
		classesCmd(opts),
		propertiesCmd(opts),
		loadCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

type globalOptions struct {
	configGlobs []string
	storePath   string
	dumpPath    string
	logLevel    string
	logger      *slog.Logger
}

func (o *globalOptions) setupLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(o.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	o.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(o.logger)
}

// loadConfig merges the phrase packs named by --config. With no packs every
// property falls back to "is {label}" phrasing, which is still usable for
// browsing.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	if len(o.configGlobs) == 0 {
		return config.Default(), nil
	}
	return config.NewLoader(o.logger).LoadGlob(o.configGlobs...)
}

// openStore serves ontology content from the SQLite store named by --store,
// or straight from a JSON dump held in memory when --dump names one. The
// returned closer must be called when the store is no longer needed.
func (o *globalOptions) openStore() (ontology.Store, func() error, error) {
	switch {
	case o.storePath != "" && o.dumpPath != "":
		return nil, nil, fmt.Errorf("--store and --dump are mutually exclusive")
	case o.dumpPath != "":
		f, err := os.Open(o.dumpPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open ontology dump: %w", err)
		}
		defer func() { _ = f.Close() }()
		d, err := ontology.ReadDump(f)
		if err != nil {
			return nil, nil, err
		}
		m, err := ontology.FromDump(d)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", o.dumpPath, err)
		}
		return m, func() error { return nil }, nil
	case o.storePath != "":
		s, err := sqlitestore.Open(o.storePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("either --store or --dump is required")
	}
}

// openWritableStore opens the SQLite store for commands that ingest content;
// a memory store from --dump has nothing to write into.
func (o *globalOptions) openWritableStore() (*sqlitestore.Store, error) {
	if o.storePath == "" {
		return nil, fmt.Errorf("--store is required")
	}
	return sqlitestore.Open(o.storePath)
}
