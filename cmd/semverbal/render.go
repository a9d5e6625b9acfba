package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/c360studio/semverbal/config"
	"github.com/c360studio/semverbal/corpus"
	"github.com/c360studio/semverbal/ontology"
	"github.com/c360studio/semverbal/render"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func renderCmd(opts *globalOptions) *cobra.Command {
	var (
		classLabel string
		classIRI   string
		exact      bool
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the definition of one class",
		Long: `Render composes the natural-language definition of a single class:
its expert-authored textual definition followed by the verbalized logical
axioms. With --watch the phrase packs are re-read and the class re-rendered
on every file change, which makes curating phrasings interactive.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (classLabel == "") == (classIRI == "") {
				return fmt.Errorf("exactly one of --class or --by-id is required")
			}

			store, closeStore, err := opts.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = closeStore() }()

			ctx := cmd.Context()
			class, err := resolveClass(ctx, store, classLabel, classIRI)
			if err != nil {
				return err
			}

			renderOnce := func(cfg *config.Config) error {
				if exact {
					cfg.ExactClassLabels = true
				}
				facts, err := corpus.FactsFor(ctx, store, cfg, class)
				if err != nil {
					return err
				}
				def := render.New(cfg).ComposeDefinition(facts)
				fmt.Fprintln(cmd.OutOrStdout(), def.Text)
				for _, diag := range def.Diagnostics {
					opts.logger.Warn("rendering diagnostic",
						"class", class.IRI, "property", diag.PropertyIRI, "message", diag.Message)
				}
				return nil
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if err := renderOnce(cfg); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return watchAndRender(ctx, opts, renderOnce)
		},
	}

	cmd.Flags().StringVar(&classLabel, "class", "", "Class label to render")
	cmd.Flags().StringVar(&classIRI, "by-id", "", "Class IRI to render")
	cmd.Flags().BoolVar(&exact, "exact-class-labels", false, "Keep class labels exactly as authored")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render whenever a phrase pack changes")

	return cmd
}

func resolveClass(ctx context.Context, store ontology.Store, label, iri string) (ontology.Class, error) {
	if iri != "" {
		classLabel, err := store.LabelOf(ctx, iri)
		if err != nil {
			return ontology.Class{}, err
		}
		return ontology.Class{IRI: iri, Label: classLabel}, nil
	}
	return store.ClassByLabel(ctx, label)
}

// watchAndRender re-renders on every phrase-pack change until interrupted.
// A pack that fails to parse is logged and the last good rendering stands.
func watchAndRender(parent context.Context, opts *globalOptions, renderOnce func(*config.Config) error) error {
	if len(opts.configGlobs) == 0 {
		return fmt.Errorf("--watch needs at least one --config pattern")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dirs := map[string]bool{}
	for _, pattern := range opts.configGlobs {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		for _, match := range matches {
			dirs[filepath.Dir(match)] = true
		}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts.logger.Info("watching phrase packs", "dirs", len(dirs))
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-watcher.Errors:
			opts.logger.Warn("watch error", "error", err)
		case event := <-watcher.Events:
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				opts.logger.Warn("phrase pack rejected", "path", event.Name, "error", err)
				continue
			}
			if err := renderOnce(cfg); err != nil {
				opts.logger.Warn("re-render failed", "error", err)
			}
		}
	}
}
