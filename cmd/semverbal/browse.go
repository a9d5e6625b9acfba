package main

import (
	"fmt"
	"regexp"
	"strings"
	"text/tabwriter"

	"github.com/c360studio/semverbal/config"
	"github.com/c360studio/semverbal/expression"
	"github.com/c360studio/semverbal/ontology"
	"github.com/c360studio/semverbal/template"
	"github.com/spf13/cobra"
)

func classesCmd(opts *globalOptions) *cobra.Command {
	var (
		search string
		regex  bool
	)

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List classes in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := opts.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = closeStore() }()

			ctx := cmd.Context()
			list := func() ([]ontology.Class, error) {
				if search != "" {
					return store.FindClasses(ctx, search, regex)
				}
				return store.Classes(ctx)
			}
			classes, err := list()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, class := range classes {
				fmt.Fprintf(w, "%s\t%s\n", class.IRI, class.Label)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by label")
	cmd.Flags().BoolVar(&regex, "regex", false, "Treat --search as a regular expression")

	return cmd
}

func propertiesCmd(opts *globalOptions) *cobra.Command {
	var (
		prefix     string
		labelRegex string
	)

	cmd := &cobra.Command{
		Use:   "properties",
		Short: "List properties and their phrasing coverage",
		Long: `Properties lists every object property with the phrasing the
renderer would use for it: a curated phrase, the standard "is {label}"
convention, a reflexive phrase, or the fallback. Fallback rows are the ones
worth adding to a phrase pack.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			store, closeStore, err := opts.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = closeStore() }()

			properties, err := store.Properties(cmd.Context())
			if err != nil {
				return err
			}

			var labelRe *regexp.Regexp
			if labelRegex != "" {
				labelRe, err = regexp.Compile(labelRegex)
				if err != nil {
					return fmt.Errorf("bad label pattern: %w", err)
				}
			}

			registry := template.NewRegistry(cfg)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "IRI\tLABEL\tPHRASING")
			for _, prop := range properties {
				if prefix != "" && !strings.HasPrefix(prop.IRI, prefix) {
					continue
				}
				if labelRe != nil && !labelRe.MatchString(prop.Label) {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", prop.IRI, prop.Label, phrasingSource(cfg, registry, prop))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Filter by IRI prefix")
	cmd.Flags().StringVar(&labelRegex, "label-regex", "", "Filter by label regular expression")

	return cmd
}

func phrasingSource(cfg *config.Config, registry *template.Registry, prop ontology.Property) string {
	ref := expression.PropertyRef{IRI: prop.IRI, Label: prop.Label, Reflexive: prop.Reflexive}
	if phrase, ok := registry.Reflexive(ref); ok {
		return "reflexive: " + phrase
	}
	if _, ok := cfg.ExplicitPhrases(prop.IRI); ok {
		entry, _ := registry.Resolve(ref)
		return "curated: " + entry.Singular
	}
	if cfg.IsStandardRole(prop.IRI) {
		return "standard"
	}
	return "fallback (unconfigured)"
}
