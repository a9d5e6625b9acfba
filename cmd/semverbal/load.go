package main

import (
	"fmt"
	"os"

	"github.com/c360studio/semverbal/ontology"
	"github.com/spf13/cobra"
)

func loadCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <dump.json>",
		Short: "Import an ontology dump into the SQLite store",
		Long: `Load ingests an ontology dump (classes, properties, axioms, and
annotations as exported by the extraction tooling) into the SQLite store
named by --store. Re-loading an updated dump replaces existing entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open dump: %w", err)
			}
			defer func() { _ = f.Close() }()

			dump, err := ontology.ReadDump(f)
			if err != nil {
				return err
			}

			store, err := opts.openWritableStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Import(cmd.Context(), dump); err != nil {
				return err
			}
			opts.logger.Info("ontology imported",
				"classes", len(dump.Classes),
				"properties", len(dump.Properties),
				"axioms", len(dump.Axioms))
			return nil
		},
	}
	return cmd
}
