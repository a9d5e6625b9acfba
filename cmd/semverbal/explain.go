package main

import (
	"fmt"
	"io"
	"os"

	"github.com/c360studio/semverbal/justify"
	"github.com/c360studio/semverbal/render"
	"github.com/spf13/cobra"
)

func explainCmd(opts *globalOptions) *cobra.Command {
	var proofPath string

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Render a justification chain as prose",
		Long: `Explain turns a reasoner justification (a JSON proof document of
subsumption steps) into indented "Every X is Y." prose. Steps whose
superclass is on the configured ignore list are elided without breaking the
chain.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if proofPath != "" && proofPath != "-" {
				f, err := os.Open(proofPath)
				if err != nil {
					return fmt.Errorf("open proof: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			steps, err := justify.ReadProof(in)
			if err != nil {
				return err
			}

			result, err := justify.New(render.New(cfg)).RenderProof(steps)
			if err != nil {
				return err
			}
			if result.Text != "" {
				fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			}
			for _, diag := range result.Diagnostics {
				opts.logger.Warn("justification diagnostic",
					"property", diag.PropertyIRI, "message", diag.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&proofPath, "proof", "-", "Proof document path (- for stdin)")

	return cmd
}
