package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/c360studio/semverbal/corpus"
	"github.com/c360studio/semverbal/graph"
	"github.com/c360studio/semverbal/render"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func corpusCmd(opts *globalOptions) *cobra.Command {
	var (
		outPath         string
		promptField     string
		completionField string
		fineGrained     bool
		metricsAddr     string
		publish         bool
		natsURL         string
	)

	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Generate a JSONL training corpus from every class",
		Long: `Corpus renders the definition of every labeled class in the store
into JSONL prompt/completion records: one full-definition record per class
plus, with fine-grained output on, one record per definitional restriction
sentence. Classes that fail to render are logged and skipped.`,
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

			var out io.Writer = cmd.OutOrStdout()
			if outPath != "" && outPath != "-" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			registry := prometheus.NewRegistry()
			metrics := corpus.NewMetrics(registry)
			if metricsAddr != "" {
				go serveMetrics(opts, metricsAddr, registry)
			}

			generator := corpus.NewGenerator(store, render.New(cfg), opts.logger, metrics)

			ctx := cmd.Context()
			if publish {
				publisher, closeConn, err := graph.Connect(natsURL)
				if err != nil {
					return err
				}
				defer closeConn()
				ontoLabel, err := store.OntologyLabel(ctx)
				if err != nil {
					return err
				}
				generator.OnDefinition = func(ctx context.Context, def corpus.ClassDefinition) error {
					return publisher.PublishDefinition(ctx, ontoLabel, def.Class, def.Definition)
				}
			}

			summary, err := generator.Run(ctx, out, corpus.Options{
				PromptField:     promptField,
				CompletionField: completionField,
				FineGrained:     fineGrained,
			})
			if err != nil {
				return err
			}
			if summary.Failures > 0 {
				return fmt.Errorf("%d of %d classes failed to render",
					summary.Failures, summary.Failures+summary.Classes)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "Output file (- for stdout)")
	cmd.Flags().StringVar(&promptField, "prompt-field", "prompt", "JSON field name for prompts")
	cmd.Flags().StringVar(&completionField, "completion-field", "completion", "JSON field name for completions")
	cmd.Flags().BoolVar(&fineGrained, "fine-grained", true, "Also emit one record per restriction sentence")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	cmd.Flags().BoolVar(&publish, "publish", false, "Publish rendered definitions to the knowledge graph")
	cmd.Flags().StringVar(&natsURL, "nats-url", nats.DefaultURL, "NATS server URL for --publish")

	return cmd
}

func serveMetrics(opts *globalOptions, addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	opts.logger.Info("metrics listening", "addr", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		opts.logger.Warn("metrics server stopped", "error", err)
	}
}
