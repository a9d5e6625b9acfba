package corpus

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/c360studio/semverbal/config"
	"github.com/c360studio/semverbal/ontology"
	"github.com/c360studio/semverbal/render"
	"github.com/google/uuid"
)

// Options control record shape.
type Options struct {
	// PromptField and CompletionField name the JSON keys of each record.
	PromptField     string
	CompletionField string

	// FineGrained additionally emits one record per definitional
	// restriction sentence ("What is the liver part of?").
	FineGrained bool
}

// DefaultOptions returns the conventional fine-tuning field names.
func DefaultOptions() Options {
	return Options{PromptField: "prompt", CompletionField: "completion", FineGrained: true}
}

func (o Options) validate() error {
	if o.PromptField == "" || o.CompletionField == "" {
		return fmt.Errorf("prompt and completion field names are required")
	}
	if o.PromptField == o.CompletionField {
		return fmt.Errorf("prompt and completion field names must differ")
	}
	return nil
}

// ClassDefinition is one class rendered for corpus output.
type ClassDefinition struct {
	Class      ontology.Class
	Definition render.Definition
}

// Summary reports the outcome of one generation run.
type Summary struct {
	RunID    string
	Classes  int
	Records  int
	Failures int
	Failed   []string
}

// Generator renders every labeled class of a store into corpus records.
type Generator struct {
	store    ontology.Store
	renderer *render.Renderer
	logger   *slog.Logger
	metrics  *Metrics

	// OnDefinition, when set, runs for each successfully rendered class
	// before its records are written. An error aborts the run.
	OnDefinition func(context.Context, ClassDefinition) error
}

// NewGenerator wires a generator. metrics may be nil when no collection is
// wanted.
func NewGenerator(store ontology.Store, renderer *render.Renderer, logger *slog.Logger, metrics *Metrics) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{store: store, renderer: renderer, logger: logger, metrics: metrics}
}

func (g *Generator) cfg() *config.Config { return g.renderer.Config() }

// Definitions lazily renders every labeled class in IRI order. A per-class
// failure is yielded alongside its class and generation continues; callers
// decide whether failures abort the run.
func (g *Generator) Definitions(ctx context.Context) iter.Seq2[ClassDefinition, error] {
	return func(yield func(ClassDefinition, error) bool) {
		classes, err := g.store.Classes(ctx)
		if err != nil {
			yield(ClassDefinition{}, fmt.Errorf("list classes: %w", err))
			return
		}
		for _, class := range classes {
			if ctx.Err() != nil {
				yield(ClassDefinition{Class: class}, ctx.Err())
				return
			}
			facts, err := FactsFor(ctx, g.store, g.cfg(), class)
			if err != nil {
				if !yield(ClassDefinition{Class: class}, err) {
					return
				}
				continue
			}
			def := g.renderer.ComposeDefinition(facts)
			if !yield(ClassDefinition{Class: class, Definition: def}, nil) {
				return
			}
		}
	}
}

// Run renders the whole store into JSONL records on w. Classes that fail to
// render are logged, counted, and skipped; the run itself only fails on
// store or write errors.
func (g *Generator) Run(ctx context.Context, w io.Writer, opts Options) (Summary, error) {
	if err := opts.validate(); err != nil {
		return Summary{}, err
	}
	summary := Summary{RunID: uuid.NewString()}
	writer := NewWriter(w, opts)

	g.logger.Info("corpus run starting", "run_id", summary.RunID)

	for def, err := range g.Definitions(ctx) {
		if err != nil {
			if def.Class.IRI == "" || ctx.Err() != nil {
				return summary, err
			}
			summary.Failures++
			summary.Failed = append(summary.Failed, def.Class.IRI)
			if g.metrics != nil {
				g.metrics.Failures.Inc()
			}
			g.logger.Warn("class skipped", "run_id", summary.RunID, "class", def.Class.IRI, "error", err)
			continue
		}

		if g.OnDefinition != nil {
			if err := g.OnDefinition(ctx, def); err != nil {
				return summary, fmt.Errorf("definition hook for %s: %w", def.Class.IRI, err)
			}
		}
		n, err := writer.WriteDefinition(def)
		if err != nil {
			return summary, fmt.Errorf("write records for %s: %w", def.Class.IRI, err)
		}
		summary.Classes++
		summary.Records += n
		if g.metrics != nil {
			g.metrics.ClassesRendered.Inc()
			g.metrics.RecordsWritten.Add(float64(n))
		}
		for _, diag := range def.Definition.Diagnostics {
			g.logger.Debug("rendering diagnostic",
				"run_id", summary.RunID, "class", def.Class.IRI,
				"property", diag.PropertyIRI, "message", diag.Message)
		}
	}

	g.logger.Info("corpus run finished",
		"run_id", summary.RunID, "classes", summary.Classes,
		"records", summary.Records, "failures", summary.Failures)
	return summary, nil
}
