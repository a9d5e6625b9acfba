package corpus

import (
	"context"
	"fmt"

	"github.com/c360studio/semverbal/config"
	"github.com/c360studio/semverbal/expression"
	"github.com/c360studio/semverbal/ontology"
	"github.com/c360studio/semverbal/render"
)

// FactsFor assembles the rendering input for one class from the store: its
// ontology label, the first non-empty expert definition annotation, and the
// asserted equivalence and subsumption expressions.
func FactsFor(ctx context.Context, store ontology.Store, cfg *config.Config, class ontology.Class) (render.ClassFacts, error) {
	ontoLabel, err := store.OntologyLabel(ctx)
	if err != nil {
		return render.ClassFacts{}, fmt.Errorf("ontology label: %w", err)
	}

	var textual string
	for _, prop := range cfg.Tooling.ExpertDefinitionProperties {
		value, err := store.ExpertDefinitionValue(ctx, class.IRI, prop)
		if err != nil {
			return render.ClassFacts{}, fmt.Errorf("expert definition of %s: %w", class.IRI, err)
		}
		if value != "" {
			textual = value
			break
		}
	}

	equivalents, err := store.EquivalentClassExpressionsOf(ctx, class.IRI)
	if err != nil {
		return render.ClassFacts{}, fmt.Errorf("equivalents of %s: %w", class.IRI, err)
	}
	superclasses, err := store.SuperClassExpressionsOf(ctx, class.IRI)
	if err != nil {
		return render.ClassFacts{}, fmt.Errorf("superclasses of %s: %w", class.IRI, err)
	}

	return render.ClassFacts{
		Class:             expression.Atomic{IRI: class.IRI, Label: class.Label},
		TextualDefinition: textual,
		OntologyLabel:     ontoLabel,
		Equivalents:       equivalents,
		Superclasses:      superclasses,
	}, nil
}
