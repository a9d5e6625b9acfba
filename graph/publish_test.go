package graph

import (
	"testing"
	"time"

	"github.com/c360studio/semverbal/ontology"
	"github.com/c360studio/semverbal/render"
	"github.com/c360studio/semverbal/vocabulary/semverbal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionEntityID(t *testing.T) {
	assert.Equal(t,
		"semverbal.local.definition.http.purl.obolibrary.org.obo.FMA_12345",
		DefinitionEntityID("http://purl.obolibrary.org/obo/FMA_12345"))
	assert.Equal(t,
		"semverbal.local.definition.obo.FMA_12345",
		DefinitionEntityID("obo:FMA_12345"))
}

func TestDefinitionTriples(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	class := ontology.Class{IRI: "obo:FMA_12345", Label: "foramen of skull"}
	def := render.Definition{Text: "The foramen of skull is defined in FMA as a cranial opening."}

	triples := DefinitionTriples("FMA", class, def, now)
	require.Len(t, triples, 4)
	for _, triple := range triples {
		assert.Equal(t, "semverbal.local.definition.obo.FMA_12345", triple.Subject)
		assert.Equal(t, "semverbal.corpus", triple.Source)
		assert.Equal(t, now, triple.Timestamp)
		assert.Equal(t, 1.0, triple.Confidence)
	}
	assert.Equal(t, semverbal.PredicateClassIRI, triples[0].Predicate)
	assert.Equal(t, "obo:FMA_12345", triples[0].Object)
	assert.Equal(t, semverbal.PredicateDefinitionText, triples[2].Predicate)
	assert.Equal(t, def.Text, triples[2].Object)

	withoutOnto := DefinitionTriples("", class, def, now)
	assert.Len(t, withoutOnto, 3)
}

func TestNilPublisherIsNoop(t *testing.T) {
	var p *Publisher
	err := p.PublishDefinition(t.Context(), "FMA", ontology.Class{IRI: "obo:FMA_1"}, render.Definition{})
	assert.NoError(t, err)
}
