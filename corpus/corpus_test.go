package corpus

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/c360studio/semverbal/config"
	"github.com/c360studio/semverbal/expression"
	"github.com/c360studio/semverbal/ontology"
	"github.com/c360studio/semverbal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
tooling:
  expert_definition_properties:
    - "obo:IAO_0000115"
role_restriction_phrasing:
  "obo:RO_0002216":
    - "is a conduit for {}"
    - "What is {} a conduit for?"
`

func testStore(t *testing.T) *ontology.Memory {
	t.Helper()
	m := ontology.NewMemory("FMA")
	m.AddClass("obo:FMA_12345", "foramen of skull")
	m.AddProperty(ontology.Property{IRI: "obo:RO_0002216", Label: "conduit for"})
	m.AddSuperclass("obo:FMA_12345", expression.Atomic{IRI: "obo:FMA_99999", Label: "cranial opening"})
	m.AddSuperclass("obo:FMA_12345", expression.Restriction{
		Property:   expression.PropertyRef{IRI: "obo:RO_0002216", Label: "conduit for"},
		Quantifier: expression.Existential,
		Filler:     expression.Atomic{IRI: "obo:FMA_54321", Label: "vein of vestibular aqueduct"},
	})
	m.AddAnnotation("obo:FMA_12345", "obo:IAO_0000115", "An opening in the skull.")
	return m
}

func testGenerator(t *testing.T, store ontology.Store) *Generator {
	t.Helper()
	cfg, err := config.Load([]byte(testConfig))
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewGenerator(store, render.New(cfg), logger, nil)
}

func decodeLines(t *testing.T, data []byte) []map[string]string {
	t.Helper()
	var out []map[string]string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		var rec map[string]string
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		out = append(out, rec)
	}
	require.NoError(t, scanner.Err())
	return out
}

func TestRunWritesJSONL(t *testing.T) {
	g := testGenerator(t, testStore(t))
	var buf bytes.Buffer

	summary, err := g.Run(context.Background(), &buf, DefaultOptions())
	require.NoError(t, err)
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 1, summary.Classes)
	assert.Equal(t, 2, summary.Records)
	assert.Zero(t, summary.Failures)

	records := decodeLines(t, buf.Bytes())
	require.Len(t, records, 2)
	assert.Equal(t, map[string]string{
		"prompt": "What is the foramen of skull?",
		"completion": "An opening in the skull. " +
			"The foramen of skull is defined in FMA as a cranial opening. " +
			"It is a conduit for a vein of vestibular aqueduct.",
	}, records[0])
	assert.Equal(t, map[string]string{
		"prompt":     "What is the foramen of skull a conduit for?",
		"completion": "It is a conduit for a vein of vestibular aqueduct.",
	}, records[1])
}

func TestRunCustomFieldNames(t *testing.T) {
	g := testGenerator(t, testStore(t))
	var buf bytes.Buffer

	opts := Options{PromptField: "input", CompletionField: "output"}
	summary, err := g.Run(context.Background(), &buf, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Records)

	records := decodeLines(t, buf.Bytes())
	require.Len(t, records, 1)
	assert.Contains(t, records[0], "input")
	assert.Contains(t, records[0], "output")
}

func TestOptionsValidation(t *testing.T) {
	g := testGenerator(t, testStore(t))

	_, err := g.Run(context.Background(), io.Discard, Options{PromptField: "prompt"})
	assert.Error(t, err)

	_, err = g.Run(context.Background(), io.Discard, Options{PromptField: "x", CompletionField: "x"})
	assert.Error(t, err)
}

// brokenStore fails subsumption lookups for one class so the skip path can
// be exercised.
type brokenStore struct {
	*ontology.Memory
	failIRI string
}

func (b *brokenStore) SuperClassExpressionsOf(ctx context.Context, classIRI string) ([]expression.ClassExpression, error) {
	if classIRI == b.failIRI {
		return nil, fmt.Errorf("axiom table corrupt")
	}
	return b.Memory.SuperClassExpressionsOf(ctx, classIRI)
}

func TestRunSkipsFailingClass(t *testing.T) {
	store := testStore(t)
	store.AddClass("obo:FMA_00001", "broken class")
	g := testGenerator(t, &brokenStore{Memory: store, failIRI: "obo:FMA_00001"})
	var buf bytes.Buffer

	summary, err := g.Run(context.Background(), &buf, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Classes)
	assert.Equal(t, 1, summary.Failures)
	assert.Equal(t, []string{"obo:FMA_00001"}, summary.Failed)
}

func TestRecordsEmptyDefinition(t *testing.T) {
	def := ClassDefinition{Class: ontology.Class{IRI: "obo:FMA_1", Label: "bare class"}}
	assert.Empty(t, Records(def, DefaultOptions()))
}
