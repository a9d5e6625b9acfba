package justify

import (
	"testing"

	"github.com/c360studio/semverbal/config"
	"github.com/c360studio/semverbal/expression"
	"github.com/c360studio/semverbal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const justifyYAML = `
role_restriction_phrasing:
  "obo:RO_0002216":
    - "is a conduit for {}"
    - "What is {} a conduit for?"
class_inference_to_ignore:
  - "material entity"
  - "independent continuant"
`

func testProofRenderer(t *testing.T) *Renderer {
	t.Helper()
	cfg, err := config.Load([]byte(justifyYAML))
	require.NoError(t, err)
	return New(render.New(cfg))
}

func atomic(label string) expression.Atomic {
	return expression.Atomic{IRI: "obo:" + label, Label: label}
}

func TestRenderProofChain(t *testing.T) {
	j := testProofRenderer(t)
	steps := []Step{
		{Subject: atomic("foramen of skull"), Superclass: atomic("cranial opening"), Depth: 0},
		{Subject: atomic("cranial opening"), Superclass: atomic("anatomical opening"), Depth: 1},
	}

	result, err := j.RenderProof(steps)
	require.NoError(t, err)
	assert.Equal(t,
		"Every foramen of skull is a cranial opening.\n"+
			"  Every cranial opening is an anatomical opening.",
		result.Text)
}

func TestRenderProofElidesIgnoredClasses(t *testing.T) {
	j := testProofRenderer(t)
	steps := []Step{
		{Subject: atomic("foramen of skull"), Superclass: atomic("cranial opening"), Depth: 0},
		{Subject: atomic("cranial opening"), Superclass: atomic("material entity"), Depth: 1},
		{Subject: atomic("material entity"), Superclass: atomic("anatomical structure"), Depth: 2},
	}

	result, err := j.RenderProof(steps)
	require.NoError(t, err)
	// The elided step is transparent: the chain runs from "cranial
	// opening" straight to "anatomical structure", and the elision
	// consumes no indentation level.
	assert.Equal(t,
		"Every foramen of skull is a cranial opening.\n"+
			"  Every cranial opening is an anatomical structure.",
		result.Text)
}

func TestRenderProofElisionCarriesSubjectAcrossRuns(t *testing.T) {
	j := testProofRenderer(t)
	steps := []Step{
		{Subject: atomic("vein"), Superclass: atomic("material entity"), Depth: 0},
		{Subject: atomic("material entity"), Superclass: atomic("independent continuant"), Depth: 1},
		{Subject: atomic("independent continuant"), Superclass: atomic("anatomical structure"), Depth: 2},
	}

	result, err := j.RenderProof(steps)
	require.NoError(t, err)
	assert.Equal(t, "Every vein is an anatomical structure.", result.Text)
}

func TestRenderProofAllElided(t *testing.T) {
	j := testProofRenderer(t)
	steps := []Step{
		{Subject: atomic("vein"), Superclass: atomic("material entity"), Depth: 0},
	}

	result, err := j.RenderProof(steps)
	require.NoError(t, err)
	assert.Empty(t, result.Text)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, NoInformativeSteps, result.Diagnostics[0].Message)
}

func TestRenderProofEquivalenceStep(t *testing.T) {
	j := testProofRenderer(t)
	steps := []Step{
		{Subject: atomic("foramen of skull"), Superclass: atomic("cranial opening"), Equivalence: true},
	}

	result, err := j.RenderProof(steps)
	require.NoError(t, err)
	assert.Equal(t, "Every foramen of skull is a cranial opening and vice versa.", result.Text)
}

func TestRenderProofRestrictionSuperclass(t *testing.T) {
	j := testProofRenderer(t)
	steps := []Step{
		{
			Subject: atomic("foramen of skull"),
			Superclass: expression.Restriction{
				Property:   expression.PropertyRef{IRI: "obo:RO_0002216", Label: "conduit for"},
				Quantifier: expression.Existential,
				Filler:     atomic("vein of vestibular aqueduct"),
			},
		},
	}

	result, err := j.RenderProof(steps)
	require.NoError(t, err)
	// A predicative superclass phrase supplies its own copula.
	assert.Equal(t, "Every foramen of skull is a conduit for a vein of vestibular aqueduct.", result.Text)
}

func TestRenderProofIndentationNeverDecreases(t *testing.T) {
	j := testProofRenderer(t)
	steps := []Step{
		{Subject: atomic("a"), Superclass: atomic("b"), Depth: 0},
		{Subject: atomic("b"), Superclass: atomic("material entity"), Depth: 1},
		{Subject: atomic("material entity"), Superclass: atomic("c"), Depth: 2},
		{Subject: atomic("c"), Superclass: atomic("d"), Depth: 3},
	}

	result, err := j.RenderProof(steps)
	require.NoError(t, err)
	assert.Equal(t,
		"Every a is a b.\n"+
			"  Every b is a c.\n"+
			"    Every c is a d.",
		result.Text)
}

func TestProofDocumentRoundTrip(t *testing.T) {
	steps := []Step{
		{Subject: atomic("foramen of skull"), Superclass: atomic("cranial opening"), Depth: 1, Equivalence: true},
	}

	data, err := EncodeProof(steps)
	require.NoError(t, err)
	decoded, err := ParseProof(data)
	require.NoError(t, err)
	assert.Equal(t, steps, decoded)
}

func TestParseProofRejectsIncompleteStep(t *testing.T) {
	_, err := ParseProof([]byte(`{"steps":[{"depth":0}]}`))
	assert.Error(t, err)
}
