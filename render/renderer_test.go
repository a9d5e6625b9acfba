package render

import (
	"testing"

	"github.com/c360studio/semverbal/config"
	"github.com/c360studio/semverbal/expression"
	"github.com/c360studio/semverbal/vocabulary/owl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rendererYAML = `
role_restriction_phrasing:
  "obo:RO_0002216":
    - "is a conduit for {}"
    - "What is {} a conduit for?"
  "obo:BFO_0000051":
    - "has {} as its part"
    - "has {} as its parts"
    - "What are the parts of {}?"
reflexive_roles:
  - "obo:RO_0002131":
      - "overlaps with itself"
skip:
  - "obo:RO_0002577"
`

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	cfg, err := config.Load([]byte(rendererYAML))
	require.NoError(t, err)
	return New(cfg)
}

func conduitFor(filler expression.ClassExpression) expression.Restriction {
	return expression.Restriction{
		Property:   expression.PropertyRef{IRI: "obo:RO_0002216", Label: "conduit for"},
		Quantifier: expression.Existential,
		Filler:     filler,
	}
}

func hasPart(q expression.Quantifier, n int, filler expression.ClassExpression) expression.Restriction {
	return expression.Restriction{
		Property:    expression.PropertyRef{IRI: "obo:BFO_0000051", Label: "has part"},
		Quantifier:  q,
		Cardinality: n,
		Filler:      filler,
	}
}

func TestRenderConjunctionWithRestriction(t *testing.T) {
	r := testRenderer(t)
	expr := expression.Conjunction{Operands: []expression.ClassExpression{
		expression.Atomic{IRI: "obo:FMA_12345", Label: "Foramen of skull"},
		conduitFor(expression.Atomic{IRI: "obo:FMA_54321", Label: "vein of vestibular aqueduct"}),
	}}

	result, err := r.Render(expr)
	require.NoError(t, err)
	assert.Equal(t, "a foramen of skull that is a conduit for a vein of vestibular aqueduct", result.Text)
	assert.Empty(t, result.Diagnostics)
}

func TestRenderConjunctionWithDisjunction(t *testing.T) {
	r := testRenderer(t)
	expr := expression.Conjunction{Operands: []expression.ClassExpression{
		expression.Atomic{Label: "anatomical cluster"},
		expression.Disjunction{Operands: []expression.ClassExpression{
			expression.Atomic{Label: "left lobe"},
			expression.Atomic{Label: "right lobe"},
		}},
	}}

	result, err := r.Render(expr)
	require.NoError(t, err)
	assert.Equal(t, "an anatomical cluster that is a left lobe or a right lobe", result.Text)
}

func TestRenderConjunctionWithNestedConjunction(t *testing.T) {
	r := testRenderer(t)
	expr := expression.Conjunction{Operands: []expression.ClassExpression{
		expression.Atomic{Label: "foramen of skull"},
		expression.Conjunction{Operands: []expression.ClassExpression{
			expression.Atomic{Label: "cranial opening"},
			conduitFor(expression.Atomic{Label: "vein"}),
		}},
	}}

	result, err := r.Render(expr)
	require.NoError(t, err)
	assert.Equal(t, "a foramen of skull that is a cranial opening that is a conduit for a vein", result.Text)
}

func TestRenderIsDeterministic(t *testing.T) {
	r := testRenderer(t)
	expr := expression.Conjunction{Operands: []expression.ClassExpression{
		expression.Atomic{Label: "organ"},
		hasPart(expression.Existential, 0, expression.Atomic{Label: "lobe"}),
		conduitFor(expression.Atomic{Label: "vein"}),
	}}

	first, err := r.Render(expr)
	require.NoError(t, err)
	second, err := r.Render(expr)
	require.NoError(t, err)
	assert.Equal(t, first.Text, second.Text)
}

func TestRenderCardinalities(t *testing.T) {
	r := testRenderer(t)
	bone := expression.Atomic{Label: "skull bone"}

	tests := []struct {
		name string
		expr expression.Restriction
		want string
	}{
		{"exactly one is singular", hasPart(expression.ExactCardinality, 1, bone),
			"has one skull bone as its part"},
		{"exactly two is plural", hasPart(expression.ExactCardinality, 2, bone),
			"has two skull bone as its parts"},
		{"at least", hasPart(expression.MinCardinality, 2, bone),
			"has at least two skull bone as its parts"},
		{"at most", hasPart(expression.MaxCardinality, 3, bone),
			"has at most three skull bone as its parts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.Render(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Text)
		})
	}
}

func TestRenderExistentialOverCompositeIsPlural(t *testing.T) {
	r := testRenderer(t)
	expr := hasPart(expression.Existential, 0, expression.Disjunction{Operands: []expression.ClassExpression{
		expression.Atomic{Label: "left lobe"},
		expression.Atomic{Label: "right lobe"},
	}})

	result, err := r.Render(expr)
	require.NoError(t, err)
	assert.Equal(t, "has a left lobe or a right lobe as its parts", result.Text)
}

func TestRenderComplement(t *testing.T) {
	r := testRenderer(t)

	result, err := r.Render(expression.Complement{Operand: expression.Atomic{Label: "paired organ"}})
	require.NoError(t, err)
	assert.Equal(t, "that is not a paired organ", result.Text)
}

func TestRenderReflexiveDiscardsFiller(t *testing.T) {
	r := testRenderer(t)
	expr := expression.Restriction{
		Property:   expression.PropertyRef{IRI: "obo:RO_0002131", Label: "overlaps", Reflexive: true},
		Quantifier: expression.Existential,
		Filler: expression.Conjunction{Operands: []expression.ClassExpression{
			expression.Atomic{Label: "anything"},
			expression.Atomic{Label: "at all"},
		}},
	}

	result, err := r.Render(expr)
	require.NoError(t, err)
	assert.Equal(t, "overlaps with itself", result.Text)
}

func TestRenderOwlBuiltins(t *testing.T) {
	r := testRenderer(t)

	result, err := r.Render(expression.Atomic{IRI: owl.Thing, Label: "Thing"})
	require.NoError(t, err)
	assert.Equal(t, "Everything", result.Text)

	result, err = r.Render(expression.Atomic{IRI: owl.Nothing, Label: "Nothing"})
	require.NoError(t, err)
	assert.Equal(t, "Nothing", result.Text)
}

func TestRenderSkippedPropertyInConjunction(t *testing.T) {
	r := testRenderer(t)
	expr := expression.Conjunction{Operands: []expression.ClassExpression{
		expression.Atomic{Label: "lobe of lung"},
		expression.Restriction{
			Property:   expression.PropertyRef{IRI: "obo:RO_0002577", Label: "system component"},
			Quantifier: expression.Existential,
			Filler:     expression.Atomic{Label: "respiratory system"},
		},
	}}

	result, err := r.Render(expr)
	require.NoError(t, err)
	assert.Equal(t, "a lobe of lung", result.Text)
}

func TestRenderFallbackPhrasingDiagnostic(t *testing.T) {
	r := testRenderer(t)
	expr := expression.Restriction{
		Property:   expression.PropertyRef{IRI: "obo:RO_9999", Label: "drains into"},
		Quantifier: expression.Existential,
		Filler:     expression.Atomic{Label: "superior vena cava"},
	}

	result, err := r.Render(expr)
	require.NoError(t, err)
	assert.Equal(t, "is drains into a superior vena cava", result.Text)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, "obo:RO_9999", result.Diagnostics[0].PropertyIRI)
}

func TestRenderUnresolvedProperty(t *testing.T) {
	r := testRenderer(t)
	expr := expression.Restriction{
		Property:   expression.PropertyRef{IRI: "obo:RO_0000000"},
		Quantifier: expression.Existential,
		Filler:     expression.Atomic{Label: "something"},
	}

	_, err := r.Render(expr)
	require.Error(t, err)
	assert.True(t, IsUnresolvedProperty(err))
}

func TestRenderDepthExceeded(t *testing.T) {
	cfg, err := config.Load([]byte("max_render_depth: 2\n"))
	require.NoError(t, err)
	r := New(cfg)

	deep := expression.ClassExpression(expression.Atomic{Label: "cell"})
	for range 4 {
		deep = expression.Complement{Operand: deep}
	}

	_, err = r.Render(deep)
	require.Error(t, err)
	assert.True(t, IsDepthExceeded(err))
}
