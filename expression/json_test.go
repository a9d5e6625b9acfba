package expression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	expr := Conjunction{Operands: []ClassExpression{
		Atomic{IRI: "obo:FMA_99999", Label: "cranial opening"},
		Restriction{
			Property:    PropertyRef{IRI: "obo:BFO_0000050", Label: "part of"},
			Quantifier:  ExactCardinality,
			Cardinality: 2,
			Filler: Disjunction{Operands: []ClassExpression{
				Atomic{IRI: "obo:FMA_1", Label: "skull"},
				Complement{Operand: Atomic{IRI: "obo:FMA_2", Label: "mandible"}},
			}},
		},
	}}

	data, err := Encode(expr)
	require.NoError(t, err)
	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, expr, decoded)
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	_, err := Decode([]byte(`{"kind":"union-of"}`))
	assert.Error(t, err)
}

func TestDecodeRejectsBadJSON(t *testing.T) {
	_, err := Decode([]byte(`{"kind":`))
	assert.Error(t, err)
}

func TestQuantifierCardinality(t *testing.T) {
	assert.True(t, ExactCardinality.HasCardinality())
	assert.True(t, MinCardinality.HasCardinality())
	assert.True(t, MaxCardinality.HasCardinality())
	assert.False(t, Existential.HasCardinality())
	assert.False(t, Universal.HasCardinality())
}
