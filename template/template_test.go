package template

import (
	"testing"

	"github.com/c360studio/semverbal/config"
	"github.com/c360studio/semverbal/expression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryFor(t *testing.T, yaml string) *Registry {
	t.Helper()
	cfg, err := config.Load([]byte(yaml))
	require.NoError(t, err)
	return NewRegistry(cfg)
}

func TestResolveExplicitThreePhrases(t *testing.T) {
	r := registryFor(t, `
role_restriction_phrasing:
  "obo:BFO_0000050":
    - "is a part of {}"
    - "are parts of {}"
    - "What is {} a part of?"
`)
	prop := expression.PropertyRef{IRI: "obo:BFO_0000050", Label: "part of"}

	entry, diag := r.Resolve(prop)
	assert.Nil(t, diag)
	assert.Equal(t, "is a part of {}", entry.Phrase(Singular))
	assert.Equal(t, "are parts of {}", entry.Phrase(Plural))
	assert.Equal(t, "What is {} a part of?", entry.DefinitionPrompt)
}

func TestResolveExplicitTwoPhrases(t *testing.T) {
	r := registryFor(t, `
role_restriction_phrasing:
  "obo:RO_0001025":
    - "is located in {}"
    - "Where is {} located?"
`)
	prop := expression.PropertyRef{IRI: "obo:RO_0001025", Label: "located in"}

	entry, diag := r.Resolve(prop)
	assert.Nil(t, diag)
	// With two phrases the first serves both numbers.
	assert.Equal(t, "is located in {}", entry.Phrase(Singular))
	assert.Equal(t, "is located in {}", entry.Phrase(Plural))
	assert.Equal(t, "Where is {} located?", entry.DefinitionPrompt)
}

func TestResolveStandardConvention(t *testing.T) {
	r := registryFor(t, `
standard_role_restriction_is_phrasing:
  - "obo:RO_0002216"
`)
	prop := expression.PropertyRef{IRI: "obo:RO_0002216", Label: "conduit for"}

	entry, diag := r.Resolve(prop)
	assert.Nil(t, diag)
	assert.Equal(t, "is conduit for {}", entry.Phrase(Singular))
	assert.Equal(t, "What is {} conduit for?", entry.DefinitionPrompt)
}

func TestResolveExplicitWinsOverStandard(t *testing.T) {
	r := registryFor(t, `
standard_role_restriction_is_phrasing:
  - "obo:BFO_0000050"
role_restriction_phrasing:
  "obo:BFO_0000050":
    - "is a part of {}"
    - "What is {} a part of?"
`)
	prop := expression.PropertyRef{IRI: "obo:BFO_0000050", Label: "part of"}

	entry, diag := r.Resolve(prop)
	assert.Nil(t, diag)
	assert.Equal(t, "is a part of {}", entry.Phrase(Singular))
}

func TestResolveFallbackReportsDiagnostic(t *testing.T) {
	r := registryFor(t, "")
	prop := expression.PropertyRef{IRI: "obo:RO_9999", Label: "drains into"}

	entry, diag := r.Resolve(prop)
	require.NotNil(t, diag)
	assert.Equal(t, "obo:RO_9999", diag.PropertyIRI)
	assert.Equal(t, "is drains into {}", entry.Phrase(Singular))
	assert.Equal(t, "What is {} drains into?", entry.DefinitionPrompt)
}

func TestReflexiveOverridesPhrasing(t *testing.T) {
	r := registryFor(t, `
role_restriction_phrasing:
  "obo:RO_0002131":
    - "overlaps {}"
    - "What does {} overlap?"
reflexive_roles:
  - "obo:RO_0002131":
      - "overlaps with itself"
`)
	prop := expression.PropertyRef{IRI: "obo:RO_0002131", Label: "overlaps", Reflexive: true}

	phrase, ok := r.Reflexive(prop)
	require.True(t, ok)
	assert.Equal(t, "overlaps with itself", phrase)

	// The phrase only applies to properties asserted reflexive.
	prop.Reflexive = false
	_, ok = r.Reflexive(prop)
	assert.False(t, ok)
}

func TestApply(t *testing.T) {
	assert.Equal(t, "is a part of the skull", Apply("is a part of {}", "the skull"))
	assert.Equal(t, "What is the liver a part of?", Apply("What is {} a part of?", "the liver"))
}
