// Package template resolves phrase templates for property restrictions.
//
// Resolution precedence, first match wins: a curated phrasing entry, then the
// standard "is {label}" convention, then a best-effort fallback built from
// the property label. The fallback always renders; it additionally surfaces
// an advisory diagnostic so curators can spot properties that still need
// phrasing (the awkward-phrase discovery loop).
package template

import (
	"fmt"
	"strings"

	"github.com/c360studio/semverbal/config"
	"github.com/c360studio/semverbal/expression"
)

// Multiplicity selects between the singular and plural phrase of an entry.
type Multiplicity int

const (
	// Singular selects the singular phrase.
	Singular Multiplicity = iota

	// Plural selects the plural phrase.
	Plural
)

// Entry is a resolved phrase template for one property. Each phrase carries
// exactly one placeholder, substituted with the rendered filler text.
type Entry struct {
	Singular         string
	Plural           string
	DefinitionPrompt string
}

// Phrase returns the phrase for the requested multiplicity.
func (e Entry) Phrase(m Multiplicity) string {
	if m == Plural {
		return e.Plural
	}
	return e.Singular
}

// Apply substitutes the rendered filler into a phrase's placeholder.
func Apply(phrase, filler string) string {
	return strings.Replace(phrase, config.Placeholder, filler, 1)
}

// Diagnostic is an advisory attached to a rendering result. It never fails a
// render; callers surface or discard it.
type Diagnostic struct {
	PropertyIRI string
	Message     string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.PropertyIRI, d.Message)
}

// Registry resolves properties to phrase templates against an immutable
// configuration. It holds no mutable state and is safe for concurrent use.
type Registry struct {
	cfg *config.Config
}

// NewRegistry creates a registry over the given configuration.
func NewRegistry(cfg *config.Config) *Registry {
	return &Registry{cfg: cfg}
}

// Reflexive returns the fixed, self-contained phrase for a property that is
// asserted reflexive and has a configured reflexive phrasing. When it
// applies, the restriction's filler is discarded entirely.
func (r *Registry) Reflexive(prop expression.PropertyRef) (string, bool) {
	if !prop.Reflexive {
		return "", false
	}
	return r.cfg.ReflexivePhrase(prop.IRI)
}

// Resolve returns the phrase entry for a property. The second return value is
// a non-nil advisory when the property had no configured phrasing and the
// label-built fallback was used.
func (r *Registry) Resolve(prop expression.PropertyRef) (Entry, *Diagnostic) {
	if phrases, ok := r.cfg.ExplicitPhrases(prop.IRI); ok {
		return entryFromPhrases(phrases), nil
	}
	entry := standardEntry(prop.Label)
	if r.cfg.IsStandardRole(prop.IRI) {
		return entry, nil
	}
	return entry, &Diagnostic{
		PropertyIRI: prop.IRI,
		Message:     fmt.Sprintf("no phrasing configured for %q, using fallback %q", prop.Label, entry.Singular),
	}
}

// DefinitionPrompt returns the question phrase used for fine-grained corpus
// records on this property.
func (r *Registry) DefinitionPrompt(prop expression.PropertyRef) string {
	entry, _ := r.Resolve(prop)
	return entry.DefinitionPrompt
}

// entryFromPhrases maps a curated phrase list onto an Entry. Two phrases:
// the first serves both multiplicities and the second is the prompt. Three:
// singular, plural, prompt. Arity was validated at configuration load.
func entryFromPhrases(phrases []string) Entry {
	if len(phrases) == 2 {
		return Entry{Singular: phrases[0], Plural: phrases[0], DefinitionPrompt: phrases[1]}
	}
	return Entry{Singular: phrases[0], Plural: phrases[1], DefinitionPrompt: phrases[2]}
}

// standardEntry builds the deterministic "is {label}" convention for a
// property label. The same entry doubles as the unconfigured-property
// fallback so rendering never fails purely from missing configuration.
func standardEntry(label string) Entry {
	return Entry{
		Singular:         "is " + label + " " + config.Placeholder,
		Plural:           "is " + label + " " + config.Placeholder,
		DefinitionPrompt: "What is " + config.Placeholder + " " + label + "?",
	}
}
