// Package ontology defines the narrow, read-only interface through which the
// renderers consume an ontology: label lookup, asserted superclass and
// equivalence expressions, property reflexivity, and expert-authored
// definitions. Reasoning happens elsewhere; stores only answer queries about
// what was asserted or already inferred.
package ontology

import (
	"context"
	"errors"

	"github.com/c360studio/semverbal/expression"
)

// ErrNotFound is returned when an entity is not present in the store.
var ErrNotFound = errors.New("entity not found")

// Class is a named class with its human label.
type Class struct {
	IRI   string
	Label string
}

// Property is an object property with its label and reflexivity assertion.
type Property struct {
	IRI       string
	Label     string
	Reflexive bool
}

// Store is the read-only ontology collaborator consumed by rendering and
// corpus generation. Implementations must be safe for concurrent readers.
type Store interface {
	// OntologyLabel returns the ontology's title (dc:title), or "" when
	// none is asserted.
	OntologyLabel(ctx context.Context) (string, error)

	// LabelOf returns the rdfs:label of an entity.
	LabelOf(ctx context.Context, iri string) (string, error)

	// SuperClassExpressionsOf returns the asserted subsumers of a class,
	// in assertion order.
	SuperClassExpressionsOf(ctx context.Context, classIRI string) ([]expression.ClassExpression, error)

	// EquivalentClassExpressionsOf returns the expressions asserted
	// equivalent to a class, in assertion order.
	EquivalentClassExpressionsOf(ctx context.Context, classIRI string) ([]expression.ClassExpression, error)

	// IsReflexive reports whether a property is asserted reflexive.
	IsReflexive(ctx context.Context, propertyIRI string) (bool, error)

	// ExpertDefinitionValue returns the asserted value of an
	// expert-definition annotation property on an entity, or "" when the
	// entity carries none.
	ExpertDefinitionValue(ctx context.Context, entityIRI, propertyIRI string) (string, error)

	// Classes returns every labeled class, ordered by IRI for
	// deterministic batch runs.
	Classes(ctx context.Context) ([]Class, error)

	// FindClasses returns classes whose label matches the pattern: a
	// case-insensitive substring match, or a regular expression when
	// regex is set.
	FindClasses(ctx context.Context, pattern string, regex bool) ([]Class, error)

	// Properties returns every property, ordered by IRI.
	Properties(ctx context.Context) ([]Property, error)

	// ClassByLabel resolves a class by exact label.
	ClassByLabel(ctx context.Context, label string) (Class, error)
}
