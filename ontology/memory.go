package ontology

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/c360studio/semverbal/expression"
)

// Memory is an in-memory Store, used for tests and for small ontologies
// loaded straight from a dump. All writes happen before the store is handed
// to readers; afterwards it is effectively immutable and safe to share.
type Memory struct {
	label       string
	labels      map[string]string
	superclass  map[string][]expression.ClassExpression
	equivalent  map[string][]expression.ClassExpression
	properties  map[string]Property
	annotations map[string]map[string]string
	classOrder  []string
}

// NewMemory creates an empty in-memory store.
func NewMemory(ontologyLabel string) *Memory {
	return &Memory{
		label:       ontologyLabel,
		labels:      make(map[string]string),
		superclass:  make(map[string][]expression.ClassExpression),
		equivalent:  make(map[string][]expression.ClassExpression),
		properties:  make(map[string]Property),
		annotations: make(map[string]map[string]string),
	}
}

// FromDump builds an in-memory store from a parsed dump.
func FromDump(d *Dump) (*Memory, error) {
	d.ResolveLabels()
	m := NewMemory(d.Ontology.Label)
	for _, c := range d.Classes {
		m.AddClass(c.IRI, c.Label)
	}
	for _, p := range d.Properties {
		m.AddProperty(p)
	}
	for _, axiom := range d.Axioms {
		expr, err := axiom.Decode()
		if err != nil {
			return nil, err
		}
		switch axiom.Type {
		case AxiomEquivalent:
			m.AddEquivalent(axiom.Subject, expr)
		default:
			m.AddSuperclass(axiom.Subject, expr)
		}
	}
	for _, ann := range d.Annotations {
		m.AddAnnotation(ann.Subject, ann.Property, ann.Value)
	}
	return m, nil
}

// AddClass registers a labeled class.
func (m *Memory) AddClass(iri, label string) {
	if _, exists := m.labels[iri]; !exists {
		m.classOrder = append(m.classOrder, iri)
	}
	m.labels[iri] = label
}

// AddProperty registers a property.
func (m *Memory) AddProperty(p Property) {
	m.properties[p.IRI] = p
}

// AddSuperclass appends an asserted subsumer for a class.
func (m *Memory) AddSuperclass(classIRI string, expr expression.ClassExpression) {
	m.superclass[classIRI] = append(m.superclass[classIRI], expr)
}

// AddEquivalent appends an asserted equivalence for a class.
func (m *Memory) AddEquivalent(classIRI string, expr expression.ClassExpression) {
	m.equivalent[classIRI] = append(m.equivalent[classIRI], expr)
}

// AddAnnotation records a literal annotation on an entity.
func (m *Memory) AddAnnotation(subjectIRI, propertyIRI, value string) {
	if m.annotations[subjectIRI] == nil {
		m.annotations[subjectIRI] = make(map[string]string)
	}
	m.annotations[subjectIRI][propertyIRI] = value
}

// OntologyLabel implements Store.
func (m *Memory) OntologyLabel(context.Context) (string, error) { return m.label, nil }

// LabelOf implements Store.
func (m *Memory) LabelOf(_ context.Context, iri string) (string, error) {
	if label, ok := m.labels[iri]; ok {
		return label, nil
	}
	if p, ok := m.properties[iri]; ok {
		return p.Label, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, iri)
}

// SuperClassExpressionsOf implements Store.
func (m *Memory) SuperClassExpressionsOf(_ context.Context, classIRI string) ([]expression.ClassExpression, error) {
	return m.superclass[classIRI], nil
}

// EquivalentClassExpressionsOf implements Store.
func (m *Memory) EquivalentClassExpressionsOf(_ context.Context, classIRI string) ([]expression.ClassExpression, error) {
	return m.equivalent[classIRI], nil
}

// IsReflexive implements Store.
func (m *Memory) IsReflexive(_ context.Context, propertyIRI string) (bool, error) {
	p, ok := m.properties[propertyIRI]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNotFound, propertyIRI)
	}
	return p.Reflexive, nil
}

// ExpertDefinitionValue implements Store.
func (m *Memory) ExpertDefinitionValue(_ context.Context, entityIRI, propertyIRI string) (string, error) {
	return m.annotations[entityIRI][propertyIRI], nil
}

// Classes implements Store.
func (m *Memory) Classes(context.Context) ([]Class, error) {
	iris := make([]string, len(m.classOrder))
	copy(iris, m.classOrder)
	sort.Strings(iris)
	out := make([]Class, 0, len(iris))
	for _, iri := range iris {
		if label := m.labels[iri]; label != "" {
			out = append(out, Class{IRI: iri, Label: label})
		}
	}
	return out, nil
}

// FindClasses implements Store.
func (m *Memory) FindClasses(ctx context.Context, pattern string, regex bool) ([]Class, error) {
	classes, err := m.Classes(ctx)
	if err != nil {
		return nil, err
	}
	var matcher func(string) bool
	if regex {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad label pattern: %w", err)
		}
		matcher = re.MatchString
	} else {
		needle := strings.ToLower(pattern)
		matcher = func(label string) bool {
			return strings.Contains(strings.ToLower(label), needle)
		}
	}
	var out []Class
	for _, c := range classes {
		if matcher(c.Label) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Properties implements Store.
func (m *Memory) Properties(context.Context) ([]Property, error) {
	iris := make([]string, 0, len(m.properties))
	for iri := range m.properties {
		iris = append(iris, iri)
	}
	sort.Strings(iris)
	out := make([]Property, 0, len(iris))
	for _, iri := range iris {
		out = append(out, m.properties[iri])
	}
	return out, nil
}

// ClassByLabel implements Store.
func (m *Memory) ClassByLabel(ctx context.Context, label string) (Class, error) {
	classes, err := m.Classes(ctx)
	if err != nil {
		return Class{}, err
	}
	for _, c := range classes {
		if c.Label == label {
			return c, nil
		}
	}
	return Class{}, fmt.Errorf("%w: class labeled %q", ErrNotFound, label)
}
