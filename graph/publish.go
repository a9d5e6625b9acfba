// Package graph publishes rendered class definitions to the knowledge graph
// over NATS, as triple batches on the ingestion stream.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/c360studio/semverbal/ontology"
	"github.com/c360studio/semverbal/render"
	"github.com/c360studio/semverbal/vocabulary/semverbal"
	"github.com/nats-io/nats.go"
)

// Subject for definition ingestion.
const DefinitionIngestSubject = "graph.ingest.definition"

// Triple is one graph assertion.
type Triple struct {
	Subject    string    `json:"subject"`
	Predicate  string    `json:"predicate"`
	Object     any       `json:"object"`
	Source     string    `json:"source"`
	Timestamp  time.Time `json:"timestamp"`
	Confidence float64   `json:"confidence"`
}

// EntityIngestMessage is the message format for graph ingestion.
type EntityIngestMessage struct {
	ID        string    `json:"id"`
	Triples   []Triple  `json:"triples"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Publisher publishes definition entities. A nil Publisher is a no-op so
// callers can wire publishing conditionally.
type Publisher struct {
	js  nats.JetStreamContext
	now func() time.Time
}

// Connect dials NATS and prepares a JetStream publisher. The returned close
// function drains the connection.
func Connect(url string) (*Publisher, func(), error) {
	nc, err := nats.Connect(url, nats.Name("semverbal"))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to nats: %w", err)
	}
	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("jetstream context: %w", err)
	}
	return &Publisher{js: js, now: time.Now}, func() { _ = nc.Drain() }, nil
}

// PublishDefinition publishes one rendered class definition.
func (p *Publisher) PublishDefinition(ctx context.Context, onto string, class ontology.Class, def render.Definition) error {
	if p == nil {
		return nil
	}
	now := p.now()
	msg := EntityIngestMessage{
		ID:        DefinitionEntityID(class.IRI),
		Triples:   DefinitionTriples(onto, class, def, now),
		UpdatedAt: now,
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal definition entity: %w", err)
	}
	if _, err := p.js.Publish(DefinitionIngestSubject, data, nats.Context(ctx)); err != nil {
		return fmt.Errorf("publish definition entity: %w", err)
	}
	return nil
}

// DefinitionTriples builds the triple batch for one rendered definition.
func DefinitionTriples(onto string, class ontology.Class, def render.Definition, now time.Time) []Triple {
	entityID := DefinitionEntityID(class.IRI)
	triples := []Triple{
		{
			Subject:    entityID,
			Predicate:  semverbal.PredicateClassIRI,
			Object:     class.IRI,
			Source:     "semverbal.corpus",
			Timestamp:  now,
			Confidence: 1.0,
		},
		{
			Subject:    entityID,
			Predicate:  semverbal.PredicateClassLabel,
			Object:     class.Label,
			Source:     "semverbal.corpus",
			Timestamp:  now,
			Confidence: 1.0,
		},
		{
			Subject:    entityID,
			Predicate:  semverbal.PredicateDefinitionText,
			Object:     def.Text,
			Source:     "semverbal.corpus",
			Timestamp:  now,
			Confidence: 1.0,
		},
	}
	if onto != "" {
		triples = append(triples, Triple{
			Subject:    entityID,
			Predicate:  semverbal.PredicateOntologyLabel,
			Object:     onto,
			Source:     "semverbal.corpus",
			Timestamp:  now,
			Confidence: 1.0,
		})
	}
	return triples
}

// DefinitionEntityID generates a consistent entity ID for a class
// definition. Format: semverbal.local.definition.<iri with separators
// flattened>.
func DefinitionEntityID(classIRI string) string {
	flat := strings.NewReplacer("/", ".", ":", ".", "#", ".").Replace(classIRI)
	return "semverbal.local.definition." + strings.Trim(flat, ".")
}
