package ontology

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/c360studio/semverbal/expression"
	"github.com/c360studio/semverbal/vocabulary/owl"
)

// Dump is the JSON exchange format for ontology content, produced by
// external extraction tooling and ingested by the stores. Expressions use
// the expression wire form.
type Dump struct {
	Ontology    DumpInfo         `json:"ontology"`
	Classes     []Class          `json:"classes"`
	Properties  []Property       `json:"properties"`
	Axioms      []DumpAxiom      `json:"axioms"`
	Annotations []DumpAnnotation `json:"annotations,omitempty"`
}

// DumpInfo describes the ontology itself.
type DumpInfo struct {
	IRI   string `json:"iri"`
	Label string `json:"label,omitempty"`
}

// Axiom types accepted in dumps.
const (
	AxiomSubclass   = "subclass"
	AxiomEquivalent = "equivalent"
)

// DumpAxiom is one asserted subsumption or equivalence.
type DumpAxiom struct {
	Subject    string          `json:"subject"`
	Type       string          `json:"type"`
	Expression json.RawMessage `json:"expression"`
}

// DumpAnnotation is one literal annotation assertion, used for expert
// definitions among others.
type DumpAnnotation struct {
	Subject  string `json:"subject"`
	Property string `json:"property"`
	Value    string `json:"value"`
}

// Decode parses the axiom's expression tree.
func (a DumpAxiom) Decode() (expression.ClassExpression, error) {
	return expression.Decode(a.Expression)
}

// ResolveLabels fills in labels the dump proper omits from its annotations:
// the ontology label from a dc:title on the ontology IRI, class labels from
// rdfs:label assertions. Labels already present win.
func (d *Dump) ResolveLabels() {
	for _, ann := range d.Annotations {
		switch ann.Property {
		case owl.DCTitle:
			if ann.Subject == d.Ontology.IRI && d.Ontology.Label == "" {
				d.Ontology.Label = ann.Value
			}
		case owl.RDFSLabel:
			for i := range d.Classes {
				if d.Classes[i].IRI == ann.Subject && d.Classes[i].Label == "" {
					d.Classes[i].Label = ann.Value
				}
			}
		}
	}
}

// ParseDump decodes a dump document and validates axiom types and
// expressions up front, so a bad dump fails at load rather than mid-render.
func ParseDump(data []byte) (*Dump, error) {
	var d Dump
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse ontology dump: %w", err)
	}
	for i, axiom := range d.Axioms {
		if axiom.Type != AxiomSubclass && axiom.Type != AxiomEquivalent {
			return nil, fmt.Errorf("parse ontology dump: axiom %d: unknown type %q", i, axiom.Type)
		}
		if _, err := axiom.Decode(); err != nil {
			return nil, fmt.Errorf("parse ontology dump: axiom %d: %w", i, err)
		}
	}
	d.ResolveLabels()
	return &d, nil
}

// ReadDump reads and decodes a dump from a stream.
func ReadDump(r io.Reader) (*Dump, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read ontology dump: %w", err)
	}
	return ParseDump(data)
}
