package justify

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/c360studio/semverbal/expression"
)

// Proof documents are the exchange format between external reasoner tooling
// and the explain command: a JSON object with one "steps" array, each step
// holding encoded subject and superclass expressions.

type stepDoc struct {
	Subject     json.RawMessage `json:"subject"`
	Superclass  json.RawMessage `json:"superclass"`
	Depth       int             `json:"depth"`
	Equivalence bool            `json:"equivalence,omitempty"`
}

type proofDoc struct {
	Steps []stepDoc `json:"steps"`
}

// ParseProof decodes a proof document into steps.
func ParseProof(data []byte) ([]Step, error) {
	var doc proofDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse proof: %w", err)
	}
	steps := make([]Step, 0, len(doc.Steps))
	for i, sd := range doc.Steps {
		if len(sd.Subject) == 0 || len(sd.Superclass) == 0 {
			return nil, fmt.Errorf("parse proof: step %d is missing subject or superclass", i)
		}
		subject, err := expression.Decode(sd.Subject)
		if err != nil {
			return nil, fmt.Errorf("parse proof: step %d subject: %w", i, err)
		}
		superclass, err := expression.Decode(sd.Superclass)
		if err != nil {
			return nil, fmt.Errorf("parse proof: step %d superclass: %w", i, err)
		}
		steps = append(steps, Step{
			Subject:     subject,
			Superclass:  superclass,
			Depth:       sd.Depth,
			Equivalence: sd.Equivalence,
		})
	}
	return steps, nil
}

// ReadProof reads and decodes a proof document from a stream.
func ReadProof(r io.Reader) ([]Step, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read proof: %w", err)
	}
	return ParseProof(data)
}

// EncodeProof serializes steps back to the document form, used when corpus
// tooling persists reasoner output for later explanation runs.
func EncodeProof(steps []Step) ([]byte, error) {
	doc := proofDoc{Steps: make([]stepDoc, 0, len(steps))}
	for _, step := range steps {
		subject, err := expression.Encode(step.Subject)
		if err != nil {
			return nil, err
		}
		superclass, err := expression.Encode(step.Superclass)
		if err != nil {
			return nil, err
		}
		doc.Steps = append(doc.Steps, stepDoc{
			Subject:     subject,
			Superclass:  superclass,
			Depth:       step.Depth,
			Equivalence: step.Equivalence,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}
