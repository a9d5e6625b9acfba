package expression

import (
	"encoding/json"
	"fmt"
)

// Wire format for persisted expressions. Stores and proof documents encode
// each node as an envelope keyed by "kind".
type envelope struct {
	Kind        string          `json:"kind"`
	IRI         string          `json:"iri,omitempty"`
	Label       string          `json:"label,omitempty"`
	Operands    []json.RawMessage `json:"operands,omitempty"`
	Operand     json.RawMessage `json:"operand,omitempty"`
	Property    *PropertyRef    `json:"property,omitempty"`
	Quantifier  Quantifier      `json:"quantifier,omitempty"`
	Cardinality int             `json:"cardinality,omitempty"`
	Filler      json.RawMessage `json:"filler,omitempty"`
}

const (
	kindAtomic      = "atomic"
	kindConjunction = "and"
	kindDisjunction = "or"
	kindRestriction = "restriction"
	kindComplement  = "not"
)

// Encode serializes an expression tree to its JSON wire form.
func Encode(expr ClassExpression) ([]byte, error) {
	env, err := toEnvelope(expr)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

// Decode parses the JSON wire form back into an expression tree.
func Decode(data []byte) (ClassExpression, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse expression: %w", err)
	}
	return fromEnvelope(env)
}

func toEnvelope(expr ClassExpression) (*envelope, error) {
	switch e := expr.(type) {
	case Atomic:
		return &envelope{Kind: kindAtomic, IRI: e.IRI, Label: e.Label}, nil
	case Conjunction:
		ops, err := encodeOperands(e.Operands)
		if err != nil {
			return nil, err
		}
		return &envelope{Kind: kindConjunction, Operands: ops}, nil
	case Disjunction:
		ops, err := encodeOperands(e.Operands)
		if err != nil {
			return nil, err
		}
		return &envelope{Kind: kindDisjunction, Operands: ops}, nil
	case Restriction:
		filler, err := Encode(e.Filler)
		if err != nil {
			return nil, err
		}
		prop := e.Property
		return &envelope{
			Kind:        kindRestriction,
			Property:    &prop,
			Quantifier:  e.Quantifier,
			Cardinality: e.Cardinality,
			Filler:      filler,
		}, nil
	case Complement:
		op, err := Encode(e.Operand)
		if err != nil {
			return nil, err
		}
		return &envelope{Kind: kindComplement, Operand: op}, nil
	case nil:
		return nil, fmt.Errorf("encode expression: nil expression")
	default:
		return nil, fmt.Errorf("encode expression: unknown variant %T", expr)
	}
}

func encodeOperands(operands []ClassExpression) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(operands))
	for _, op := range operands {
		data, err := Encode(op)
		if err != nil {
			return nil, err
		}
		out = append(out, data)
	}
	return out, nil
}

func fromEnvelope(env envelope) (ClassExpression, error) {
	switch env.Kind {
	case kindAtomic:
		return Atomic{IRI: env.IRI, Label: env.Label}, nil
	case kindConjunction:
		ops, err := decodeOperands(env.Operands)
		if err != nil {
			return nil, err
		}
		return Conjunction{Operands: ops}, nil
	case kindDisjunction:
		ops, err := decodeOperands(env.Operands)
		if err != nil {
			return nil, err
		}
		return Disjunction{Operands: ops}, nil
	case kindRestriction:
		if env.Property == nil {
			return nil, fmt.Errorf("parse expression: restriction without property")
		}
		if len(env.Filler) == 0 {
			return nil, fmt.Errorf("parse expression: restriction without filler")
		}
		filler, err := Decode(env.Filler)
		if err != nil {
			return nil, err
		}
		return Restriction{
			Property:    *env.Property,
			Quantifier:  env.Quantifier,
			Cardinality: env.Cardinality,
			Filler:      filler,
		}, nil
	case kindComplement:
		if len(env.Operand) == 0 {
			return nil, fmt.Errorf("parse expression: complement without operand")
		}
		op, err := Decode(env.Operand)
		if err != nil {
			return nil, err
		}
		return Complement{Operand: op}, nil
	default:
		return nil, fmt.Errorf("parse expression: unknown kind %q", env.Kind)
	}
}

func decodeOperands(raw []json.RawMessage) ([]ClassExpression, error) {
	ops := make([]ClassExpression, 0, len(raw))
	for _, data := range raw {
		op, err := Decode(data)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}
