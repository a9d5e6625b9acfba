package expression

// Quantifier identifies how a restriction quantifies over its filler.
type Quantifier string

const (
	// Existential is an owl:someValuesFrom restriction.
	Existential Quantifier = "existential"

	// Universal is an owl:allValuesFrom restriction.
	Universal Quantifier = "universal"

	// ExactCardinality is an owl:qualifiedCardinality restriction.
	ExactCardinality Quantifier = "exact"

	// MinCardinality is an owl:minQualifiedCardinality restriction.
	MinCardinality Quantifier = "min"

	// MaxCardinality is an owl:maxQualifiedCardinality restriction.
	MaxCardinality Quantifier = "max"
)

// HasCardinality reports whether the quantifier carries a cardinality number.
func (q Quantifier) HasCardinality() bool {
	switch q {
	case ExactCardinality, MinCardinality, MaxCardinality:
		return true
	}
	return false
}

// PropertyRef identifies an object property by IRI together with the
// annotations the renderers need: its human label and whether the property is
// asserted reflexive for the subject.
type PropertyRef struct {
	IRI       string
	Label     string
	Reflexive bool
}

// ClassExpression is a node in a class-expression tree. It is a sealed
// interface: the only implementations are Atomic, Conjunction, Disjunction,
// Restriction, and Complement, so rendering code can switch exhaustively.
type ClassExpression interface {
	isClassExpression()
}

// Atomic is a reference to a named class, carrying its IRI and label.
type Atomic struct {
	IRI   string
	Label string
}

// Conjunction is a logical AND over an ordered sequence of operands.
// Operand order is preserved exactly as given by the source ontology.
type Conjunction struct {
	Operands []ClassExpression
}

// Disjunction is a logical OR over an ordered sequence of operands.
type Disjunction struct {
	Operands []ClassExpression
}

// Restriction asserts a property relationship, quantified over a filler
// class. Cardinality is meaningful only when Quantifier.HasCardinality().
type Restriction struct {
	Property    PropertyRef
	Quantifier  Quantifier
	Cardinality int
	Filler      ClassExpression
}

// Complement is a logical NOT over a single operand.
type Complement struct {
	Operand ClassExpression
}

func (Atomic) isClassExpression()      {}
func (Conjunction) isClassExpression() {}
func (Disjunction) isClassExpression() {}
func (Restriction) isClassExpression() {}
func (Complement) isClassExpression()  {}
