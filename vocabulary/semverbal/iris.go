// Package semverbal defines the predicates used when publishing rendered
// definitions to the knowledge graph.
package semverbal

// Graph predicates for definition entities.
const (
	PredicateClassIRI       = "semverbal.class.iri"
	PredicateClassLabel     = "semverbal.class.label"
	PredicateDefinitionText = "semverbal.definition.text"
	PredicateOntologyLabel  = "semverbal.definition.ontology"
)
