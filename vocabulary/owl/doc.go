// Package owl provides IRI constants for the standard ontology vocabularies
// referenced by semverbal: OWL, RDF Schema, Dublin Core, and oboInOwl.
//
// The constants exist so that stores, configuration files, and tests agree on
// a single spelling of each IRI. No behavior lives here.
package owl
