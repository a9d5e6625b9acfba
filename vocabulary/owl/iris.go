package owl

// Namespace prefixes for the standard vocabularies.
const (
	// Namespace is the OWL vocabulary namespace.
	Namespace = "http://www.w3.org/2002/07/owl#"

	// RDFSNamespace is the RDF Schema namespace.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// DCNamespace is the Dublin Core elements namespace.
	DCNamespace = "http://purl.org/dc/elements/1.1/"

	// OboNamespace is the OBO Foundry term namespace.
	OboNamespace = "http://purl.obolibrary.org/obo/"
)

// Core OWL class IRIs.
const (
	// Thing is the universal OWL class; every class is subsumed by it.
	Thing = Namespace + "Thing"

	// Nothing is the empty OWL class.
	Nothing = Namespace + "Nothing"
)

// Annotation property IRIs used when querying ontology stores.
const (
	// RDFSLabel is the rdfs:label annotation property.
	RDFSLabel = RDFSNamespace + "label"

	// DCTitle is the dc:title annotation property, used for ontology titles.
	DCTitle = DCNamespace + "title"

	// IAODefinition is the IAO textual definition property
	// (obo:IAO_0000115), the usual expert-definition annotation in OBO
	// Foundry ontologies.
	IAODefinition = OboNamespace + "IAO_0000115"
)
