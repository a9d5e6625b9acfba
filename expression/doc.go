// Package expression defines the class-expression tree that semverbal
// renders: named classes, conjunctions, disjunctions, property restrictions,
// and complements, mirroring the OWL constructs produced by an ontology
// store.
//
// Expressions are immutable values. The tree is finite and acyclic; callers
// that build trees from untrusted ontology data should rely on the renderer's
// depth ceiling rather than validate the tree here.
//
// The package also carries the small English surface helpers (indefinite
// articles, list joining, number words) shared by the renderers. Anything
// that would need part-of-speech tagging is deliberately absent.
package expression
