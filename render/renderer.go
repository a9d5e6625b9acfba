// Package render turns class-expression trees into deterministic English.
//
// Rendering is a pure function of (expression, configuration): no shared
// mutable state, no side effects. A Renderer holds only the immutable
// configuration and its template registry, so one Renderer may serve
// concurrent calls over independent expression trees.
package render

import (
	"strings"

	"github.com/c360studio/semverbal/config"
	"github.com/c360studio/semverbal/expression"
	"github.com/c360studio/semverbal/template"
	"github.com/c360studio/semverbal/vocabulary/owl"
)

// Result carries rendered text together with any advisory diagnostics
// gathered along the way (unconfigured-property fallbacks, truncations).
// Diagnostics never indicate failure.
type Result struct {
	Text        string
	Diagnostics []template.Diagnostic
}

// Renderer renders class expressions against one immutable configuration.
type Renderer struct {
	cfg       *config.Config
	templates *template.Registry
}

// New creates a renderer over the configuration.
func New(cfg *config.Config) *Renderer {
	return &Renderer{cfg: cfg, templates: template.NewRegistry(cfg)}
}

// Templates exposes the registry so callers composing prompts (corpus
// generation) resolve phrases consistently with the renderer.
func (r *Renderer) Templates() *template.Registry { return r.templates }

// Config returns the renderer's configuration.
func (r *Renderer) Config() *config.Config { return r.cfg }

// Render renders an expression to text. Calling it twice with the same
// expression yields identical text. Restriction phrases come out in
// predicative form ("is a conduit for a vein of vestibular aqueduct"); a
// bare complement is wrapped as "that is not ...".
func (r *Renderer) Render(expr expression.ClassExpression) (Result, error) {
	var diags []template.Diagnostic
	text, err := r.renderNode(expr, 0, &diags)
	if err != nil {
		return Result{}, err
	}
	if _, ok := expr.(expression.Complement); ok {
		text = "that " + text
	}
	return Result{Text: text, Diagnostics: diags}, nil
}

// renderNode dispatches on the expression variant. depth counts tree levels
// already descended; exceeding the configured ceiling fails typed rather
// than exhausting the stack on malformed ontology input.
func (r *Renderer) renderNode(expr expression.ClassExpression, depth int, diags *[]template.Diagnostic) (string, error) {
	if depth > r.cfg.Depth() {
		return "", &Error{Kind: DepthExceeded, Depth: r.cfg.Depth()}
	}
	switch e := expr.(type) {
	case expression.Atomic:
		return r.renderAtomic(e), nil
	case expression.Conjunction:
		return r.renderConjunction(e, depth, diags)
	case expression.Disjunction:
		return r.renderDisjunction(e, depth, diags)
	case expression.Restriction:
		return r.renderRestriction(e, depth, diags)
	case expression.Complement:
		inner, err := r.renderNode(e.Operand, depth+1, diags)
		if err != nil {
			return "", err
		}
		return "is not " + expression.IndefiniteArticle(inner), nil
	default:
		return "", &Error{Kind: UnresolvedProperty}
	}
}

func (r *Renderer) renderAtomic(a expression.Atomic) string {
	switch a.IRI {
	case owl.Thing:
		return "Everything"
	case owl.Nothing:
		return "Nothing"
	}
	return r.cfg.NormalizeLabel(a.Label)
}

// renderConjunction renders "a X that is Y and is Z": named operands become
// the head block with indefinite articles, restrictions and nested logical
// operands become predicative continuations joined by "that". Operand order
// is preserved exactly as given.
func (r *Renderer) renderConjunction(c expression.Conjunction, depth int, diags *[]template.Diagnostic) (string, error) {
	var named, continuations []string
	for _, op := range c.Operands {
		if rest, ok := op.(expression.Restriction); ok && r.cfg.ShouldSkip(rest.Property.IRI) {
			continue
		}
		text, err := r.renderNode(op, depth+1, diags)
		if err != nil {
			return "", err
		}
		if _, ok := op.(expression.Atomic); ok {
			named = append(named, expression.IndefiniteArticle(text))
		} else {
			// Restrictions and complements come back predicative ("is a
			// conduit for ...", "is not ..."); nested logical operands come
			// back nominal and need the copula.
			if !strings.HasPrefix(text, "is ") {
				text = "is " + text
			}
			continuations = append(continuations, text)
		}
	}
	head := expression.JoinList(named, "and")
	tail := expression.JoinList(continuations, "and")
	switch {
	case head != "" && tail != "":
		return head + " that " + tail, nil
	case head != "":
		return head, nil
	default:
		return tail, nil
	}
}

// renderDisjunction renders "a A, a B, or a C". The "and vice versa" suffix
// for equivalence-asserted disjunctions is the composer's concern; inline
// rendering stays neutral.
func (r *Renderer) renderDisjunction(d expression.Disjunction, depth int, diags *[]template.Diagnostic) (string, error) {
	items := make([]string, 0, len(d.Operands))
	for _, op := range d.Operands {
		text, err := r.renderNode(op, depth+1, diags)
		if err != nil {
			return "", err
		}
		if _, ok := op.(expression.Atomic); ok {
			text = expression.IndefiniteArticle(text)
		}
		items = append(items, text)
	}
	return expression.JoinList(items, "or"), nil
}

func (r *Renderer) renderRestriction(rest expression.Restriction, depth int, diags *[]template.Diagnostic) (string, error) {
	// A configured reflexive phrase is self-contained: the filler is
	// discarded, however complex it is.
	if phrase, ok := r.templates.Reflexive(rest.Property); ok {
		return phrase, nil
	}
	if strings.TrimSpace(rest.Property.Label) == "" {
		return "", &Error{Kind: UnresolvedProperty, PropertyIRI: rest.Property.IRI}
	}

	filler, err := r.renderNode(rest.Filler, depth+1, diags)
	if err != nil {
		return "", err
	}
	fillerText := r.quantifiedFiller(rest, filler)

	entry, diag := r.templates.Resolve(rest.Property)
	if diag != nil {
		*diags = append(*diags, *diag)
	}
	return template.Apply(entry.Phrase(multiplicity(rest)), fillerText), nil
}

// quantifiedFiller injects the cardinality verbally into the filler text
// ("exactly two skull bones", "at least one vein of the aqueduct"); plain
// quantifiers get an indefinite article.
func (r *Renderer) quantifiedFiller(rest expression.Restriction, filler string) string {
	if !rest.Quantifier.HasCardinality() {
		return expression.IndefiniteArticle(filler)
	}
	number := expression.NumberWord(rest.Cardinality)
	switch rest.Quantifier {
	case expression.MinCardinality:
		return "at least " + number + " " + filler
	case expression.MaxCardinality:
		return "at most " + number + " " + filler
	default:
		return number + " " + filler
	}
}

// multiplicity picks the template phrase: singular when the cardinality is
// exactly 1 or the quantifier is existential over a non-composite filler,
// plural otherwise.
func multiplicity(rest expression.Restriction) template.Multiplicity {
	if rest.Quantifier.HasCardinality() {
		if rest.Cardinality == 1 {
			return template.Singular
		}
		return template.Plural
	}
	if rest.Quantifier == expression.Existential && !composite(rest.Filler) {
		return template.Singular
	}
	return template.Plural
}

func composite(expr expression.ClassExpression) bool {
	switch expr.(type) {
	case expression.Conjunction, expression.Disjunction:
		return true
	}
	return false
}
