package render

import (
	"strings"

	"github.com/c360studio/semverbal/expression"
	"github.com/c360studio/semverbal/template"
)

// ClassFacts gathers everything the composer needs about one class: its
// asserted axioms and any expert-authored textual definition. The caller
// assembles it from the ontology store.
type ClassFacts struct {
	Class             expression.Atomic
	TextualDefinition string
	OntologyLabel     string

	// Equivalents are expressions asserted logically equivalent to the
	// class; their sentences carry the "and vice versa" suffix.
	Equivalents []expression.ClassExpression

	// Superclasses are the asserted subsumers.
	Superclasses []expression.ClassExpression
}

// Definition is a composed class definition: the full text, the fine-grained
// prompt/sentence pairs used for corpus records, and advisory diagnostics.
type Definition struct {
	Text        string
	Prompts     map[string]string
	Diagnostics []template.Diagnostic
}

// ComposeDefinition assembles the textual plus logical definition of a
// class. The first sentence introduces the class ("The X is defined in FMA
// as a Y that is Z"); each top-level conjunct and restriction is then
// restated as its own "It ..." sentence. Equal inputs always compose equal
// output. Per-restriction failures degrade to diagnostics instead of failing
// the class.
func (r *Renderer) ComposeDefinition(facts ClassFacts) Definition {
	c := &composer{renderer: r, prompts: make(map[string]string)}
	c.subjectPhrase = "the " + facts.Class.Label

	c.processAll(facts.Equivalents, true)
	c.processAll(facts.Superclasses, false)

	body := strings.Join(c.phrases, ". ")
	text := body
	if td := strings.TrimSuffix(strings.TrimSpace(facts.TextualDefinition), "."); td != "" {
		if body == "" {
			text = td
		} else {
			text = td + ". " + body
		}
	}

	// Substitute the definitional lead-in now that the ontology label is
	// known: the first phrase was built with the placeholder lead.
	text = strings.ReplaceAll(text, leadMarker, definitionLead(facts.Class.Label, facts.OntologyLabel))
	if text != "" {
		text += "."
	}

	prompts := make(map[string]string, len(c.prompts))
	for prompt, sentence := range c.prompts {
		sentence = strings.ReplaceAll(sentence, leadMarker, definitionLead(facts.Class.Label, facts.OntologyLabel))
		prompts[prompt] = sentence + "."
	}

	return Definition{Text: text, Prompts: prompts, Diagnostics: c.diags}
}

// leadMarker stands in for the definitional lead-in while phrases are being
// accumulated; it keeps the composer independent of sentence position.
const leadMarker = "\x00lead\x00"

func definitionLead(classLabel, ontologyLabel string) string {
	if ontologyLabel != "" {
		return "The " + classLabel + " is defined in " + ontologyLabel + " as"
	}
	return "The " + classLabel + " is defined as"
}

type composer struct {
	renderer      *Renderer
	subjectPhrase string
	phrases       []string
	prompts       map[string]string
	diags         []template.Diagnostic
}

// lead returns the sentence opener: the definitional lead-in for the first
// phrase, the pronoun for every later one.
func (c *composer) lead() string {
	if len(c.phrases) == 0 {
		return leadMarker
	}
	return "It"
}

// emit appends a sentence. predicative phrases ("is a conduit for ...") get
// the opener attached directly; nominal phrases ("a foramen of skull") get a
// copula after the pronoun.
func (c *composer) emit(phrase string, predicative bool) string {
	opener := c.lead()
	var sentence string
	switch {
	case predicative:
		sentence = opener + " " + phrase
	case opener == "It":
		sentence = "It is " + phrase
	default:
		sentence = opener + " " + phrase
	}
	c.phrases = append(c.phrases, sentence)
	return sentence
}

// processAll walks the top-level expressions of one axiom family. Named
// superclasses come first, then restrictions grouped by property, then
// logical constructs, mirroring how curated definitions read.
func (c *composer) processAll(exprs []expression.ClassExpression, equivalence bool) {
	var atomics []expression.Atomic
	var logical []expression.ClassExpression
	groups := make(map[string][]expression.Restriction)
	var groupOrder []string

	for _, expr := range exprs {
		switch e := expr.(type) {
		case expression.Atomic:
			atomics = append(atomics, e)
		case expression.Restriction:
			if c.renderer.cfg.ShouldSkip(e.Property.IRI) {
				continue
			}
			if _, seen := groups[e.Property.IRI]; !seen {
				groupOrder = append(groupOrder, e.Property.IRI)
			}
			groups[e.Property.IRI] = append(groups[e.Property.IRI], e)
		default:
			logical = append(logical, expr)
		}
	}

	for _, a := range atomics {
		c.emit(expression.IndefiniteArticle(c.renderer.renderAtomic(a)), false)
	}
	for _, iri := range groupOrder {
		c.emitRestrictionGroup(groups[iri])
	}
	for _, expr := range logical {
		c.emitLogical(expr, equivalence)
	}
}

// emitRestrictionGroup renders all restrictions on one property as a single
// sentence ("It has a left lobe and a right lobe as its parts") and records
// the property's definition prompt for corpus generation.
func (c *composer) emitRestrictionGroup(group []expression.Restriction) {
	prop := group[0].Property

	if phrase, ok := c.renderer.templates.Reflexive(prop); ok {
		c.emit(phrase, true)
		return
	}
	if strings.TrimSpace(prop.Label) == "" {
		c.diags = append(c.diags, template.Diagnostic{
			PropertyIRI: prop.IRI,
			Message:     "skipped restriction: property has no resolvable label",
		})
		return
	}

	values := make([]string, 0, len(group))
	for _, rest := range group {
		filler, err := c.renderer.renderNode(rest.Filler, 1, &c.diags)
		if err != nil {
			if IsDepthExceeded(err) {
				values = append(values, "...")
				c.diags = append(c.diags, template.Diagnostic{
					PropertyIRI: prop.IRI,
					Message:     "filler truncated: expression depth exceeded",
				})
			} else {
				c.diags = append(c.diags, template.Diagnostic{
					PropertyIRI: prop.IRI,
					Message:     "skipped restriction: " + err.Error(),
				})
			}
			continue
		}
		values = append(values, c.renderer.quantifiedFiller(rest, filler))
	}
	if len(values) == 0 {
		return
	}

	entry, diag := c.renderer.templates.Resolve(prop)
	if diag != nil {
		c.diags = append(c.diags, *diag)
	}
	mult := multiplicity(group[0])
	if len(values) > 1 {
		mult = template.Plural
	}
	phrase := template.Apply(entry.Phrase(mult), expression.JoinList(values, "and"))
	sentence := c.emit(phrase, true)
	c.prompts[template.Apply(entry.DefinitionPrompt, c.subjectPhrase)] = sentence
}

// emitLogical renders a top-level conjunction or disjunction: the compact
// inline phrase first, then each conjunct restated as its own sentence.
func (c *composer) emitLogical(expr expression.ClassExpression, equivalence bool) {
	text, err := c.renderer.renderNode(expr, 0, &c.diags)
	if err != nil {
		if IsDepthExceeded(err) {
			c.emit("...", false)
			c.diags = append(c.diags, template.Diagnostic{
				Message: "definition truncated: expression depth exceeded",
			})
		} else {
			c.diags = append(c.diags, template.Diagnostic{
				Message: "skipped expression: " + err.Error(),
			})
		}
		return
	}

	// A complement or restriction-only conjunction renders predicative
	// ("is not ...", "is a conduit for ..."); emitting it as nominal would
	// double the copula.
	predicative := strings.HasPrefix(text, "is ")

	switch e := expr.(type) {
	case expression.Disjunction:
		if equivalence {
			text += " and vice versa"
		}
		c.emit(text, predicative)
	case expression.Conjunction:
		if equivalence {
			text += " and vice versa"
		}
		c.emit(text, predicative)
		c.restateConjuncts(e)
	default:
		c.emit(text, predicative)
	}
}

// restateConjuncts re-emits each conjunct as a standalone sentence, giving
// the enumerated form alongside the compact inline definition.
func (c *composer) restateConjuncts(conj expression.Conjunction) {
	var atomics []expression.Atomic
	groups := make(map[string][]expression.Restriction)
	var groupOrder []string
	for _, op := range conj.Operands {
		switch e := op.(type) {
		case expression.Atomic:
			atomics = append(atomics, e)
		case expression.Restriction:
			if c.renderer.cfg.ShouldSkip(e.Property.IRI) {
				continue
			}
			if _, seen := groups[e.Property.IRI]; !seen {
				groupOrder = append(groupOrder, e.Property.IRI)
			}
			groups[e.Property.IRI] = append(groups[e.Property.IRI], e)
		}
	}
	for _, a := range atomics {
		c.emit(expression.IndefiniteArticle(c.renderer.renderAtomic(a)), false)
	}
	for _, iri := range groupOrder {
		c.emitRestrictionGroup(groups[iri])
	}
}
