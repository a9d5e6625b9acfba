// Package justify renders entailment-justification chains as indented
// natural-language explanations.
//
// A proof arrives as an ordered sequence of subsumption steps produced by an
// external reasoner (semverbal performs no reasoning itself). Steps whose
// superclass is on the configured ignore list are elided transparently: the
// printed chain runs from the last informative class straight to the next
// informative superclass, so uninformative upper-ontology classes never
// clutter the narrative and never break its connectivity.
package justify

import (
	"strings"

	"github.com/c360studio/semverbal/expression"
	"github.com/c360studio/semverbal/render"
	"github.com/c360studio/semverbal/template"
)

// Step is one subsumption link in a proof chain C0 ⊑ C1 ⊑ ... ⊑ Cn.
type Step struct {
	// Subject is the subsumed class at this link.
	Subject expression.ClassExpression

	// Superclass is the subsumer the reasoner derived for the subject.
	Superclass expression.ClassExpression

	// Depth is the nesting level reported by the reasoner; it is
	// monotonically non-decreasing across a chain.
	Depth int

	// Equivalence marks a biconditional link rather than plain
	// subsumption.
	Equivalence bool
}

// NoInformativeSteps is the diagnostic message attached when every step of a
// chain was elided; the empty explanation is itself a caller-visible signal.
const NoInformativeSteps = "no informative justification"

// indentUnit is the per-level indentation of the printed chain.
const indentUnit = "  "

// Renderer renders proof chains using an expression renderer and its
// configuration.
type Renderer struct {
	renderer *render.Renderer
}

// New creates a proof renderer on top of an expression renderer.
func New(r *render.Renderer) *Renderer {
	return &Renderer{renderer: r}
}

// RenderProof renders an ordered proof into indented explanation text, one
// sentence per informative step. Elided steps consume no indentation level
// and leave chain connectivity intact: their subject context carries forward
// to the next printed step.
func (j *Renderer) RenderProof(steps []Step) (render.Result, error) {
	cfg := j.renderer.Config()

	var (
		lines          []string
		diags          []template.Diagnostic
		pendingSubject expression.ClassExpression
		elided         int
		lastIndent     int
	)

	for _, step := range steps {
		if atomic, ok := step.Superclass.(expression.Atomic); ok && cfg.IgnoreInference(atomic.Label) {
			// Remember where the chain paused so the next printed
			// step continues from the last informative class.
			if pendingSubject == nil {
				pendingSubject = step.Subject
			}
			elided++
			continue
		}

		subject := step.Subject
		if pendingSubject != nil {
			subject = pendingSubject
			pendingSubject = nil
		}

		sentence, stepDiags, err := j.renderStep(subject, step.Superclass, step.Equivalence)
		if err != nil {
			return render.Result{}, err
		}
		diags = append(diags, stepDiags...)

		indent := step.Depth - elided
		if indent < lastIndent {
			indent = lastIndent
		}
		lastIndent = indent
		lines = append(lines, strings.Repeat(indentUnit, indent)+sentence)
	}

	if len(lines) == 0 {
		return render.Result{
			Diagnostics: []template.Diagnostic{{Message: NoInformativeSteps}},
		}, nil
	}
	return render.Result{Text: strings.Join(lines, "\n"), Diagnostics: diags}, nil
}

// renderStep builds one "Every {subject} is {superclass}" sentence.
func (j *Renderer) renderStep(subject, superclass expression.ClassExpression, equivalence bool) (string, []template.Diagnostic, error) {
	cfg := j.renderer.Config()

	var subjectText string
	if atomic, ok := subject.(expression.Atomic); ok {
		subjectText = cfg.NormalizeLabel(atomic.Label)
	} else {
		res, err := j.renderer.Render(subject)
		if err != nil {
			return "", nil, err
		}
		subjectText = res.Text
	}

	res, err := j.renderer.Render(superclass)
	if err != nil {
		return "", nil, err
	}
	phrase := res.Text
	if _, ok := superclass.(expression.Atomic); ok {
		phrase = expression.IndefiniteArticle(phrase)
	}

	var sentence string
	if strings.HasPrefix(phrase, "is ") {
		sentence = "Every " + subjectText + " " + phrase
	} else {
		sentence = "Every " + subjectText + " is " + phrase
	}
	if equivalence {
		sentence += " and vice versa"
	}
	return sentence + ".", res.Diagnostics, nil
}
