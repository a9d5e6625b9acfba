// Package config loads and validates the phrasing configuration that drives
// natural-language rendering of ontology class expressions.
//
// A Config is constructed once per process invocation and is immutable
// afterwards: every rendering call receives it as an explicit parameter, so a
// single Config may be shared across concurrent renders.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semverbal/expression"
	"github.com/c360studio/semverbal/vocabulary/owl"
)

// ErrMalformed indicates the configuration document violates the schema:
// wrong phrase arity, a missing placeholder, or an unknown top-level key.
// Loading fails fast on it; there is no partial configuration.
var ErrMalformed = errors.New("malformed configuration")

// Placeholder is the substitution marker inside phrase templates. Each
// template phrase carries exactly one; it is replaced with the rendered
// filler text.
const Placeholder = "{}"

// DefaultMaxDepth bounds expression-tree recursion when the configuration
// does not set its own limit. Generous for real ontologies, finite for
// malformed ones.
const DefaultMaxDepth = 64

// Tooling groups settings consumed by the surrounding tooling rather than
// the renderer itself.
type Tooling struct {
	// ExpertDefinitionProperties lists annotation property URIs whose
	// asserted values are used verbatim as a class's textual definition.
	ExpertDefinitionProperties []string `yaml:"expert_definition_properties"`
}

// Config is the declarative phrase-template configuration. Field names map
// one-to-one onto the YAML schema.
type Config struct {
	Tooling Tooling `yaml:"tooling"`

	// StandardRolePhrasing lists property URIs rendered with the
	// deterministic "is {label} {}" convention.
	StandardRolePhrasing []string `yaml:"standard_role_restriction_is_phrasing"`

	// RolePhrasing maps a property URI to two or three phrases. Two
	// phrases: the first serves both singular and plural, the second is
	// the definition prompt. Three phrases: singular, plural, prompt.
	RolePhrasing map[string][]string `yaml:"role_restriction_phrasing"`

	// ReflexiveRoles is a sequence of single-entry mappings from a
	// property URI to a one-element list holding its fixed, self-contained
	// phrase. The shape mirrors the curated YAML files.
	ReflexiveRoles []map[string][]string `yaml:"reflexive_roles"`

	// ClassInferenceIgnore lists class labels too generic to surface in
	// justification chains.
	ClassInferenceIgnore []string `yaml:"class_inference_to_ignore"`

	// Skip lists property URIs excluded entirely from definition
	// rendering.
	Skip []string `yaml:"skip"`

	// ExactClassLabels leaves class labels exactly as authored; when
	// false, the first letter is lowercased before substitution.
	ExactClassLabels bool `yaml:"exact_class_labels"`

	// MaxRenderDepth bounds recursion over expression trees. Zero means
	// DefaultMaxDepth.
	MaxRenderDepth int `yaml:"max_render_depth"`

	// Derived lookup tables, built once by finish().
	standardSet  map[string]bool
	skipSet      map[string]bool
	ignoreSet    map[string]bool
	reflexiveMap map[string]string
}

// Default returns an empty configuration with the depth ceiling applied and
// the IAO textual definition property as the expert-definition source.
// Rendering with it falls back to "is {label}" phrasing for every property.
func Default() *Config {
	c := &Config{
		Tooling:        Tooling{ExpertDefinitionProperties: []string{owl.IAODefinition}},
		MaxRenderDepth: DefaultMaxDepth,
	}
	c.finish()
	return c
}

// Load parses a configuration document. Unknown top-level keys, bad phrase
// arity, and missing placeholders all fail with ErrMalformed.
func Load(data []byte) (*Config, error) {
	c := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.MaxRenderDepth <= 0 {
		c.MaxRenderDepth = DefaultMaxDepth
	}
	c.finish()
	return c, nil
}

// LoadFromFile reads and parses a configuration file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks phrase arity and placeholder counts. Load calls it;
// exported so hand-built configurations can be checked in tests.
func (c *Config) Validate() error {
	for uri, phrases := range c.RolePhrasing {
		if len(phrases) != 2 && len(phrases) != 3 {
			return fmt.Errorf("%w: role_restriction_phrasing %q: want 2 or 3 phrases, got %d",
				ErrMalformed, uri, len(phrases))
		}
		for _, phrase := range phrases {
			if strings.Count(phrase, Placeholder) != 1 {
				return fmt.Errorf("%w: role_restriction_phrasing %q: phrase %q needs exactly one %q placeholder",
					ErrMalformed, uri, phrase, Placeholder)
			}
		}
	}
	for _, entry := range c.ReflexiveRoles {
		for uri, phrases := range entry {
			if len(phrases) != 1 {
				return fmt.Errorf("%w: reflexive_roles %q: want exactly 1 phrase, got %d",
					ErrMalformed, uri, len(phrases))
			}
		}
	}
	return nil
}

func (c *Config) finish() {
	c.standardSet = make(map[string]bool, len(c.StandardRolePhrasing))
	for _, uri := range c.StandardRolePhrasing {
		c.standardSet[uri] = true
	}
	c.skipSet = make(map[string]bool, len(c.Skip))
	for _, uri := range c.Skip {
		c.skipSet[uri] = true
	}
	c.ignoreSet = make(map[string]bool, len(c.ClassInferenceIgnore))
	for _, label := range c.ClassInferenceIgnore {
		c.ignoreSet[label] = true
	}
	c.reflexiveMap = make(map[string]string, len(c.ReflexiveRoles))
	for _, entry := range c.ReflexiveRoles {
		for uri, phrases := range entry {
			if len(phrases) > 0 {
				c.reflexiveMap[uri] = phrases[0]
			}
		}
	}
}

// IsStandardRole reports whether the property uses the "is {label}"
// convention.
func (c *Config) IsStandardRole(uri string) bool { return c.standardSet[uri] }

// ShouldSkip reports whether restrictions on the property are excluded from
// definition rendering entirely.
func (c *Config) ShouldSkip(uri string) bool { return c.skipSet[uri] }

// IgnoreInference reports whether a superclass label is too generic to
// surface in justification chains.
func (c *Config) IgnoreInference(label string) bool { return c.ignoreSet[label] }

// ReflexivePhrase returns the fixed phrase for a reflexive property, if one
// is configured.
func (c *Config) ReflexivePhrase(uri string) (string, bool) {
	phrase, ok := c.reflexiveMap[uri]
	return phrase, ok
}

// ExplicitPhrases returns the curated phrases for a property, if any.
func (c *Config) ExplicitPhrases(uri string) ([]string, bool) {
	phrases, ok := c.RolePhrasing[uri]
	return phrases, ok
}

// NormalizeLabel applies the label-case policy to a class label.
func (c *Config) NormalizeLabel(label string) string {
	if c.ExactClassLabels {
		return label
	}
	return expression.LowerFirst(label)
}

// Depth returns the configured recursion ceiling.
func (c *Config) Depth() int {
	if c.MaxRenderDepth <= 0 {
		return DefaultMaxDepth
	}
	return c.MaxRenderDepth
}

// merge folds another parsed document into c. Later documents win for scalar
// settings; list and map settings accumulate.
func (c *Config) merge(other *Config) {
	c.Tooling.ExpertDefinitionProperties = append(c.Tooling.ExpertDefinitionProperties,
		other.Tooling.ExpertDefinitionProperties...)
	c.StandardRolePhrasing = append(c.StandardRolePhrasing, other.StandardRolePhrasing...)
	if c.RolePhrasing == nil && len(other.RolePhrasing) > 0 {
		c.RolePhrasing = make(map[string][]string, len(other.RolePhrasing))
	}
	for uri, phrases := range other.RolePhrasing {
		c.RolePhrasing[uri] = phrases
	}
	c.ReflexiveRoles = append(c.ReflexiveRoles, other.ReflexiveRoles...)
	c.ClassInferenceIgnore = append(c.ClassInferenceIgnore, other.ClassInferenceIgnore...)
	c.Skip = append(c.Skip, other.Skip...)
	if other.ExactClassLabels {
		c.ExactClassLabels = true
	}
	if other.MaxRenderDepth > 0 {
		c.MaxRenderDepth = other.MaxRenderDepth
	}
}
