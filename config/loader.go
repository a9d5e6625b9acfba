package config

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Loader assembles a Config from one or more phrase-pack files. Curated
// phrasing is often split per ontology region (one YAML per organ system,
// say); the loader merges them into a single immutable Config.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// LoadGlob loads every file matching the doublestar patterns, merging them in
// lexical path order so overrides are deterministic. Later files win for
// scalar settings; lists and phrasing maps accumulate. At least one file must
// match.
func (l *Loader) LoadGlob(patterns ...string) (*Config, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no configuration files match %v", patterns)
	}
	sort.Strings(paths)

	merged := &Config{}
	for _, path := range paths {
		c, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("loaded phrase pack", slog.String("path", path),
			slog.Int("phrasings", len(c.RolePhrasing)))
		merged.merge(c)
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	if merged.MaxRenderDepth <= 0 {
		merged.MaxRenderDepth = DefaultMaxDepth
	}
	merged.finish()
	return merged, nil
}
