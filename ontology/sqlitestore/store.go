// Package sqlitestore provides a SQLite-backed ontology store. Large
// ontologies are extracted once into a SQLite file and queried from there on
// every rendering run, so repeated corpus builds never re-parse the source
// ontology.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/c360studio/semverbal/expression"
	"github.com/c360studio/semverbal/ontology"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS ontology_info (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS classes (
	iri   TEXT PRIMARY KEY,
	label TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS properties (
	iri       TEXT PRIMARY KEY,
	label     TEXT NOT NULL,
	reflexive INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS axioms (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	subject_iri TEXT NOT NULL,
	axiom_type  TEXT NOT NULL CHECK (axiom_type IN ('subclass', 'equivalent')),
	expression  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_axioms_subject ON axioms (subject_iri, axiom_type, id);
CREATE TABLE IF NOT EXISTS annotations (
	subject_iri  TEXT NOT NULL,
	property_iri TEXT NOT NULL,
	value        TEXT NOT NULL,
	PRIMARY KEY (subject_iri, property_iri)
);
`

// Store persists ontology content in SQLite. It implements ontology.Store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite ontology store at path and ensures its
// schema exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Import loads a parsed ontology dump into the store inside one transaction.
// Keyed rows are replaced and the axiom set is rewritten wholesale, so
// re-importing an updated dump is idempotent.
func (s *Store) Import(ctx context.Context, d *ontology.Dump) error {
	d.ResolveLabels()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if d.Ontology.Label != "" {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO ontology_info (key, value) VALUES ('label', ?)`,
			d.Ontology.Label); err != nil {
			return fmt.Errorf("import ontology label: %w", err)
		}
	}
	for _, c := range d.Classes {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO classes (iri, label) VALUES (?, ?)`,
			c.IRI, c.Label); err != nil {
			return fmt.Errorf("import class %s: %w", c.IRI, err)
		}
	}
	for _, p := range d.Properties {
		reflexive := 0
		if p.Reflexive {
			reflexive = 1
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO properties (iri, label, reflexive) VALUES (?, ?, ?)`,
			p.IRI, p.Label, reflexive); err != nil {
			return fmt.Errorf("import property %s: %w", p.IRI, err)
		}
	}
	// Axioms carry no natural key, so a plain upsert would stack duplicates
	// on every re-import.
	if _, err := tx.ExecContext(ctx, `DELETE FROM axioms`); err != nil {
		return fmt.Errorf("clear axioms: %w", err)
	}
	for i, axiom := range d.Axioms {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO axioms (subject_iri, axiom_type, expression) VALUES (?, ?, ?)`,
			axiom.Subject, axiom.Type, string(axiom.Expression)); err != nil {
			return fmt.Errorf("import axiom %d: %w", i, err)
		}
	}
	for _, ann := range d.Annotations {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO annotations (subject_iri, property_iri, value) VALUES (?, ?, ?)`,
			ann.Subject, ann.Property, ann.Value); err != nil {
			return fmt.Errorf("import annotation on %s: %w", ann.Subject, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// OntologyLabel implements ontology.Store.
func (s *Store) OntologyLabel(ctx context.Context) (string, error) {
	var label string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM ontology_info WHERE key = 'label'`).Scan(&label)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query ontology label: %w", err)
	}
	return label, nil
}

// LabelOf implements ontology.Store.
func (s *Store) LabelOf(ctx context.Context, iri string) (string, error) {
	var label string
	err := s.db.QueryRowContext(ctx,
		`SELECT label FROM classes WHERE iri = ?`, iri).Scan(&label)
	if errors.Is(err, sql.ErrNoRows) {
		err = s.db.QueryRowContext(ctx,
			`SELECT label FROM properties WHERE iri = ?`, iri).Scan(&label)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ontology.ErrNotFound, iri)
	}
	if err != nil {
		return "", fmt.Errorf("query label of %s: %w", iri, err)
	}
	return label, nil
}

// SuperClassExpressionsOf implements ontology.Store.
func (s *Store) SuperClassExpressionsOf(ctx context.Context, classIRI string) ([]expression.ClassExpression, error) {
	return s.axioms(ctx, classIRI, ontology.AxiomSubclass)
}

// EquivalentClassExpressionsOf implements ontology.Store.
func (s *Store) EquivalentClassExpressionsOf(ctx context.Context, classIRI string) ([]expression.ClassExpression, error) {
	return s.axioms(ctx, classIRI, ontology.AxiomEquivalent)
}

func (s *Store) axioms(ctx context.Context, classIRI, axiomType string) ([]expression.ClassExpression, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT expression FROM axioms WHERE subject_iri = ? AND axiom_type = ? ORDER BY id`,
		classIRI, axiomType)
	if err != nil {
		return nil, fmt.Errorf("query axioms of %s: %w", classIRI, err)
	}
	defer func() { _ = rows.Close() }()

	var out []expression.ClassExpression
	for rows.Next() {
		var encoded string
		if err := rows.Scan(&encoded); err != nil {
			return nil, fmt.Errorf("scan axiom: %w", err)
		}
		expr, err := expression.Decode([]byte(encoded))
		if err != nil {
			return nil, fmt.Errorf("decode axiom of %s: %w", classIRI, err)
		}
		out = append(out, expr)
	}
	return out, rows.Err()
}

// IsReflexive implements ontology.Store.
func (s *Store) IsReflexive(ctx context.Context, propertyIRI string) (bool, error) {
	var reflexive int
	err := s.db.QueryRowContext(ctx,
		`SELECT reflexive FROM properties WHERE iri = ?`, propertyIRI).Scan(&reflexive)
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("%w: %s", ontology.ErrNotFound, propertyIRI)
	}
	if err != nil {
		return false, fmt.Errorf("query reflexivity of %s: %w", propertyIRI, err)
	}
	return reflexive != 0, nil
}

// ExpertDefinitionValue implements ontology.Store.
func (s *Store) ExpertDefinitionValue(ctx context.Context, entityIRI, propertyIRI string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM annotations WHERE subject_iri = ? AND property_iri = ?`,
		entityIRI, propertyIRI).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query annotation on %s: %w", entityIRI, err)
	}
	return value, nil
}

// Classes implements ontology.Store.
func (s *Store) Classes(ctx context.Context) ([]ontology.Class, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT iri, label FROM classes WHERE label != '' ORDER BY iri`)
	if err != nil {
		return nil, fmt.Errorf("query classes: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanClasses(rows)
}

// FindClasses implements ontology.Store. Substring matches run in SQL;
// regular expressions filter in Go since SQLite lacks REGEXP by default.
func (s *Store) FindClasses(ctx context.Context, pattern string, regex bool) ([]ontology.Class, error) {
	if !regex {
		rows, err := s.db.QueryContext(ctx,
			`SELECT iri, label FROM classes WHERE instr(lower(label), lower(?)) > 0 ORDER BY iri`,
			pattern)
		if err != nil {
			return nil, fmt.Errorf("search classes: %w", err)
		}
		defer func() { _ = rows.Close() }()
		return scanClasses(rows)
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad label pattern: %w", err)
	}
	all, err := s.Classes(ctx)
	if err != nil {
		return nil, err
	}
	var out []ontology.Class
	for _, c := range all {
		if re.MatchString(c.Label) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Properties implements ontology.Store.
func (s *Store) Properties(ctx context.Context) ([]ontology.Property, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT iri, label, reflexive FROM properties ORDER BY iri`)
	if err != nil {
		return nil, fmt.Errorf("query properties: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []ontology.Property
	for rows.Next() {
		var p ontology.Property
		var reflexive int
		if err := rows.Scan(&p.IRI, &p.Label, &reflexive); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		p.Reflexive = reflexive != 0
		out = append(out, p)
	}
	return out, rows.Err()
}

// ClassByLabel implements ontology.Store.
func (s *Store) ClassByLabel(ctx context.Context, label string) (ontology.Class, error) {
	var c ontology.Class
	err := s.db.QueryRowContext(ctx,
		`SELECT iri, label FROM classes WHERE label = ? LIMIT 1`, label).Scan(&c.IRI, &c.Label)
	if errors.Is(err, sql.ErrNoRows) {
		return ontology.Class{}, fmt.Errorf("%w: class labeled %q", ontology.ErrNotFound, label)
	}
	if err != nil {
		return ontology.Class{}, fmt.Errorf("query class by label: %w", err)
	}
	return c, nil
}

func scanClasses(rows *sql.Rows) ([]ontology.Class, error) {
	var out []ontology.Class
	for rows.Next() {
		var c ontology.Class
		if err := rows.Scan(&c.IRI, &c.Label); err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
