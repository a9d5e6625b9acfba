package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dumpJSON = `{
	"ontology": {"iri": "obo:fma.owl", "label": "FMA"},
	"classes": [{"iri": "obo:FMA_12345", "label": "foramen of skull"}],
	"properties": [{"iri": "obo:RO_0002216", "label": "conduit for"}],
	"axioms": [{
		"subject": "obo:FMA_12345",
		"type": "subclass",
		"expression": {"kind": "atomic", "iri": "obo:FMA_99999", "label": "cranial opening"}
	}]
}`

func writeDump(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dump.json")
	require.NoError(t, os.WriteFile(path, []byte(dumpJSON), 0o644))
	return path
}

func TestOpenStoreFromDump(t *testing.T) {
	opts := &globalOptions{dumpPath: writeDump(t)}
	store, closeStore, err := opts.openStore()
	require.NoError(t, err)
	defer func() { _ = closeStore() }()

	ctx := t.Context()
	label, err := store.OntologyLabel(ctx)
	require.NoError(t, err)
	assert.Equal(t, "FMA", label)

	class, err := store.ClassByLabel(ctx, "foramen of skull")
	require.NoError(t, err)
	assert.Equal(t, "obo:FMA_12345", class.IRI)

	supers, err := store.SuperClassExpressionsOf(ctx, "obo:FMA_12345")
	require.NoError(t, err)
	assert.Len(t, supers, 1)
}

func TestOpenStoreFlagValidation(t *testing.T) {
	_, _, err := (&globalOptions{}).openStore()
	assert.Error(t, err)

	_, _, err = (&globalOptions{storePath: "x.db", dumpPath: "x.json"}).openStore()
	assert.Error(t, err)
}
