// Package corpus turns ontology class definitions into JSONL training
// records. Each labeled class is rendered into a full definition record plus
// optional fine-grained prompt/completion pairs, one JSON object per line,
// with configurable field names so the output matches whatever fine-tuning
// pipeline consumes it.
package corpus
