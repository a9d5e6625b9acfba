package corpus

import (
	"bufio"
	"encoding/json"
	"io"
	"sort"
)

// Writer emits JSONL corpus records.
type Writer struct {
	buf  *bufio.Writer
	opts Options
}

// NewWriter wraps w for line-oriented record output.
func NewWriter(w io.Writer, opts Options) *Writer {
	return &Writer{buf: bufio.NewWriter(w), opts: opts}
}

// WriteDefinition writes the records of one class and flushes. It returns
// the number of records written.
func (w *Writer) WriteDefinition(def ClassDefinition) (int, error) {
	records := Records(def, w.opts)
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			return 0, err
		}
		if _, err := w.buf.Write(append(line, '\n')); err != nil {
			return 0, err
		}
	}
	return len(records), w.buf.Flush()
}

// Records builds the prompt/completion pairs of one rendered class: the full
// definition record first, then (when fine-grained output is on) one record
// per definitional restriction sentence. Fine-grained records are ordered by
// prompt for deterministic files.
func Records(def ClassDefinition, opts Options) []map[string]string {
	if def.Definition.Text == "" {
		return nil
	}
	records := []map[string]string{{
		opts.PromptField:     "What is the " + def.Class.Label + "?",
		opts.CompletionField: def.Definition.Text,
	}}
	if !opts.FineGrained {
		return records
	}

	prompts := make([]string, 0, len(def.Definition.Prompts))
	for prompt := range def.Definition.Prompts {
		prompts = append(prompts, prompt)
	}
	sort.Strings(prompts)
	for _, prompt := range prompts {
		records = append(records, map[string]string{
			opts.PromptField:     prompt,
			opts.CompletionField: def.Definition.Prompts[prompt],
		})
	}
	return records
}
