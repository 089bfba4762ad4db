// Package output aggregates scraped records and writes them as one JSON file.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hyperifyio/lexiscrape/internal/extract"
)

// DefaultPath is where the document is written when no path is configured.
const DefaultPath = "pronthist.json"

// Document is the serialized result of a run. Both keys are always present.
type Document struct {
	AllWords  []extract.WordEntry     `json:"allWords"`
	LostWords []extract.LostWordEntry `json:"lostWords"`
}

// NewDocument wraps the two record lists, replacing nil with empty slices so
// an unrun mode serializes as [] rather than null.
func NewDocument(words []extract.WordEntry, lost []extract.LostWordEntry) Document {
	if words == nil {
		words = []extract.WordEntry{}
	}
	if lost == nil {
		lost = []extract.LostWordEntry{}
	}
	return Document{AllWords: words, LostWords: lost}
}

// Encode renders doc with two-space indentation and a trailing newline.
// HTML characters are kept literal since definitions often contain & and <.
func Encode(doc Document) ([]byte, error) {
	doc = NewDocument(doc.AllWords, doc.LostWords)
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}
	return buf.Bytes(), nil
}

// Write creates or truncates path and writes doc to it. The file is closed
// on every path and a failed close is reported like a failed write.
func Write(path string, doc Document) (err error) {
	b, err := Encode(doc)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	if _, err := f.Write(b); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
