// Package vault implements the vault document model, its canonical JSON
// serialization, the envelope-vs-plaintext container detection, and the
// collaborator-facing load/save/entry operations.
package vault

import (
	"encoding/json"
	"fmt"
	"time"
)

// Entry is a single named credential.
type Entry struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Document is the root persisted object: open metadata plus an ordered
// sequence of entries. Entry order is insertion order and survives a
// save/load cycle.
type Document struct {
	Metadata map[string]interface{} `json:"metadata"`
	Entries  []Entry                `json:"entries"`
}

// NewDocument returns a fresh empty document with a creation timestamp.
func NewDocument() *Document {
	return &Document{
		Metadata: map[string]interface{}{
			"created_at": time.Now().UTC().Format(time.RFC3339),
		},
		Entries: []Entry{},
	}
}

// Encode renders the document as its canonical JSON payload.
func Encode(doc *Document) ([]byte, error) {
	if doc.Entries == nil {
		return nil, fmt.Errorf("%w: missing entries", ErrMalformedDocument)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

// Decode parses a JSON payload into a Document, validating that entries is
// present and is a sequence of entry-shaped records. Metadata is carried
// verbatim; keys this layer does not understand are preserved.
func Decode(data []byte) (*Document, error) {
	var raw struct {
		Metadata map[string]interface{} `json:"metadata"`
		Entries  json.RawMessage        `json:"entries"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if raw.Entries == nil {
		return nil, fmt.Errorf("%w: missing entries", ErrMalformedDocument)
	}

	var entries []Entry
	if err := json.Unmarshal(raw.Entries, &entries); err != nil {
		return nil, fmt.Errorf("%w: entries is not a sequence of entry records", ErrMalformedDocument)
	}
	if entries == nil {
		entries = []Entry{}
	}

	metadata := raw.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	return &Document{Metadata: metadata, Entries: entries}, nil
}
