package vault

import "fmt"

// Add appends a new entry to the document. It is a pure append: duplicate
// rejection is the caller's policy, enforced with a Get before the Add.
func Add(doc *Document, name, username, password string) {
	doc.Entries = append(doc.Entries, Entry{
		Name:     name,
		Username: username,
		Password: password,
	})
}

// Get returns the first entry with exactly the given name, or nil when no
// such entry exists. First match wins, so first-inserted is the tie-break if
// a caller ever bypassed the duplicate check.
func Get(doc *Document, name string) *Entry {
	for i := range doc.Entries {
		if doc.Entries[i].Name == name {
			return &doc.Entries[i]
		}
	}
	return nil
}

// Delete removes every entry with exactly the given name. Deleting a name
// that does not exist is a no-op.
func Delete(doc *Document, name string) {
	kept := doc.Entries[:0]
	for _, e := range doc.Entries {
		if e.Name != name {
			kept = append(kept, e)
		}
	}
	// Clear the tail so removed passwords do not linger in the backing array.
	for i := len(kept); i < len(doc.Entries); i++ {
		doc.Entries[i] = Entry{}
	}
	doc.Entries = kept
}

// List returns entry names in insertion order. A document without an entries
// sequence is malformed.
func List(doc *Document) ([]string, error) {
	if doc.Entries == nil {
		return nil, fmt.Errorf("%w: missing entries", ErrMalformedDocument)
	}
	names := make([]string, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		names = append(names, e.Name)
	}
	return names, nil
}
