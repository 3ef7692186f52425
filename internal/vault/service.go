package vault

import (
	"errors"
	"fmt"
	"strings"

	"github.com/7n4xt/Vault-CLI/internal/storage"
)

// InitVault creates a fresh empty document and persists it encrypted at path.
func InitVault(path, masterPassword string, iterations int) (*Document, error) {
	doc := NewDocument()
	if err := SaveVault(path, doc, masterPassword, iterations); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadVault reads and decrypts the vault at path. The boolean reports whether
// the file was a legacy plaintext vault that should be migrated.
func LoadVault(path, masterPassword string) (*Document, bool, error) {
	raw, err := storage.Read(path)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, false, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, false, err
	}
	return LoadFromContainer(raw, masterPassword)
}

// SaveVault re-encrypts the whole document and atomically replaces the file
// at path. There is no partial update; every save rewrites the container.
func SaveVault(path string, doc *Document, masterPassword string, iterations int) error {
	container, err := EncodeToContainer(doc, masterPassword, iterations)
	if err != nil {
		return err
	}
	return storage.Write(path, container)
}

// AddEntry validates the name and appends a new entry. Duplicate names are
// rejected here, the policy layer over the pure append in Add.
func AddEntry(doc *Document, name, username, password string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: entry name must not be empty", ErrInvalidInput)
	}
	if Get(doc, name) != nil {
		return fmt.Errorf("%w: entry %q already exists", ErrInvalidInput, name)
	}
	Add(doc, name, username, password)
	return nil
}

// GetEntry returns the entry with the given name, or nil when absent.
func GetEntry(doc *Document, name string) *Entry {
	return Get(doc, name)
}

// DeleteEntry removes the named entry. Idempotent.
func DeleteEntry(doc *Document, name string) {
	Delete(doc, name)
}

// ListEntries returns entry names in insertion order.
func ListEntries(doc *Document) ([]string, error) {
	return List(doc)
}
