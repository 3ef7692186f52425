package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/7n4xt/Vault-CLI/internal/audit"
	"github.com/7n4xt/Vault-CLI/internal/vault"
)

// openVault prompts for the master password and loads the vault at vaultPath.
// It carries the two interactive recovery flows: a missing vault can be
// initialized on the spot, and a legacy plaintext vault can be encrypted
// under a freshly chosen master password. The returned password is the one a
// subsequent save must use.
func openVault() (*vault.Document, string, error) {
	masterPassword, err := PromptPassword("Master password: ")
	if err != nil {
		return nil, "", err
	}

	doc, wasPlaintext, err := vault.LoadVault(vaultPath, masterPassword)
	if err != nil {
		if errors.Is(err, vault.ErrNotFound) {
			return initMissingVault(masterPassword)
		}
		return nil, "", err
	}

	if wasPlaintext {
		doc, masterPassword, err = migratePlaintextVault(doc)
		if err != nil {
			return nil, "", err
		}
	}

	return doc, masterPassword, nil
}

func initMissingVault(masterPassword string) (*vault.Document, string, error) {
	ok, err := PromptConfirm(fmt.Sprintf("Vault %q not found. Initialize new vault?", vaultPath), true)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", fmt.Errorf("aborted")
	}

	if masterPassword == "" {
		masterPassword, err = PromptPasswordConfirm("Master password: ")
		if err != nil {
			return nil, "", err
		}
	}

	doc, err := vault.InitVault(vaultPath, masterPassword, cfg.KDFIterations)
	if err != nil {
		return nil, "", err
	}

	fmt.Printf("Initialized encrypted vault at %s\n", vaultPath)
	recordAudit("init", "", true)
	return doc, masterPassword, nil
}

// migratePlaintextVault offers to set a master password on a vault that was
// stored as legacy plaintext, re-saving it encrypted.
func migratePlaintextVault(doc *vault.Document) (*vault.Document, string, error) {
	fmt.Println("Detected plaintext vault file. Set a master password to encrypt it.")

	newPassword, err := PromptPasswordConfirm("Set master password to encrypt vault: ")
	if err != nil {
		return nil, "", err
	}

	if err := vault.SaveVault(vaultPath, doc, newPassword, cfg.KDFIterations); err != nil {
		return nil, "", fmt.Errorf("failed to encrypt vault: %w", err)
	}

	fmt.Println("Vault encrypted and saved.")
	recordAudit("migrate", "", true)
	return doc, newPassword, nil
}

// recordAudit appends an operation to the audit log when auditing is enabled.
// Audit failures are reported but never block the operation itself.
func recordAudit(operation, entryName string, success bool) {
	if cfg == nil || !cfg.Audit.Enabled {
		return
	}

	log, err := audit.Open(cfg.Audit.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: audit log unavailable: %v\n", err)
		return
	}
	defer log.Close()

	event := audit.Event{Operation: operation, EntryName: entryName, Success: success}
	if err := log.Record(event); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record audit event: %v\n", err)
	}
}
