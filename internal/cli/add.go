package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/7n4xt/Vault-CLI/internal/crypto"
	"github.com/7n4xt/Vault-CLI/internal/vault"
)

var (
	addName     string
	addUsername string
	addPassword string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new entry to the vault",
	Long: `Add a named username/password entry to the vault.

Missing fields are prompted for. When no password is given, a generated
one is suggested along with its entropy estimate.

Example:
  vault-cli add --name github --username alice
  vault-cli add --name aws --username admin --password s3cr3t`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd()
	},
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "Entry name (prompted if missing)")
	addCmd.Flags().StringVar(&addUsername, "username", "", "Username for the entry (prompted if missing)")
	addCmd.Flags().StringVar(&addPassword, "password", "", "Password for the entry (prompted if missing)")
}

func runAdd() error {
	doc, masterPassword, err := openVault()
	if err != nil {
		return fmt.Errorf("failed to load vault: %s", describeError(err))
	}

	name := addName
	if name == "" {
		if name, err = PromptInput("Entry name: "); err != nil {
			return err
		}
	}
	if name == "" {
		return fmt.Errorf("entry name must not be empty")
	}

	if vault.GetEntry(doc, name) != nil {
		return fmt.Errorf("entry %q already exists", name)
	}

	username := addUsername
	if username == "" {
		if username, err = PromptInput("Username: "); err != nil {
			return err
		}
	}

	password := addPassword
	if password == "" {
		if password, err = chooseEntryPassword(); err != nil {
			return err
		}
	}

	if err := vault.AddEntry(doc, name, username, password); err != nil {
		return err
	}

	if err := vault.SaveVault(vaultPath, doc, masterPassword, cfg.KDFIterations); err != nil {
		recordAudit("add", name, false)
		return fmt.Errorf("failed to save vault: %s", describeError(err))
	}

	recordAudit("add", name, true)
	fmt.Printf("Added entry %q to %s\n", name, vaultPath)
	return nil
}

// chooseEntryPassword suggests a generated password and falls back to a
// hidden prompt when the suggestion is declined.
func chooseEntryPassword() (string, error) {
	suggested, entropy, err := crypto.GeneratePassword(cfg.Generate.Length, generateOptions())
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}

	fmt.Printf("Suggested password (entropy %.1f bits): %s\n", entropy, suggested)
	useSuggested, err := PromptConfirm("Use suggested password?", true)
	if err != nil {
		return "", err
	}
	if useSuggested {
		return suggested, nil
	}

	return PromptPassword("Entry password: ")
}

func generateOptions() crypto.GenerateOptions {
	return crypto.GenerateOptions{
		Lower:   true,
		Upper:   !cfg.Generate.NoUpper,
		Digits:  !cfg.Generate.NoDigits,
		Symbols: !cfg.Generate.NoSymbols,
	}
}
