package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/7n4xt/Vault-CLI/internal/clipboard"
	"github.com/7n4xt/Vault-CLI/internal/vault"
)

var (
	getName string
	getCopy bool
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a single entry by name",
	Long: `Retrieve an entry and print it, or copy the password to the
clipboard with --copy so it never appears on screen.

Example:
  vault-cli get --name github
  vault-cli get --name github --copy`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet()
	},
}

func init() {
	getCmd.Flags().StringVar(&getName, "name", "", "Entry name to retrieve")
	getCmd.Flags().BoolVar(&getCopy, "copy", false, "Copy the password to the clipboard instead of printing it")
	getCmd.MarkFlagRequired("name")
}

func runGet() error {
	doc, _, err := openVault()
	if err != nil {
		return fmt.Errorf("failed to load vault: %s", describeError(err))
	}

	entry := vault.GetEntry(doc, getName)
	if entry == nil {
		recordAudit("get", getName, false)
		return fmt.Errorf("entry %q not found", getName)
	}

	recordAudit("get", getName, true)

	if getCopy {
		if !clipboard.IsAvailable() {
			return fmt.Errorf("clipboard not available, remove --copy to print instead")
		}
		if err := clipboard.Copy(entry.Password, cfg.ClipboardTTL); err != nil {
			return err
		}
		fmt.Printf("%s (username: %s)\n", entry.Name, entry.Username)
		fmt.Printf("Password copied to clipboard (clears in %s)\n", cfg.ClipboardTTL.Round(time.Second))
		return nil
	}

	fmt.Printf("Name:     %s\n", entry.Name)
	fmt.Printf("Username: %s\n", entry.Username)
	fmt.Printf("Password: %s\n", entry.Password)
	return nil
}
