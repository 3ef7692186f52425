package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/7n4xt/Vault-CLI/internal/vault"
)

var (
	deleteName string
	deleteYes  bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an entry from the vault",
	Long: `Delete an entry permanently. Without --name, the entries are listed
and one can be picked by number or name.

This action cannot be undone. You will be prompted for confirmation
unless you use the --yes flag.

Example:
  vault-cli delete --name old-account
  vault-cli delete --name temp-entry --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDelete()
	},
}

func init() {
	deleteCmd.Flags().StringVar(&deleteName, "name", "", "Entry name to delete (interactive selection if missing)")
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Skip confirmation prompt")
}

func runDelete() error {
	doc, masterPassword, err := openVault()
	if err != nil {
		return fmt.Errorf("failed to load vault: %s", describeError(err))
	}

	name := deleteName
	if name == "" {
		if name, err = selectEntryName(doc); err != nil {
			return err
		}
		if name == "" {
			return nil
		}
	}

	if vault.GetEntry(doc, name) == nil {
		return fmt.Errorf("entry %q not found", name)
	}

	if !deleteYes && cfg.ConfirmDestructive {
		confirmed, err := PromptConfirm(fmt.Sprintf("Delete %q?", name), false)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted")
			return nil
		}
	}

	vault.DeleteEntry(doc, name)

	if err := vault.SaveVault(vaultPath, doc, masterPassword, cfg.KDFIterations); err != nil {
		recordAudit("delete", name, false)
		return fmt.Errorf("failed to save vault: %s", describeError(err))
	}

	recordAudit("delete", name, true)
	fmt.Printf("Deleted entry %q from %s\n", name, vaultPath)
	return nil
}

// selectEntryName lists entries and lets the user pick one by number or name.
// Returns the empty string when there is nothing to delete.
func selectEntryName(doc *vault.Document) (string, error) {
	names, err := vault.ListEntries(doc)
	if err != nil {
		return "", fmt.Errorf("failed to list entries: %s", describeError(err))
	}
	if len(names) == 0 {
		fmt.Println("No entries to delete")
		return "", nil
	}

	for i, n := range names {
		fmt.Printf("%d. %s\n", i+1, n)
	}

	choice, err := PromptInput("Choose entry number or name to delete: ")
	if err != nil {
		return "", err
	}

	if idx, convErr := strconv.Atoi(choice); convErr == nil {
		if idx < 1 || idx > len(names) {
			return "", fmt.Errorf("invalid selection: %d", idx)
		}
		return names[idx-1], nil
	}

	return choice, nil
}
