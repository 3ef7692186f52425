package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/7n4xt/Vault-CLI/internal/vault"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries in the vault",
	Long: `List all entries in insertion order, showing each entry's name,
username, and password length. Passwords themselves are never printed.

Example:
  vault-cli list
  vault-cli list --path /path/to/vault.enc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd)
	},
}

func runList(cmd *cobra.Command) error {
	doc, _, err := openVault()
	if err != nil {
		return fmt.Errorf("failed to load vault: %s", describeError(err))
	}

	names, err := vault.ListEntries(doc)
	if err != nil {
		return fmt.Errorf("failed to list entries: %s", describeError(err))
	}

	recordAudit("list", "", true)

	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "Vault is empty")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tUSERNAME\tPASSWORD")
	for _, name := range names {
		entry := vault.GetEntry(doc, name)
		if entry == nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t(%d chars)\n", entry.Name, entry.Username, len(entry.Password))
	}
	return w.Flush()
}
