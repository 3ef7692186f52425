package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/7n4xt/Vault-CLI/internal/audit"
)

var auditLogCmd = &cobra.Command{
	Use:   "audit-log",
	Short: "Show recorded vault operations",
	Long: `Show the operation log recorded alongside the vault.

Auditing is off by default; enable it in the config file:

  audit:
    enabled: true

The log contains operation names and timestamps only, never passwords.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAuditLog(cmd)
	},
}

func runAuditLog(cmd *cobra.Command) error {
	if !cfg.Audit.Enabled {
		return fmt.Errorf("auditing is disabled (set audit.enabled in %s)", cfgFile)
	}

	log, err := audit.Open(cfg.Audit.Path)
	if err != nil {
		return err
	}
	defer log.Close()

	events, err := log.Events()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(events) == 0 {
		fmt.Fprintln(out, "Audit log is empty")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tOPERATION\tENTRY\tOK")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n",
			e.Timestamp.Format(time.RFC3339), e.Operation, e.EntryName, e.Success)
	}
	return w.Flush()
}
