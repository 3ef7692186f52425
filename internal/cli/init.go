package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/7n4xt/Vault-CLI/internal/crypto"
	"github.com/7n4xt/Vault-CLI/internal/storage"
	"github.com/7n4xt/Vault-CLI/internal/vault"
)

var (
	initForce      bool
	initPassword   string
	initIterations int
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new encrypted vault",
	Long: `Initialize a new empty vault encrypted with a master password.

The vault is sealed with AES-256-GCM under a key derived from the master
password with PBKDF2-HMAC-SHA-256 (200,000 iterations by default).

Example:
  vault-cli init
  vault-cli init --path /path/to/vault.enc
  vault-cli init --iterations 400000 --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit()
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing vault")
	initCmd.Flags().StringVar(&initPassword, "master-password", "", "Master password (for non-interactive use)")
	initCmd.Flags().IntVar(&initIterations, "iterations", 0, "PBKDF2 iteration count (default from config)")
}

func runInit() error {
	if storage.Exists(vaultPath) && !initForce {
		return fmt.Errorf("vault already exists at %s (use --force to overwrite)", vaultPath)
	}

	iterations := initIterations
	if iterations == 0 {
		iterations = cfg.KDFIterations
	}
	if iterations < crypto.MinIterations {
		return fmt.Errorf("iterations must be at least %d", crypto.MinIterations)
	}

	masterPassword := initPassword
	if masterPassword == "" {
		var err error
		masterPassword, err = PromptPasswordConfirm("Master password: ")
		if err != nil {
			return err
		}
	}
	if masterPassword == "" {
		return fmt.Errorf("master password must not be empty")
	}

	if _, err := vault.InitVault(vaultPath, masterPassword, iterations); err != nil {
		recordAudit("init", "", false)
		return fmt.Errorf("failed to initialize vault: %s", describeError(err))
	}

	recordAudit("init", "", true)
	fmt.Printf("Initialized encrypted vault at %s\n", vaultPath)
	return nil
}
