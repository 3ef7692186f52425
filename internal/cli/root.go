// Package cli implements the vault-cli command-line interface. Commands are
// thin wrappers over the vault package: they prompt, load, mutate, save.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/7n4xt/Vault-CLI/internal/config"
	"github.com/7n4xt/Vault-CLI/internal/vault"
)

var (
	cfgFile   string
	vaultPath string
	cfg       *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vault-cli",
	Short: "A simple encrypted credential vault",
	Long: `vault-cli keeps named username/password entries in a single file,
encrypted at rest with a master password.

The vault file is a JSON envelope sealed with AES-256-GCM; the key is
derived from the master password with PBKDF2-HMAC-SHA-256. Every save
rewrites the whole file atomically, so a crash never corrupts it.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if vaultPath == "" {
			vaultPath = cfg.VaultPath
		}

		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/vault-cli/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&vaultPath, "path", "", "vault file path")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(auditLogCmd)
}

func initConfig() {
	if cfgFile != "" {
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get home directory: %v\n", err)
		os.Exit(1)
	}

	cfgFile = filepath.Join(home, ".config", "vault-cli", "config.yaml")
}

// describeError turns the vault error taxonomy into user-facing messages.
func describeError(err error) string {
	switch {
	case errors.Is(err, vault.ErrNotFound):
		return fmt.Sprintf("%v (run 'vault-cli init' to create a vault)", err)
	case errors.Is(err, vault.ErrAuthenticationFailed):
		return "wrong password or corrupted vault file"
	case errors.Is(err, vault.ErrMalformedContainer), errors.Is(err, vault.ErrMalformedDocument):
		return fmt.Sprintf("vault file is not usable: %v", err)
	default:
		return err.Error()
	}
}
