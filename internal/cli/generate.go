package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/7n4xt/Vault-CLI/internal/clipboard"
	"github.com/7n4xt/Vault-CLI/internal/crypto"
)

var (
	genLength    int
	genNoSymbols bool
	genNoUpper   bool
	genNoDigits  bool
	genCopy      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a secure password",
	Long: `Generate a cryptographically random password and print it together
with its estimated entropy in bits.

Example:
  vault-cli generate
  vault-cli generate --length 24 --no-symbols
  vault-cli generate --copy`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	generateCmd.Flags().IntVar(&genLength, "length", 16, "Password length")
	generateCmd.Flags().BoolVar(&genNoSymbols, "no-symbols", false, "Exclude symbols")
	generateCmd.Flags().BoolVar(&genNoUpper, "no-upper", false, "Exclude uppercase letters")
	generateCmd.Flags().BoolVar(&genNoDigits, "no-digits", false, "Exclude digits")
	generateCmd.Flags().BoolVar(&genCopy, "copy", false, "Copy the password to the clipboard instead of printing it")
}

func runGenerate(cmd *cobra.Command) error {
	opts := crypto.GenerateOptions{
		Lower:   true,
		Upper:   !genNoUpper,
		Digits:  !genNoDigits,
		Symbols: !genNoSymbols,
	}

	password, entropy, err := crypto.GeneratePassword(genLength, opts)
	if err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}

	out := cmd.OutOrStdout()

	if genCopy {
		if !clipboard.IsAvailable() {
			return fmt.Errorf("clipboard not available, remove --copy to print instead")
		}
		if err := clipboard.Copy(password, cfg.ClipboardTTL); err != nil {
			return err
		}
		fmt.Fprintf(out, "Password copied to clipboard (clears in %s)\n", cfg.ClipboardTTL.Round(time.Second))
	} else {
		fmt.Fprintln(out, password)
	}

	fmt.Fprintf(out, "Estimated entropy: %.1f bits\n", entropy)
	return nil
}
