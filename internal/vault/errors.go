package vault

import (
	"errors"

	"github.com/7n4xt/Vault-CLI/internal/crypto"
)

var (
	// ErrNotFound is returned when the vault file does not exist. The caller
	// may offer to initialize a new vault.
	ErrNotFound = errors.New("vault not found")
	// ErrAuthenticationFailed mirrors the codec's tag-check failure: wrong
	// password or tampered file, intentionally not distinguished.
	ErrAuthenticationFailed = crypto.ErrAuthenticationFailed
	// ErrMalformedContainer is returned when file content is neither a valid
	// envelope nor a valid plaintext document.
	ErrMalformedContainer = errors.New("malformed vault container")
	// ErrMalformedDocument is returned when parsed content lacks the expected
	// entries shape.
	ErrMalformedDocument = errors.New("malformed vault document")
	// ErrInvalidInput is returned for bad caller input such as an empty entry
	// name or an unsupported algorithm identifier in an envelope.
	ErrInvalidInput = errors.New("invalid input")
)
