package vault

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/7n4xt/Vault-CLI/internal/crypto"
)

// LoadFromContainer parses raw vault file content and returns the document it
// holds, plus whether the file was a legacy plaintext vault.
//
// Detection is purely structural: content carrying a ciphertext key is
// treated as an envelope and decrypted; content without one is parsed as a
// plaintext document. Decryption is never attempted on non-envelope input, so
// a format mismatch can not masquerade as a wrong password.
func LoadFromContainer(raw []byte, password string) (*Document, bool, error) {
	var probe struct {
		Ciphertext *string `json:"ciphertext"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, false, fmt.Errorf("%w: not a JSON object", ErrMalformedContainer)
	}

	if probe.Ciphertext != nil {
		doc, err := decryptContainer(raw, password)
		if err != nil {
			return nil, false, err
		}
		return doc, false, nil
	}

	doc, err := Decode(raw)
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

func decryptContainer(raw []byte, password string) (*Document, error) {
	env, err := crypto.ParseEnvelope(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedContainer, err)
	}

	plaintext, err := crypto.Decrypt(env, password)
	if err != nil {
		switch {
		case errors.Is(err, crypto.ErrAuthenticationFailed):
			return nil, err
		case errors.Is(err, crypto.ErrUnsupportedAlgorithm),
			errors.Is(err, crypto.ErrInvalidIterations):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrMalformedContainer, err)
		}
	}
	defer crypto.Zeroize(plaintext)

	return Decode(plaintext)
}

// EncodeToContainer serializes and encrypts a document into the on-disk
// envelope container.
func EncodeToContainer(doc *Document, password string, iterations int) ([]byte, error) {
	payload, err := Encode(doc)
	if err != nil {
		return nil, err
	}
	defer crypto.Zeroize(payload)

	env, err := crypto.Encrypt(payload, password, iterations)
	if err != nil {
		return nil, err
	}

	return crypto.MarshalEnvelope(env)
}
