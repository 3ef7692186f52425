// Package crypto implements the encrypted envelope format used by the vault:
// PBKDF2-HMAC-SHA-256 key derivation and AES-256-GCM authenticated encryption.
// It also provides the password generator used by the CLI.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the AES-256 key size in bytes.
	KeySize = 32
	// SaltSize is the PBKDF2 salt size in bytes.
	SaltSize = 16
	// NonceSize is the GCM nonce size in bytes.
	NonceSize = 12

	// DefaultIterations is the default PBKDF2 cost parameter.
	DefaultIterations = 200000
	// MinIterations is the lowest iteration count accepted on decode.
	MinIterations = 1

	// KDFPBKDF2SHA256 identifies the only supported key derivation function.
	KDFPBKDF2SHA256 = "pbkdf2_sha256"
	// CipherAESGCM identifies the only supported cipher.
	CipherAESGCM = "aes_gcm"
)

var (
	// ErrAuthenticationFailed is returned when the GCM tag does not verify:
	// wrong password or tampered/corrupted ciphertext, deliberately not
	// distinguished.
	ErrAuthenticationFailed = errors.New("authentication failed: wrong password or corrupted data")
	// ErrMalformedEnvelope is returned when envelope fields cannot be decoded
	// (bad JSON, invalid base64, wrong field sizes).
	ErrMalformedEnvelope = errors.New("malformed envelope")
	// ErrUnsupportedAlgorithm is returned when an envelope names a KDF or
	// cipher this build does not implement.
	ErrUnsupportedAlgorithm = errors.New("unsupported kdf or cipher identifier")
	// ErrInvalidIterations is returned for an iteration count below the minimum.
	ErrInvalidIterations = errors.New("invalid iteration count")
)

// Envelope is the self-describing encrypted container. All binary fields are
// base64 so the whole value round-trips through a JSON text file.
type Envelope struct {
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
	Iterations int    `json:"iterations"`
	KDF        string `json:"kdf"`
	Cipher     string `json:"cipher"`
}

// DeriveKey derives a 32-byte AES key from a master password. Same
// (password, salt, iterations) always yields the same key.
func DeriveKey(password string, salt []byte, iterations int) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrMalformedEnvelope, SaltSize, len(salt))
	}
	if iterations < MinIterations {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, iterations)
	}
	return pbkdf2.Key([]byte(password), salt, iterations, KeySize, sha256.New), nil
}

// Encrypt seals plaintext under a password. Salt and nonce are freshly
// generated on every call; a (key, nonce) pair is never reused.
func Encrypt(plaintext []byte, password string, iterations int) (*Envelope, error) {
	if iterations < MinIterations {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, iterations)
	}

	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	key, err := DeriveKey(password, salt, iterations)
	if err != nil {
		return nil, err
	}
	defer Zeroize(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	return &Envelope{
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		Iterations: iterations,
		KDF:        KDFPBKDF2SHA256,
		Cipher:     CipherAESGCM,
	}, nil
}

// Decrypt opens an envelope with the given password, re-deriving the key from
// the envelope's own salt and iteration count. A failed tag check returns
// ErrAuthenticationFailed and never any plaintext.
func Decrypt(env *Envelope, password string) ([]byte, error) {
	if env.KDF != KDFPBKDF2SHA256 {
		return nil, fmt.Errorf("%w: kdf %q", ErrUnsupportedAlgorithm, env.KDF)
	}
	if env.Cipher != CipherAESGCM {
		return nil, fmt.Errorf("%w: cipher %q", ErrUnsupportedAlgorithm, env.Cipher)
	}
	if env.Iterations < MinIterations {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, env.Iterations)
	}

	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt encoding", ErrMalformedEnvelope)
	}
	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid nonce encoding", ErrMalformedEnvelope)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ciphertext encoding", ErrMalformedEnvelope)
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrMalformedEnvelope, NonceSize, len(nonce))
	}

	key, err := DeriveKey(password, salt, env.Iterations)
	if err != nil {
		return nil, err
	}
	defer Zeroize(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

// MarshalEnvelope renders an envelope as the on-disk JSON container.
func MarshalEnvelope(env *Envelope) ([]byte, error) {
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}
	return data, nil
}

// ParseEnvelope decodes the on-disk JSON container into an Envelope. It is a
// structural parse only; no key derivation or decryption happens here.
func ParseEnvelope(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if env.Ciphertext == "" {
		return nil, fmt.Errorf("%w: missing ciphertext", ErrMalformedEnvelope)
	}
	return &env, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}

// Zeroize overwrites a byte slice holding secret material.
func Zeroize(data []byte) {
	for i := range data {
		data[i] = 0
	}
}
