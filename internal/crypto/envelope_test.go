package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

const testIterations = 1000

func TestDeriveKeyDeterministic(t *testing.T) {
	salt := make([]byte, SaltSize)
	for i := range salt {
		salt[i] = byte(i)
	}

	key1, err := DeriveKey("hunter2", salt, testIterations)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if len(key1) != KeySize {
		t.Errorf("expected key size %d, got %d", KeySize, len(key1))
	}

	key2, err := DeriveKey("hunter2", salt, testIterations)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if !bytes.Equal(key1, key2) {
		t.Error("same inputs should produce the same key")
	}

	key3, err := DeriveKey("hunter3", salt, testIterations)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if bytes.Equal(key1, key3) {
		t.Error("different password should produce a different key")
	}

	key4, err := DeriveKey("hunter2", salt, testIterations+1)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if bytes.Equal(key1, key4) {
		t.Error("different iteration count should produce a different key")
	}
}

func TestDeriveKeyRejectsBadInputs(t *testing.T) {
	if _, err := DeriveKey("pw", make([]byte, SaltSize-1), testIterations); err == nil {
		t.Error("expected error for short salt")
	}
	if _, err := DeriveKey("pw", make([]byte, SaltSize), 0); !errors.Is(err, ErrInvalidIterations) {
		t.Errorf("expected ErrInvalidIterations, got %v", err)
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	plaintext := []byte(`{"metadata":{"created_at":"2025-11-15"},"entries":[]}`)

	env, err := Encrypt(plaintext, "hunter2", testIterations)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if env.KDF != KDFPBKDF2SHA256 {
		t.Errorf("expected kdf %q, got %q", KDFPBKDF2SHA256, env.KDF)
	}
	if env.Cipher != CipherAESGCM {
		t.Errorf("expected cipher %q, got %q", CipherAESGCM, env.Cipher)
	}
	if env.Iterations != testIterations {
		t.Errorf("expected iterations %d, got %d", testIterations, env.Iterations)
	}

	got, err := Decrypt(env, "hunter2")
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("round trip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestEncryptFreshSaltAndNonce(t *testing.T) {
	plaintext := []byte("same plaintext")

	env1, err := Encrypt(plaintext, "pw", testIterations)
	if err != nil {
		t.Fatalf("first Encrypt failed: %v", err)
	}
	env2, err := Encrypt(plaintext, "pw", testIterations)
	if err != nil {
		t.Fatalf("second Encrypt failed: %v", err)
	}

	if env1.Salt == env2.Salt {
		t.Error("successive encryptions must use different salts")
	}
	if env1.Nonce == env2.Nonce {
		t.Error("successive encryptions must use different nonces")
	}
	if env1.Ciphertext == env2.Ciphertext {
		t.Error("successive encryptions must produce different ciphertexts")
	}
}

func TestDecryptWrongPassword(t *testing.T) {
	env, err := Encrypt([]byte("secret"), "correct", testIterations)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	plaintext, err := Decrypt(env, "wrong")
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("expected ErrAuthenticationFailed, got %v", err)
	}
	if plaintext != nil {
		t.Error("no plaintext may be returned on authentication failure")
	}
}

func TestDecryptTamperDetection(t *testing.T) {
	env, err := Encrypt([]byte("secret payload"), "pw", testIterations)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	fields := map[string]*string{
		"salt":       &env.Salt,
		"nonce":      &env.Nonce,
		"ciphertext": &env.Ciphertext,
	}

	for name, field := range fields {
		t.Run(name, func(t *testing.T) {
			original := *field
			defer func() { *field = original }()

			raw, err := base64.StdEncoding.DecodeString(original)
			if err != nil {
				t.Fatalf("failed to decode %s: %v", name, err)
			}
			raw[0] ^= 0x01
			*field = base64.StdEncoding.EncodeToString(raw)

			plaintext, err := Decrypt(env, "pw")
			if !errors.Is(err, ErrAuthenticationFailed) {
				t.Errorf("tampered %s: expected ErrAuthenticationFailed, got %v", name, err)
			}
			if plaintext != nil {
				t.Errorf("tampered %s: plaintext must not be returned", name)
			}
		})
	}
}

func TestDecryptUnsupportedAlgorithms(t *testing.T) {
	env, err := Encrypt([]byte("x"), "pw", testIterations)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	bad := *env
	bad.KDF = "scrypt"
	if _, err := Decrypt(&bad, "pw"); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm for kdf, got %v", err)
	}

	bad = *env
	bad.Cipher = "chacha20_poly1305"
	if _, err := Decrypt(&bad, "pw"); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm for cipher, got %v", err)
	}

	bad = *env
	bad.Iterations = 0
	if _, err := Decrypt(&bad, "pw"); !errors.Is(err, ErrInvalidIterations) {
		t.Errorf("expected ErrInvalidIterations, got %v", err)
	}
}

func TestDecryptInvalidBase64(t *testing.T) {
	env, err := Encrypt([]byte("x"), "pw", testIterations)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	bad := *env
	bad.Ciphertext = "not base64 !!!"
	_, err = Decrypt(&bad, "pw")
	if !errors.Is(err, ErrMalformedEnvelope) {
		t.Errorf("expected ErrMalformedEnvelope, got %v", err)
	}
	if errors.Is(err, ErrAuthenticationFailed) {
		t.Error("base64 errors must not look like authentication failures")
	}
}

func TestParseEnvelope(t *testing.T) {
	env, err := Encrypt([]byte("payload"), "pw", testIterations)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	data, err := MarshalEnvelope(env)
	if err != nil {
		t.Fatalf("MarshalEnvelope failed: %v", err)
	}

	parsed, err := ParseEnvelope(data)
	if err != nil {
		t.Fatalf("ParseEnvelope failed: %v", err)
	}
	if *parsed != *env {
		t.Errorf("parsed envelope differs: got %+v, want %+v", parsed, env)
	}

	if _, err := ParseEnvelope([]byte("not json")); !errors.Is(err, ErrMalformedEnvelope) {
		t.Errorf("expected ErrMalformedEnvelope for bad JSON, got %v", err)
	}
	if _, err := ParseEnvelope([]byte(`{"salt":"AA=="}`)); !errors.Is(err, ErrMalformedEnvelope) {
		t.Errorf("expected ErrMalformedEnvelope for missing ciphertext, got %v", err)
	}
}

func TestEncryptRejectsBadIterations(t *testing.T) {
	if _, err := Encrypt([]byte("x"), "pw", 0); !errors.Is(err, ErrInvalidIterations) {
		t.Errorf("expected ErrInvalidIterations, got %v", err)
	}
}
