package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"strings"
	"sync"
)

const (
	charsLower  = "abcdefghijklmnopqrstuvwxyz"
	charsUpper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	charsDigits = "0123456789"
	// Symbols exclude whitespace-like and ambiguous characters.
	charsSymbols = "!@#$%^&*()-_=+[]{};:,.<>/?"
)

// MinPasswordLength is the shortest password the generator will produce.
const MinPasswordLength = 4

var (
	errPasswordTooShort = errors.New("password length must be at least 4")
	errEmptyCharset     = errors.New("at least one character class must be enabled")
)

var (
	randSource io.Reader = rand.Reader
	randMux    sync.RWMutex
)

// GenerateOptions selects which character classes the generator draws from.
type GenerateOptions struct {
	Lower   bool
	Upper   bool
	Digits  bool
	Symbols bool
}

// DefaultGenerateOptions enables every character class.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{Lower: true, Upper: true, Digits: true, Symbols: true}
}

// SetRandomSource overrides the random source for tests. Passing nil resets
// to crypto/rand.Reader.
func SetRandomSource(r io.Reader) {
	randMux.Lock()
	if r == nil {
		randSource = rand.Reader
	} else {
		randSource = r
	}
	randMux.Unlock()
}

// GeneratePassword produces a cryptographically random password of the given
// length and returns it together with its estimated entropy in bits.
func GeneratePassword(length int, opts GenerateOptions) (string, float64, error) {
	if length < MinPasswordLength {
		return "", 0, errPasswordTooShort
	}

	charset := buildCharset(opts)
	if len(charset) == 0 {
		return "", 0, errEmptyCharset
	}

	randMux.RLock()
	src := randSource
	randMux.RUnlock()

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		idx, err := randomIndex(src, len(charset))
		if err != nil {
			return "", 0, err
		}
		b.WriteByte(charset[idx])
	}

	return b.String(), EstimateEntropy(length, len(charset)), nil
}

// EstimateEntropy returns length * log2(charsetSize) bits.
func EstimateEntropy(length, charsetSize int) float64 {
	if length <= 0 || charsetSize <= 1 {
		return 0
	}
	return float64(length) * math.Log2(float64(charsetSize))
}

func buildCharset(opts GenerateOptions) string {
	var b strings.Builder
	if opts.Lower {
		b.WriteString(charsLower)
	}
	if opts.Upper {
		b.WriteString(charsUpper)
	}
	if opts.Digits {
		b.WriteString(charsDigits)
	}
	if opts.Symbols {
		b.WriteString(charsSymbols)
	}
	return b.String()
}

// randomIndex returns a uniform index in [0, n) using rejection sampling to
// avoid modulo bias.
func randomIndex(src io.Reader, n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("charset must not be empty")
	}

	max := uint32(n)
	// A multiple of n near 2^32; wraps to 0 when every value is acceptable.
	limit := (uint32(1<<31) / max) * max * 2

	var buf [4]byte
	for {
		if _, err := io.ReadFull(src, buf[:]); err != nil {
			return 0, err
		}
		v := binary.BigEndian.Uint32(buf[:])
		if limit != 0 && v >= limit {
			continue
		}
		return int(v % max), nil
	}
}
