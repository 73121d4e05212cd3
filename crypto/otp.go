package crypto

import (
	"fmt"

	"github.com/opd-ai/bufcrypt/limits"
)

// ErrEmptyKey is returned by every keyed primitive when the key has no bytes.
var ErrEmptyKey = limits.ErrKeyEmpty

// XORCrypt encrypts or decrypts buf in place with a one-time pad. Each byte
// is XORed with key[i % len(key)], so a short key repeats cyclically.
// Applying XORCrypt twice with the same key restores buf.
func XORCrypt(buf, key []byte) error {
	if err := limits.ValidateKeyNonEmpty(key); err != nil {
		NewLogger("XORCrypt").WithError(err, "validate_key").Debug("Rejected key")
		return fmt.Errorf("xor crypt: %w", err)
	}

	if debugEnabled() {
		NewLogger("XORCrypt").
			WithFields(BufferFields(buf, "data")).
			WithField("key_size", len(key)).
			Debug("Applying XOR pad")
	}

	xorCyclic(buf, key)
	return nil
}

// XOR returns data XORed with the cyclic key as a new buffer, leaving data
// untouched.
func XOR(data, key []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)
	if err := XORCrypt(out, key); err != nil {
		return nil, err
	}
	return out, nil
}

// xorCyclic is the unchecked pad loop. key must be non-empty.
func xorCyclic(buf, key []byte) {
	n := len(key)
	for i := range buf {
		buf[i] ^= key[i%n]
	}
}
