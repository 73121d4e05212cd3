// Package limits provides centralized size limits for buffers, keys and files.
// This ensures consistent validation across the primitives, the file store
// and the command-line tools.
package limits

import (
	"errors"
	"fmt"
)

const (
	// MaxKeyLength is the longest key text the command-line tools accept.
	// The primitives themselves take keys of any non-zero length.
	MaxKeyLength = 64 * 1024

	// MaxFileSize is the default ceiling for a file read into memory (256MB).
	MaxFileSize = 256 * 1024 * 1024

	// MACSize is the width in bytes of a MAC value and of a hash value.
	MACSize = 8
)

var (
	// ErrKeyEmpty indicates a zero-length key was supplied
	ErrKeyEmpty = errors.New("empty key")

	// ErrKeyTooLong indicates the key exceeds MaxKeyLength
	ErrKeyTooLong = errors.New("key too long")

	// ErrBufferTooLarge indicates a buffer or file exceeds its size limit
	ErrBufferTooLarge = errors.New("buffer too large")
)

// ValidateKeyNonEmpty checks that a key is usable by the cyclic XOR
// constructions. A zero-length key would make every index modulo zero.
func ValidateKeyNonEmpty(key []byte) error {
	if len(key) == 0 {
		return ErrKeyEmpty
	}
	return nil
}

// ValidateKey checks a key supplied from outside the process: it must be
// non-empty and no longer than MaxKeyLength.
func ValidateKey(key []byte) error {
	if err := ValidateKeyNonEmpty(key); err != nil {
		return err
	}
	if len(key) > MaxKeyLength {
		return fmt.Errorf("%w: length %d exceeds limit %d", ErrKeyTooLong, len(key), MaxKeyLength)
	}
	return nil
}

// ValidateSize checks a byte count against maxSize. Zero is always valid:
// an empty file round-trips through the ciphers unchanged.
func ValidateSize(size int64, maxSize int64) error {
	if size < 0 {
		return fmt.Errorf("invalid negative size %d", size)
	}
	if size > maxSize {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrBufferTooLarge, size, maxSize)
	}
	return nil
}

// ValidateFileSize validates a file size against MaxFileSize.
func ValidateFileSize(size int64) error {
	return ValidateSize(size, MaxFileSize)
}
