package crypto

import (
	"crypto/cipher"
	"fmt"
	"unsafe"

	"github.com/opd-ai/bufcrypt/limits"
)

// keystream is a cipher.Stream backed by a Xorshift generator seeded from
// the djb2 hash of the key.
type keystream struct {
	gen *Xorshift
}

// NewStream returns a cipher.Stream for key. Successive XORKeyStream calls
// continue the same keystream, so processing a buffer in chunks gives the
// same result as processing it at once. The stream can be wrapped in
// cipher.StreamReader or cipher.StreamWriter.
func NewStream(key []byte) (cipher.Stream, error) {
	if err := limits.ValidateKeyNonEmpty(key); err != nil {
		NewLogger("NewStream").WithError(err, "validate_key").Debug("Rejected key")
		return nil, fmt.Errorf("stream cipher: %w", err)
	}

	seed := Hash(key)
	if debugEnabled() {
		NewLogger("NewStream").
			WithField("key_size", len(key)).
			WithField("zero_seed", seed == 0).
			Debug("Seeding keystream from key hash")
	}
	return &keystream{gen: NewXorshift(seed)}, nil
}

// XORKeyStream XORs each byte of src with the next keystream byte and writes
// it to dst. dst and src must overlap entirely or not at all; a partial
// overlap panics.
func (s *keystream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("crypto: output smaller than input")
	}
	if inexactOverlap(dst[:len(src)], src) {
		panic("crypto: invalid buffer overlap")
	}
	for i, b := range src {
		dst[i] = b ^ s.gen.NextByte()
	}
}

// inexactOverlap reports whether x and y share memory at any position other
// than the same starting element.
func inexactOverlap(x, y []byte) bool {
	if len(x) == 0 || len(y) == 0 || &x[0] == &y[0] {
		return false
	}
	return uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}

// StreamCrypt encrypts or decrypts buf in place with the xorshift stream
// cipher. Re-seeding from the same key reproduces the keystream, so applying
// StreamCrypt twice restores buf.
func StreamCrypt(buf, key []byte) error {
	s, err := NewStream(key)
	if err != nil {
		return err
	}
	s.XORKeyStream(buf, buf)
	return nil
}

// StreamXOR is the copying form of StreamCrypt.
func StreamXOR(data, key []byte) ([]byte, error) {
	s, err := NewStream(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	s.XORKeyStream(out, data)
	return out, nil
}
