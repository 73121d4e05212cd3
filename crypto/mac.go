package crypto

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/opd-ai/bufcrypt/limits"
)

// MAC is a 64-bit message authentication code.
type MAC uint64

// String renders the MAC as 0x followed by 16 upper-case hex digits.
func (m MAC) String() string {
	return fmt.Sprintf("0x%016X", uint64(m))
}

// Bytes returns the little-endian encoding of the MAC.
func (m MAC) Bytes() [limits.MACSize]byte {
	var b [limits.MACSize]byte
	binary.LittleEndian.PutUint64(b[:], uint64(m))
	return b
}

// ParseMAC parses a MAC written as 1 to 16 hex digits, with an optional 0x
// or 0X prefix.
func ParseMAC(s string) (MAC, error) {
	digits := strings.TrimSpace(s)
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	if digits == "" || len(digits) > 2*limits.MACSize {
		return 0, fmt.Errorf("invalid MAC %q: want 1 to %d hex digits", s, 2*limits.MACSize)
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid MAC %q: %w", s, err)
	}
	return MAC(v), nil
}

// ComputeMAC hashes message with djb2 and encrypts the 8-byte little-endian
// digest with the XOR pad under key.
func ComputeMAC(message, key []byte) (MAC, error) {
	if err := limits.ValidateKeyNonEmpty(key); err != nil {
		return 0, fmt.Errorf("compute mac: %w", err)
	}

	var digest [limits.MACSize]byte
	binary.LittleEndian.PutUint64(digest[:], Hash(message))
	xorCyclic(digest[:], key)
	mac := MAC(binary.LittleEndian.Uint64(digest[:]))

	if debugEnabled() {
		NewLogger("ComputeMAC").
			WithFields(BufferFields(message, "message")).
			WithField("mac", mac.String()).
			Debug("Computed MAC")
	}
	return mac, nil
}

// VerifyMAC reports whether mac is the MAC of message under key. Every
// failure, including an unusable key, is a plain false.
func VerifyMAC(message, key []byte, mac MAC) bool {
	want, err := ComputeMAC(message, key)
	if err != nil {
		NewLogger("VerifyMAC").WithError(err, "compute_mac").Debug("Verification failed")
		return false
	}
	return want == mac
}
