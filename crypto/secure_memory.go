package crypto

import "runtime"

// Wipe zeroes buf in place. The command-line tools call it on key material
// and plaintext once they are no longer needed.
func Wipe(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Keep buf reachable until the stores above are done.
	runtime.KeepAlive(buf)
}
