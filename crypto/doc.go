// Package crypto implements small teaching-grade byte-buffer primitives:
// a one-time-pad XOR cipher, the djb2 hash, a xorshift keystream
// generator, a stream cipher built on that generator, and a MAC obtained by
// XOR-encrypting a djb2 digest.
//
// None of these primitives is secure. They are small and deterministic so
// that their behaviour can be followed by hand.
//
// # XOR Cipher
//
// XORCrypt transforms a buffer in place, repeating a short key cyclically.
// XOR is its own inverse, so the same call decrypts:
//
//	buf := []byte("This is a very secret message")
//	key := []byte("s3cr3t_p4ssw0rd")
//	_ = crypto.XORCrypt(buf, key) // encrypt
//	_ = crypto.XORCrypt(buf, key) // decrypt
//
// # Hashing
//
// Hash folds every byte into h = h*33 + b starting from 5381, with wrapping
// uint64 arithmetic. NewHash exposes the same function as a hash.Hash64.
//
// # Keystream and Stream Cipher
//
// Xorshift is an explicit generator value; a zero seed is replaced by
// ZeroStateFallback because zero is a fixed point of xorshift. StreamCrypt
// seeds a generator from Hash(key) and XORs the low byte of each output into
// the data. NewStream returns the same cipher as a cipher.Stream:
//
//	s, err := crypto.NewStream([]byte("password"))
//	if err != nil {
//	    return err
//	}
//	w := cipher.StreamWriter{S: s, W: out}
//
// # Message Authentication
//
// ComputeMAC encodes Hash(message) as 8 little-endian bytes, XORs them with
// the key and decodes the result. VerifyMAC recomputes and compares with ==;
// a mismatch is false, never an error.
//
//	mac, _ := crypto.ComputeMAC(message, key)
//	fmt.Println("MAC:", mac) // MAC: 0x48BAE3B918FF90A8
//	ok := crypto.VerifyMAC(message, key, mac)
//
// # Errors
//
// The keyed primitives reject an empty key with an error wrapping
// ErrEmptyKey. Integer wraparound in the hash and the generator is expected
// and never reported.
//
// # Thread Safety
//
// The functions are safe for concurrent use on disjoint buffers. An Xorshift
// or a stream returned by NewStream must not be shared between goroutines
// without external locking.
package crypto
