// Package limits provides centralized size constants and validation functions
// shared by the bufcrypt packages.
//
// # Limits
//
//   - MaxKeyLength (64KB): the longest key the command-line tools accept.
//     The XOR cipher, the stream cipher and the MAC only require a
//     non-empty key.
//   - MaxFileSize (256MB): the default ceiling for files loaded whole into
//     memory by the file store and the command-line tools.
//   - MACSize (8 bytes): the width of a hash or MAC value.
//
// # Validation Functions
//
//	if err := limits.ValidateKeyNonEmpty(key); err != nil {
//	    // ErrKeyEmpty
//	}
//
//	if err := limits.ValidateKey(key); err != nil {
//	    // ErrKeyEmpty or ErrKeyTooLong
//	}
//
//	if err := limits.ValidateSize(info.Size(), cfg.MaxFileSize); err != nil {
//	    // ErrBufferTooLarge
//	}
//
// Errors are sentinels wrapped with size context, so callers should match
// them with errors.Is rather than ==.
package limits
