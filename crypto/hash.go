package crypto

import (
	"encoding/binary"
	"hash"
)

// HashSeed is the initial djb2 accumulator.
const HashSeed uint64 = 5381

// Hash returns the djb2 hash of buf: starting from 5381, every byte is
// folded in as h = h*33 + b. Arithmetic wraps modulo 2^64; overflow is the
// intended behavior. The empty buffer hashes to HashSeed.
func Hash(buf []byte) uint64 {
	return hashUpdate(HashSeed, buf)
}

func hashUpdate(h uint64, buf []byte) uint64 {
	for _, b := range buf {
		h = (h << 5) + h + uint64(b)
	}
	return h
}

// djb2 is the streaming form of Hash.
type djb2 struct {
	sum uint64
}

// NewHash returns a djb2 digest implementing hash.Hash64. Writing a buffer
// in any number of pieces produces the same Sum64 as Hash over the whole.
func NewHash() hash.Hash64 {
	return &djb2{sum: HashSeed}
}

func (d *djb2) Write(p []byte) (int, error) {
	d.sum = hashUpdate(d.sum, p)
	return len(p), nil
}

// Sum appends the big-endian digest, like the standard library hashes.
func (d *djb2) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, d.sum)
}

func (d *djb2) Sum64() uint64 { return d.sum }

func (d *djb2) Reset() { d.sum = HashSeed }

func (d *djb2) Size() int { return 8 }

func (d *djb2) BlockSize() int { return 1 }
