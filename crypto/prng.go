package crypto

// ZeroStateFallback replaces a zero seed. A xorshift state of zero is a fixed
// point that would yield an all-zero keystream.
const ZeroStateFallback uint64 = 0xFFFFFFFF

// XorshiftNext applies one xorshift64 step (13, 7, 17) to *state, stores the
// result and returns it. A zero state stays zero; use NewXorshift to get
// the fallback.
func XorshiftNext(state *uint64) uint64 {
	x := *state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	*state = x
	return x
}

// Xorshift is a keystream generator owning its own state. It is not safe
// for concurrent use; independent generators need no coordination.
type Xorshift struct {
	state uint64
}

// NewXorshift returns a generator seeded with seed, or with
// ZeroStateFallback when seed is zero.
func NewXorshift(seed uint64) *Xorshift {
	if seed == 0 {
		seed = ZeroStateFallback
	}
	return &Xorshift{state: seed}
}

// Next advances the generator and returns the new state.
func (x *Xorshift) Next() uint64 {
	return XorshiftNext(&x.state)
}

// NextByte advances the generator and returns the low 8 bits of the output.
func (x *Xorshift) NextByte() byte {
	return byte(x.Next() & 0xFF)
}

// State reports the current state without advancing it.
func (x *Xorshift) State() uint64 {
	return x.state
}

// Read fills p with keystream bytes, one generator step per byte. It never
// returns an error.
func (x *Xorshift) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = x.NextByte()
	}
	return len(p), nil
}
