package vmath

// FastRand is a xorshift64 generator; not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand seeds the generator; a zero seed is replaced since xorshift would stall on it
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Sign returns -1 or +1 with equal probability, taken from the high bit
func (r *FastRand) Sign() int {
	if r.Next()>>63 == 0 {
		return -1
	}
	return 1
}
