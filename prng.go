package stillcount

import "time"

// PRNG is a small, fully self-contained 64-bit generator (splitmix64). Its
// output is treated as an opaque, fixed bit-stream by every caller in this
// package: nothing here depends on its internal algorithm beyond "always
// produces the same sequence for the same seed", which is what the
// hash-salt table (RandomDataArray) needs.
type PRNG struct {
	state uint64
}

// NewPRNG returns a generator seeded with seed.
func NewPRNG(seed uint64) *PRNG {
	return &PRNG{state: seed}
}

// NewPRNGFromTime seeds a generator from the wall clock, for callers (CLI
// entry points) that want a non-reproducible run rather than a fixed seed.
func NewPRNGFromTime() *PRNG {
	return NewPRNG(uint64(time.Now().UnixNano()))
}

// SetSeed reinitializes the generator's state.
func (p *PRNG) SetSeed(seed uint64) {
	p.state = seed
}

// Uint64 returns the next word in the stream.
func (p *PRNG) Uint64() uint64 {
	p.state += 0x9e3779b97f4a7c15
	z := p.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Intn returns a pseudo-random value in [0, n). n must be positive.
func (p *PRNG) Intn(n int) int {
	return int(p.Uint64() % uint64(n))
}
