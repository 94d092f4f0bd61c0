// Package splitrand implements a splittable random generator in the
// SplitMix64 family. A State names a node in an infinite binary tree of
// independent random streams: splitting a state deterministically yields a
// successor and an independent child, so "the state at index k" is a pure
// function of (seed, k) and can be recomputed on any goroutine or machine
// with identical results.
package splitrand

import (
	"math/bits"
)

// goldenGamma is the odd fractional part of the golden ratio, the canonical
// SplitMix64 stream increment.
const goldenGamma = 0x9e3779b97f4a7c15

// State is an opaque position in the split tree. The zero value is not a
// valid state; obtain one from Root or StateAt.
type State struct {
	key   uint64
	gamma uint64
}

// Root returns the deterministic root state for a seed.
func Root(seed uint64) State {
	return State{key: seed, gamma: goldenGamma}
}

// Split derives two states from s: next continues the frontier walk, child is
// an independent stream intended for one sampling operation. Both are pure
// functions of s.
func (s State) Split() (next, child State) {
	k1 := s.key + s.gamma
	k2 := k1 + s.gamma
	child = State{key: mix64(k1), gamma: mixGamma(k2)}
	next = State{key: k2, gamma: s.gamma}
	return next, child
}

// Stream returns a mutable draw source over s's random stream. The stream is
// private to the caller; s itself is never mutated.
func (s State) Stream() *Stream {
	return &Stream{state: s.key, gamma: s.gamma}
}

// StateAt replays k frontier advances from Root(seed) and returns the child
// of the following split. Pure and side-effect free: concurrent calls with
// equal arguments yield equal states. Cost is O(k); that is the accepted
// price of random access without shared state (callers may memoize
// (seed, k) -> State, but nothing here depends on such a cache).
func StateAt(seed, k uint64) State {
	s := Root(seed)
	for i := uint64(0); i < k; i++ {
		s, _ = s.Split()
	}
	_, child := s.Split()
	return child
}

// Stream produces an unbounded sequence of uniform draws from one state.
type Stream struct {
	state uint64
	gamma uint64
}

// Uint64 returns the next uniform 64-bit value.
func (st *Stream) Uint64() uint64 {
	st.state += st.gamma
	return mix64(st.state)
}

// Float64 returns the next uniform value in [0, 1) with 53 bits of precision.
func (st *Stream) Float64() float64 {
	return float64(st.Uint64()>>11) / (1 << 53)
}

// Float64In returns the next uniform value in [lo, hi).
func (st *Stream) Float64In(lo, hi float64) float64 {
	return lo + st.Float64()*(hi-lo)
}

// mix64 is the SplitMix64 finalizer (Stafford variant 13).
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// mixGamma produces an odd increment with enough bit transitions to keep the
// child stream well distributed, as in java.util.SplittableRandom.
func mixGamma(z uint64) uint64 {
	z = (z ^ (z >> 33)) * 0xff51afd7ed558ccd
	z = (z ^ (z >> 33)) * 0xc4ceb9fe1a85ec53
	z = (z ^ (z >> 33)) | 1
	if bits.OnesCount64(z^(z>>1)) < 24 {
		z ^= 0xaaaaaaaaaaaaaaaa
	}
	return z
}
