package palette

import (
	"sync"

	"github.com/mmuldo/prism/colorspace"
	"github.com/mmuldo/prism/splitrand"
)

// DefaultSeed seeds the package-level session before any explicit Reseed.
const DefaultSeed uint64 = 0

// Session is a cursor over the stateless core: it remembers the current seed,
// the split frontier, and how many draws have been taken, so sequential
// callers need not track indices. A Session is single-owner by contract;
// concurrent mutation requires external synchronization. Parallel code should
// use the indexed functions instead, which need no session at all.
type Session struct {
	seed       uint64
	frontier   splitrand.State
	invocation uint64
}

// NewSession returns an independent session positioned at the start of seed's
// sequence.
func NewSession(seed uint64) *Session {
	s := &Session{}
	s.Reseed(seed)
	return s
}

// Reseed rebuilds the session from a fresh root, discarding the current
// frontier and resetting the invocation count to zero.
func (s *Session) Reseed(seed uint64) {
	s.seed = seed
	s.frontier = splitrand.Root(seed)
	s.invocation = 0
}

// Seed returns the seed the session was last reseeded with.
func (s *Session) Seed() uint64 { return s.seed }

// Invocation returns the number of draws taken since the last reseed.
func (s *Session) Invocation() uint64 { return s.invocation }

// NextDraw advances the frontier by one split and returns the child state for
// sampling. The n-th call since a reseed (counting from zero) returns
// splitrand.StateAt(seed, n); sequential and indexed access agree.
func (s *Session) NextDraw() splitrand.State {
	var child splitrand.State
	s.frontier, child = s.frontier.Split()
	s.invocation++
	return child
}

// NextColor samples the next color in the session's sequence.
func (s *Session) NextColor(space colorspace.Space) colorspace.RGB {
	return SampleColor(s.NextDraw(), space)
}

// NextColors samples the next n colors in the session's sequence.
func (s *Session) NextColors(n int, space colorspace.Space) ([]colorspace.RGB, error) {
	if n <= 0 {
		return nil, ErrInvalidCount
	}
	colors := make([]colorspace.RGB, n)
	for i := range colors {
		colors[i] = s.NextColor(space)
	}
	return colors, nil
}

// NextPalette generates a distinct palette rooted at the session's next draw.
// One draw is consumed regardless of the palette's final length.
func (s *Session) NextPalette(n int, space colorspace.Space, minDistance float64) ([]colorspace.RGB, error) {
	return SamplePalette(s.NextDraw(), n, space, minDistance)
}

var (
	defaultSession *Session
	sessionOnce    sync.Once
)

func session() *Session {
	sessionOnce.Do(func() {
		defaultSession = NewSession(DefaultSeed)
	})
	return defaultSession
}

// Reseed resets the package-level session. Like all package-level session
// calls, it is meant for single-threaded script-style use.
func Reseed(seed uint64) {
	session().Reseed(seed)
}

// NextColor samples the next color from the package-level session.
func NextColor(space colorspace.Space) colorspace.RGB {
	return session().NextColor(space)
}

// NextColors samples the next n colors from the package-level session.
func NextColors(n int, space colorspace.Space) ([]colorspace.RGB, error) {
	return session().NextColors(n, space)
}

// NextPalette generates a palette from the package-level session.
func NextPalette(n int, space colorspace.Space, minDistance float64) ([]colorspace.RGB, error) {
	return session().NextPalette(n, space, minDistance)
}
