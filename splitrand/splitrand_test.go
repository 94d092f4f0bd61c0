package splitrand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootDeterministic(t *testing.T) {
	require.Equal(t, Root(42), Root(42))
	require.NotEqual(t, Root(42), Root(1337))
}

func TestSplitDeterministic(t *testing.T) {
	s := Root(42)

	n1, c1 := s.Split()
	n2, c2 := s.Split()
	require.Equal(t, n1, n2)
	require.Equal(t, c1, c2)

	require.NotEqual(t, n1, c1)
	require.NotEqual(t, s, n1)
	require.NotEqual(t, s, c1)
}

func TestStateAtMatchesFrontierWalk(t *testing.T) {
	const seed = 42

	frontier := Root(seed)
	for k := uint64(0); k < 50; k++ {
		var child State
		frontier, child = frontier.Split()
		require.Equal(t, child, StateAt(seed, k), "index %d", k)
	}
}

func TestStateAtPure(t *testing.T) {
	require.Equal(t, StateAt(42, 17), StateAt(42, 17))
	require.NotEqual(t, StateAt(42, 17), StateAt(42, 18))
	require.NotEqual(t, StateAt(42, 17), StateAt(1337, 17))
}

func TestStreamDoesNotMutateState(t *testing.T) {
	s := Root(42)
	before := s

	stream := s.Stream()
	stream.Uint64()
	stream.Uint64()

	require.Equal(t, before, s)

	// a fresh stream replays the same draws
	replay := s.Stream()
	first := s.Stream()
	require.Equal(t, first.Uint64(), replay.Uint64())
}

func TestFloat64Range(t *testing.T) {
	stream := Root(7).Stream()
	for i := 0; i < 1000; i++ {
		v := stream.Float64()
		require.True(t, v >= 0 && v < 1, "draw %d out of range: %v", i, v)
	}
}

func TestFloat64InRange(t *testing.T) {
	stream := Root(7).Stream()
	for i := 0; i < 1000; i++ {
		v := stream.Float64In(0, 150)
		require.True(t, v >= 0 && v < 150, "draw %d out of range: %v", i, v)
	}
}

func TestSeedsDiverge(t *testing.T) {
	a := Root(42).Stream()
	b := Root(1337).Stream()
	require.NotEqual(t, a.Uint64(), b.Uint64())
}

func TestGammaStaysOdd(t *testing.T) {
	s := Root(99)
	for i := 0; i < 100; i++ {
		var child State
		s, child = s.Split()
		require.Equal(t, uint64(1), child.gamma&1, "split %d produced an even gamma", i)
		require.Equal(t, uint64(1), s.gamma&1)
	}
}
