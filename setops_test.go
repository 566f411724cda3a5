// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

//********************************************************************************************

func TestConstants(t *testing.T) {
	m := newMDD(t, power(cyclic(3), 3))
	for i := 0; i <= m.Factors(); i++ {
		l := m.Level(i)
		if l.Complement(l.Empty()) != l.Full() {
			t.Errorf("level %d: complement(Empty) should be Full", i)
		}
		if l.Complement(l.Full()) != l.Empty() {
			t.Errorf("level %d: complement(Full) should be Empty", i)
		}
	}
	require.Equal(t, big.NewInt(27), m.Count(m.Full()))
	require.Equal(t, big.NewInt(0), m.Count(m.Empty()))
	require.Equal(t, big.NewInt(9), m.Level(1).Count(Full))
	require.Equal(t, big.NewInt(1), m.Level(3).Count(Full))
}

func TestShortCircuits(t *testing.T) {
	m := newMDD(t, power(cyclic(3), 2))
	a := m.Union(m.Spike(0, 1), m.Spike(2, 2))

	var shortTests = []struct {
		name     string
		actual   Node
		expected Node
	}{
		{"a ∪ ∅", m.Union(a, Empty), a},
		{"∅ ∪ a", m.Union(Empty, a), a},
		{"a ∪ a", m.Union(a, a), a},
		{"a ∪ U", m.Union(a, Full), Full},
		{"U ∪ a", m.Union(Full, a), Full},
		{"a ∩ U", m.Intersection(a, Full), a},
		{"U ∩ a", m.Intersection(Full, a), a},
		{"a ∩ a", m.Intersection(a, a), a},
		{"a ∩ ∅", m.Intersection(a, Empty), Empty},
		{"∅ ∩ a", m.Intersection(Empty, a), Empty},
		{"a ∪ ¬a", m.Union(a, m.Complement(a)), Full},
		{"a ∩ ¬a", m.Intersection(a, m.Complement(a)), Empty},
		{"a \\ a", m.Difference(a, a), Empty},
	}
	for _, tt := range shortTests {
		if tt.actual != tt.expected {
			t.Errorf("%s: expected %d, actual %d", tt.name, tt.expected, tt.actual)
		}
	}
	require.False(t, m.Errored())
}

func TestSetOperations(t *testing.T) {
	m := newMDD(t, power(cyclic(3), 3))
	a := fromSet(m, [][]int{{0, 0, 0}, {0, 1, 2}, {1, 1, 1}, {2, 0, 1}})
	b := fromSet(m, [][]int{{0, 1, 2}, {2, 2, 2}, {2, 0, 1}})

	require.Equal(t, int64(5), m.Count(m.Union(a, b)).Int64())
	require.Equal(t, int64(2), m.Count(m.Intersection(a, b)).Int64())
	require.Equal(t, int64(23), m.Count(m.Complement(a)).Int64())
	require.Equal(t, int64(2), m.Count(m.Difference(a, b)).Int64())
	require.True(t, m.Subset(m.Intersection(a, b), a))
	require.False(t, m.Subset(a, b))
	require.True(t, m.Member(m.Intersection(a, b), 2, 0, 1))
	require.False(t, m.Member(m.Intersection(a, b), 1, 1, 1))
	require.Equal(t, Full, m.Intersection())
	require.Equal(t, Empty, m.Union())
}

// TestLaws checks the algebraic laws of set operations on random sets.
func TestLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		factors := drawFactors(t)
		m, err := New(factors, Cachesize(rapid.IntRange(1, 100).Draw(t, "cachesize")))
		require.NoError(t, err)
		defer m.Close()

		sa := drawTuples(t, factors, "a")
		sb := drawTuples(t, factors, "b")
		sc := drawTuples(t, factors, "c")
		a, b, c := fromSet(m, sa), fromSet(m, sb), fromSet(m, sc)

		require.Equal(t, a, m.Union(a, a))
		require.Equal(t, a, m.Intersection(a, a))
		require.Equal(t, a, m.Complement(m.Complement(a)))
		require.Equal(t, m.Union(a, b), m.Union(b, a))
		require.Equal(t, m.Intersection(a, b), m.Intersection(b, a))
		require.Equal(t, m.Union(a, m.Union(b, c)), m.Union(m.Union(a, b), c))
		require.Equal(t, m.Intersection(a, m.Intersection(b, c)), m.Intersection(m.Intersection(a, b), c))
		// De Morgan
		require.Equal(t, m.Complement(m.Union(a, b)), m.Intersection(m.Complement(a), m.Complement(b)))

		// counting
		sum := new(big.Int).Add(m.Count(a), m.Count(b))
		cu := m.Count(m.Union(a, b))
		require.LessOrEqual(t, cu.Cmp(sum), 0)
		require.Equal(t, m.Intersection(a, b) == Empty, cu.Cmp(sum) == 0)

		// comparison with explicit sets
		ea, eb := explicit(t, m, a), explicit(t, m, b)
		eu := tupleset{}
		for _, v := range ea {
			eu.add(v)
		}
		for _, v := range eb {
			eu.add(v)
		}
		require.Equal(t, eu, explicit(t, m, m.Union(a, b)))
		require.False(t, m.Errored())
	})
}

func TestWrongOperands(t *testing.T) {
	m := newMDD(t, power(meet(), 2))
	require.Equal(t, Invalid, m.Union(Node(42), Full))
	require.True(t, m.Errored())
	require.ErrorIs(t, m.Err(), ErrNode)
	// the first error is kept
	require.Equal(t, Invalid, m.Complement(Invalid))
	require.ErrorIs(t, m.Err(), ErrNode)
	require.Contains(t, m.Error(), "42")
	m.ClearError()
	require.False(t, m.Errored())
	require.Equal(t, "", m.Error())
	require.Equal(t, Invalid, m.Intersection(Full, Invalid))
	require.Equal(t, Invalid, m.Level(1).Union(Node(7), Empty))
	require.ErrorIs(t, m.Err(), ErrNode)
}
