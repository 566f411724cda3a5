// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// meet returns the two-element lattice {0,1} with the binary operation AND.
func meet() Algebra {
	return NewAlgebra(2, NewOperation(2, func(args []int) int { return args[0] & args[1] }))
}

// cyclic returns the group Z_n with addition, negation and the constant zero.
func cyclic(n int) Algebra {
	return NewAlgebra(n,
		NewOperation(2, func(args []int) int { return (args[0] + args[1]) % n }),
		NewOperation(1, func(args []int) int { return (n - args[0]) % n }),
		NewOperation(0, func(args []int) int { return 0 }),
	)
}

func power(a Algebra, k int) []Algebra {
	res := make([]Algebra, k)
	for i := range res {
		res[i] = a
	}
	return res
}

func newMDD(t testing.TB, factors []Algebra, options ...func(*configs)) *MDD {
	m, err := New(factors, options...)
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m
}

// tupleset is an explicit representation of a set of tuples, used as a
// reference for checking results.
type tupleset map[string][]int

func key(tuple []int) string {
	return fmt.Sprint(tuple)
}

func (s tupleset) add(tuple []int) bool {
	k := key(tuple)
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = append([]int(nil), tuple...)
	return true
}

func (s tupleset) sorted() [][]int {
	res := make([][]int, 0, len(s))
	for _, v := range s {
		res = append(res, v)
	}
	sort.Slice(res, func(i, j int) bool {
		for k := range res[i] {
			if res[i][k] != res[j][k] {
				return res[i][k] < res[j][k]
			}
		}
		return false
	})
	return res
}

// explicit returns the set of tuples denoted by n.
func explicit(t require.TestingT, m *MDD, n Node) tupleset {
	res := tupleset{}
	require.NoError(t, m.Alltuples(n, func(tuple []int) error {
		res.add(tuple)
		return nil
	}))
	return res
}

// fromSet builds the node for a list of tuples as a union of spikes.
func fromSet(m *MDD, tuples [][]int) Node {
	res := Empty
	for _, tuple := range tuples {
		res = m.Union(res, m.Spike(tuple...))
	}
	return res
}

// image computes, by brute force, the pointwise image of the sets args under
// the op'th operation of the factors.
func image(factors []Algebra, op int, args []tupleset) tupleset {
	res := tupleset{}
	lists := make([][][]int, len(args))
	for k, a := range args {
		lists[k] = a.sorted()
		if len(lists[k]) == 0 {
			return res
		}
	}
	idx := make([]int, len(args))
	xs := make([]int, len(args))
	for {
		tuple := make([]int, len(factors))
		for i, f := range factors {
			for t := range args {
				xs[t] = lists[t][idx[t]][i]
			}
			tuple[i] = f.Operations()[op].Value(xs)
		}
		res.add(tuple)
		t := len(idx) - 1
		for ; t >= 0; t-- {
			idx[t]++
			if idx[t] < len(lists[t]) {
				break
			}
			idx[t] = 0
		}
		if t < 0 {
			return res
		}
	}
}

// bruteClosure computes the closure of s under all the operations of the
// factors by saturation.
func bruteClosure(factors []Algebra, s tupleset) tupleset {
	res := tupleset{}
	for _, v := range s {
		res.add(v)
	}
	nops := len(factors[0].Operations())
	for changed := true; changed; {
		changed = false
		for op := 0; op < nops; op++ {
			arity := factors[0].Operations()[op].Arity()
			args := make([]tupleset, arity)
			for k := range args {
				args[k] = res
			}
			for _, v := range image(factors, op, args) {
				if res.add(v) {
					changed = true
				}
			}
		}
	}
	return res
}

// drawFactors generates a list of factors with the same random signature.
func drawFactors(t *rapid.T) []Algebra {
	nfactors := rapid.IntRange(1, 3).Draw(t, "factors")
	arities := rapid.SliceOfN(rapid.IntRange(0, 2), 0, 2).Draw(t, "arities")
	res := make([]Algebra, nfactors)
	for i := range res {
		size := rapid.IntRange(1, 3).Draw(t, fmt.Sprintf("size%d", i))
		ops := make([]Operation, len(arities))
		for k, r := range arities {
			entries := 1
			for j := 0; j < r; j++ {
				entries *= size
			}
			table := rapid.SliceOfN(rapid.IntRange(0, size-1), entries, entries).Draw(t, fmt.Sprintf("table%d_%d", i, k))
			op, err := NewTableOperation(r, size, table)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			ops[k] = op
		}
		res[i] = NewAlgebra(size, ops...)
	}
	return res
}

// drawTuples generates a list of tuples fitting in the product of factors.
func drawTuples(t *rapid.T, factors []Algebra, label string) [][]int {
	n := rapid.IntRange(0, 4).Draw(t, label+"-count")
	res := make([][]int, n)
	for k := range res {
		res[k] = make([]int, len(factors))
		for i, f := range factors {
			res[k][i] = rapid.IntRange(0, f.Size()-1).Draw(t, fmt.Sprintf("%s-%d-%d", label, k, i))
		}
	}
	return res
}
