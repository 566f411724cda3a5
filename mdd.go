// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// MDD is a multi-valued decision diagram for subsets of the product of a list
// of finite algebras (the factors). It is made of one level for each factor,
// plus a terminal level. Nodes are shared: two nodes denoting the same set
// are always equal, at every level, so set equality can be tested with ==.
//
// An MDD is not safe for concurrent use.
type MDD struct {
	levels    []*Level       // Levels of the MDD, the last one is terminal
	signature []int          // Arity of each operation, shared by all the factors
	logger    zerolog.Logger // Logger for debug information
	error                    // Error status to help chain operations
}

// New returns an MDD for subsets of the product of factors, in this order:
// the first factor gives the first coordinate of tuples. All factors must have
// the same signature. Options are used to configure the size of tables and
// caches, see for instance Nodesize, Cachesize or EvictingCache.
func New(factors []Algebra, options ...func(*configs)) (*MDD, error) {
	if len(factors) == 0 {
		return nil, ErrNoFactor
	}
	c := makeconfigs()
	for _, f := range options {
		f(c)
	}
	m := &MDD{logger: c.logger}
	m.levels = make([]*Level, len(factors)+1)
	m.levels[len(factors)] = newterminal(m, len(factors))
	// we build levels bottom-up, so that each level can refer to the next
	for i := len(factors) - 1; i >= 0; i-- {
		var next Algebra
		if i < len(factors)-1 {
			next = factors[i+1]
		}
		if err := checkAlgebra(i, factors[i], next); err != nil {
			m.Close()
			return nil, err
		}
		l, err := newlevel(m, i, factors[i], m.levels[i+1], c)
		if err != nil {
			m.Close()
			return nil, errors.Wrapf(err, "building level %d", i)
		}
		m.levels[i] = l
	}
	for _, op := range factors[0].Operations() {
		m.signature = append(m.signature, op.Arity())
	}
	m.logger.Debug().
		Int("factors", len(factors)).
		Ints("signature", m.signature).
		Object("cache", &c.cache).
		Msg("new mdd")
	return m, nil
}

// Close releases the resources used by the operation caches. Nodes are still
// valid after a call to Close, and operations still work, but their results
// are no longer (or barely) memoized.
func (m *MDD) Close() {
	for _, l := range m.levels {
		if l != nil {
			l.closecaches()
		}
	}
}

// Factors returns the number of factors in m.
func (m *MDD) Factors() int {
	return len(m.levels) - 1
}

// Level returns the i'th level of m, where i is in [0..Factors()]. Level
// Factors() is the terminal level.
func (m *MDD) Level(i int) *Level {
	if i < 0 || i >= len(m.levels) {
		m.seterror(ErrIndex, "unknown level %d", i)
		return nil
	}
	return m.levels[i]
}

// Operations returns the number of operations of the factors.
func (m *MDD) Operations() int {
	return len(m.signature)
}

// Arity returns the arity of the op'th operation, or -1 if there is no such
// operation.
func (m *MDD) Arity(op int) int {
	if op < 0 || op >= len(m.signature) {
		return -1
	}
	return m.signature[op]
}

// Empty returns the node for the empty set.
func (m *MDD) Empty() Node {
	return Empty
}

// Full returns the node for the set of all tuples in the product universe.
func (m *MDD) Full() Node {
	return Full
}

// Count returns the number of tuples in the set denoted by n. We return a
// result using arbitrary-precision arithmetic since the size of the product
// universe overflows quickly. The result should not be modified.
func (m *MDD) Count(n Node) *big.Int {
	return m.levels[0].Count(n)
}

// Children returns a copy of the children of n at the top level. Child v is
// the set of tuples (x_1, ..., x_{k-1}) such that (v, x_1, ..., x_{k-1}) is in
// the set denoted by n.
func (m *MDD) Children(n Node) []Node {
	return m.levels[0].Children(n)
}

// Complement returns the node for the set of tuples that are not in n.
func (m *MDD) Complement(n Node) Node {
	return m.levels[0].Complement(n)
}

// Apply returns the pointwise image of the sets args under the op'th
// operation. See Level.Apply.
func (m *MDD) Apply(op int, args ...Node) Node {
	return m.levels[0].Apply(op, args...)
}

// Alltuples iterates through all the tuples in n. See Level.Alltuples.
func (m *MDD) Alltuples(n Node, f func([]int) error) error {
	return m.levels[0].Alltuples(n, f)
}

// Member returns true if tuple is in the set denoted by n.
func (m *MDD) Member(n Node, tuple ...int) bool {
	return m.levels[0].Member(n, tuple)
}

// Tuple returns the tuple of n at the given position. See Level.Tuple.
func (m *MDD) Tuple(n Node, index *big.Int) ([]int, error) {
	return m.levels[0].Tuple(n, index)
}

// Index returns the position of tuple in n. See Level.tupleIndex.
func (m *MDD) Index(n Node, tuple ...int) (*big.Int, bool) {
	return m.levels[0].tupleIndex(n, tuple)
}

// Allnodes calls f on all the nodes reachable from n. See Level.Allnodes.
func (m *MDD) Allnodes(f func(level int, id Node, children []Node) error, n ...Node) error {
	return m.levels[0].Allnodes(f, n...)
}
