// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"math/big"

	"github.com/pkg/errors"
)

// tupleIter enumerates, in lexicographic order, the tuples of branches
// (j_0, ..., j_{r-1}) such that child j_t of node args[t] is not empty, for
// every t. Empty branches are skipped independently on each coordinate, which
// avoids visiting the size^r combinations when arguments are sparse. Usage:
//
//	var it tupleIter
//	it.Start(level, args)
//	for it.Next() {
//	  use(it.Tuple())
//	}
//
// The same iterator can be started again; the slice returned by Tuple is
// overwritten by each call to Next.
type tupleIter struct {
	rows    [][]Node // children of each argument
	tuple   []int    // current tuple
	started bool
	done    bool
}

// Start prepares the enumeration of the non-empty branches of args, which are
// nodes of level l (that should not be the terminal level).
func (it *tupleIter) Start(l *Level, args []Node) {
	it.rows = it.rows[:0]
	for _, a := range args {
		it.rows = append(it.rows, l.children(a))
	}
	if cap(it.tuple) < len(args) {
		it.tuple = make([]int, len(args))
	}
	it.tuple = it.tuple[:len(args)]
	it.started = false
	it.done = false
}

// first returns the first non-empty branch of row t starting from index from,
// or -1 if there are none.
func (it *tupleIter) first(t, from int) int {
	row := it.rows[t]
	for j := from; j < len(row); j++ {
		if row[j] != Empty {
			return j
		}
	}
	return -1
}

// Next moves to the next tuple and returns false when there are none left.
func (it *tupleIter) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		for t := range it.rows {
			j := it.first(t, 0)
			if j < 0 {
				it.done = true
				return false
			}
			it.tuple[t] = j
		}
		return true
	}
	// we advance the odometer, starting with the last coordinate
	for t := len(it.rows) - 1; t >= 0; t-- {
		j := it.first(t, it.tuple[t]+1)
		if j < 0 {
			continue
		}
		it.tuple[t] = j
		for u := t + 1; u < len(it.rows); u++ {
			// rows that were not empty at the start are never empty
			it.tuple[u] = it.first(u, 0)
		}
		return true
	}
	it.done = true
	return false
}

// Tuple returns the current tuple of branches.
func (it *tupleIter) Tuple() []int {
	return it.tuple
}

// ************************************************************

// Alltuples iterates, in lexicographic order, through all the tuples in the
// set denoted by n and calls the function f on each of them. The slice passed
// to f is reused between calls and should be copied if retained. We stop and
// return an error if f returns an error at some point.
func (l *Level) Alltuples(n Node, f func([]int) error) error {
	if !l.checkptr(n) {
		l.m.seterror(ErrNode, "node %d in call to Alltuples at %s", n, l)
		return l.m.error
	}
	tuple := make([]int, 0, len(l.m.levels)-l.index)
	return l.alltuples(n, tuple, f)
}

func (l *Level) alltuples(n Node, prefix []int, f func([]int) error) error {
	if n == Empty {
		return nil
	}
	if l.Terminal() {
		return f(prefix)
	}
	for v, c := range l.children(n) {
		if c == Empty {
			continue
		}
		if err := l.next.alltuples(c, append(prefix, v), f); err != nil {
			return err
		}
	}
	return nil
}

// Member returns true if tuple belongs to the set denoted by n.
func (l *Level) Member(n Node, tuple []int) bool {
	if !l.checkptr(n) {
		l.m.seterror(ErrNode, "node %d in call to Member at %s", n, l)
		return false
	}
	if err := l.checkcoords(tuple); err != nil {
		l.m.seterror(err, "in call to Member at %s", l)
		return false
	}
	for cur := l; !cur.Terminal(); cur = cur.next {
		n = cur.child(n, tuple[cur.index-l.index])
	}
	return n == Full
}

// Tuple returns the tuple at position index in the lexicographic enumeration
// of the set denoted by n, where index is in the interval [0..Count(n)).
func (l *Level) Tuple(n Node, index *big.Int) ([]int, error) {
	if !l.checkptr(n) {
		return nil, errors.Wrapf(ErrNode, "node %d in call to Tuple at %s", n, l)
	}
	if index == nil || index.Sign() < 0 || index.Cmp(l.count(n)) >= 0 {
		return nil, errors.Wrapf(ErrIndex, "index %v for a set with %v tuples", index, l.count(n))
	}
	res := make([]int, 0, len(l.m.levels)-l.index-1)
	rem := new(big.Int).Set(index)
	for cur := l; !cur.Terminal(); cur = cur.next {
		for v, c := range cur.children(n) {
			cc := cur.next.count(c)
			if rem.Cmp(cc) < 0 {
				res = append(res, v)
				n = c
				break
			}
			rem.Sub(rem, cc)
		}
	}
	return res, nil
}

// tupleIndex is the inverse of Tuple. It returns the position of tuple in the
// lexicographic enumeration of the set denoted by n, and false if the tuple
// is not in the set.
func (l *Level) tupleIndex(n Node, tuple []int) (*big.Int, bool) {
	if !l.checkptr(n) {
		l.m.seterror(ErrNode, "node %d in call to Index at %s", n, l)
		return nil, false
	}
	if err := l.checkcoords(tuple); err != nil {
		l.m.seterror(err, "in call to Index at %s", l)
		return nil, false
	}
	res := new(big.Int)
	for cur := l; !cur.Terminal(); cur = cur.next {
		v := tuple[cur.index-l.index]
		kids := cur.children(n)
		for _, c := range kids[:v] {
			res.Add(res, cur.next.count(c))
		}
		n = kids[v]
	}
	if n != Full {
		return nil, false
	}
	return res, true
}

// checkcoords verifies that tuple is a valid tuple for the levels below l.
func (l *Level) checkcoords(tuple []int) error {
	if len(tuple) != len(l.m.levels)-l.index-1 {
		return errors.Wrapf(ErrCoords, "tuple of length %d, expected %d", len(tuple), len(l.m.levels)-l.index-1)
	}
	for cur := l; !cur.Terminal(); cur = cur.next {
		v := tuple[cur.index-l.index]
		if v < 0 || v >= cur.size {
			return errors.Wrapf(ErrCoords, "value %d at coordinate %d outside [0..%d)", v, cur.index, cur.size)
		}
	}
	return nil
}

// Allnodes calls f on every node reachable from one of the nodes in n (or on
// all the nodes of the level and the levels below if n is absent), together
// with the index of its level and its children. Each node is visited once,
// and always after its children. Nodes of the terminal level have no
// children.
func (l *Level) Allnodes(f func(level int, id Node, children []Node) error, n ...Node) error {
	for _, v := range n {
		if !l.checkptr(v) {
			l.m.seterror(ErrNode, "node %d in call to Allnodes at %s", v, l)
			return l.m.error
		}
	}
	if len(n) == 0 {
		// we start from the terminal level so that children come first
		for i := len(l.m.levels) - 1; i >= l.index; i-- {
			cur := l.m.levels[i]
			for k := range cur.nodes {
				id := Node(k)
				if err := f(cur.index, id, cur.childrenOrNil(id)); err != nil {
					return err
				}
			}
		}
		return nil
	}
	seen := make([]map[Node]bool, len(l.m.levels))
	for k := range seen {
		seen[k] = make(map[Node]bool)
	}
	for _, v := range n {
		if err := l.allnodes(v, seen, f); err != nil {
			return err
		}
	}
	return nil
}

func (l *Level) allnodes(n Node, seen []map[Node]bool, f func(int, Node, []Node) error) error {
	if seen[l.index][n] {
		return nil
	}
	seen[l.index][n] = true
	if !l.Terminal() {
		for _, c := range l.children(n) {
			if err := l.next.allnodes(c, seen, f); err != nil {
				return err
			}
		}
	}
	return f(l.index, n, l.childrenOrNil(n))
}

func (l *Level) childrenOrNil(n Node) []Node {
	if l.Terminal() {
		return nil
	}
	return l.children(n)
}
