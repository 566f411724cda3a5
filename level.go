// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/cespare/xxhash/v2"

	"github.com/dalzilio/mdd/internal/cache"
)

// Level is one layer of an MDD. It wraps one factor algebra (except for the
// terminal level) and owns the unique table of its nodes, together with the
// caches used by the set operations and the lifted operations. The children
// of a node at level i are nodes of level i+1.
type Level struct {
	m       *MDD
	index   int
	algebra Algebra // nil for the terminal level
	next    *Level  // nil for the terminal level
	table
	unioncache cache.Cache[[2]Node, Node] // Cache for union results
	intercache cache.Cache[[2]Node, Node] // Cache for intersection results
	complcache cache.Cache[Node, Node]    // Cache for complement results
	ops        []*lifted                  // Lifted operations, one for each operation of the factor
}

// lifted is the extension of an operation of a factor to sets of tuples.
type lifted struct {
	op    Operation
	arity int
	cache cache.Cache[string, Node] // Cache for results, keyed by the tuple of arguments
	kbuff []byte                    // Used to build cache keys
}

func pairhash(k [2]Node) uint64 {
	return _PAIR(uint64(k[0]), uint64(k[1]))
}

func nodehash(n Node) uint64 {
	return uint64(n)
}

// _PAIR is a mapping function that maps (bijectively) a pair of integer (a, b)
// into a unique integer.
func _PAIR(a, b uint64) uint64 {
	return ((a+b)*(a+b+1))/2 + a
}

func newterminal(m *MDD, index int) *Level {
	l := &Level{m: m, index: index}
	l.initterminal()
	return l
}

// newlevel builds the level for factor a on top of next. The signature of a
// must have been checked before.
func newlevel(m *MDD, index int, a Algebra, next *Level, c *configs) (*Level, error) {
	l := &Level{m: m, index: index, algebra: a, next: next}
	l.init(a.Size(), c.nodesize)
	// The first two nodes are the empty and full sets. Their children are all
	// Empty (resp. Full) at the next level.
	buf := l.getbuf()
	l.canonicalize(buf)
	for k := range buf {
		buf[k] = Full
	}
	l.canonicalize(buf)
	l.putbuf(buf)

	var err error
	if l.unioncache, err = cache.New[[2]Node, Node](&c.cache, pairhash); err != nil {
		return nil, err
	}
	if l.intercache, err = cache.New[[2]Node, Node](&c.cache, pairhash); err != nil {
		return nil, err
	}
	if l.complcache, err = cache.New[Node, Node](&c.cache, nodehash); err != nil {
		return nil, err
	}
	for _, op := range a.Operations() {
		f := &lifted{op: op, arity: op.Arity()}
		if f.cache, err = cache.New[string, Node](&c.cache, xxhash.Sum64String); err != nil {
			return nil, err
		}
		l.ops = append(l.ops, f)
	}
	return l, nil
}

func (l *Level) String() string {
	if l.Terminal() {
		return fmt.Sprintf("level %d (terminal)", l.index)
	}
	return fmt.Sprintf("level %d (size: %d, nodes: %d)", l.index, l.size, len(l.nodes))
}

// Index returns the position of the level in its MDD, starting from 0.
func (l *Level) Index() int {
	return l.index
}

// Size returns the size of the factor algebra, which is also the number of
// children of each node. The terminal level has size 0.
func (l *Level) Size() int {
	return l.size
}

// Terminal returns true for the last level of an MDD, whose only nodes are
// Empty and Full.
func (l *Level) Terminal() bool {
	return l.next == nil
}

// Next returns the level of the children, or nil for the terminal level.
func (l *Level) Next() *Level {
	return l.next
}

// Algebra returns the factor wrapped by l, or nil for the terminal level.
func (l *Level) Algebra() Algebra {
	return l.algebra
}

// Empty returns the node for the empty set at level l.
func (l *Level) Empty() Node {
	return Empty
}

// Full returns the node for the set of all tuples at level l.
func (l *Level) Full() Node {
	return Full
}

// Nodes returns the number of nodes in the unique table of l.
func (l *Level) Nodes() int {
	return len(l.nodes)
}

// Operators returns the number of lifted operations at level l.
func (l *Level) Operators() int {
	return len(l.ops)
}

// canonicalize returns the unique node with the given children, creating it
// if needed. The slice is copied on creation and can be reused by the caller.
func (l *Level) canonicalize(children []Node) Node {
	res, h, ok := l.lookup(children)
	if ok {
		return res
	}
	count := new(big.Int)
	for _, c := range children {
		count.Add(count, l.next.count(c))
	}
	return l.insert(children, h, count)
}

func (l *Level) child(n Node, v int) Node {
	return l.kids[l.nodes[n].off+v]
}

// checkptr verifies that n is a node of l.
func (l *Level) checkptr(n Node) bool {
	return l.valid(n)
}

// Canonicalize returns the unique node at level l whose children are given by
// children. Every child must be a node of the next level and the length of
// children must be equal to the size of l. The slice is not retained.
func (l *Level) Canonicalize(children []Node) Node {
	if l.Terminal() {
		return l.m.seterror(ErrArity, "canonicalize at terminal %s", l)
	}
	if len(children) != l.size {
		return l.m.seterror(ErrArity, "canonicalize with %d children at %s", len(children), l)
	}
	for k, c := range children {
		if !l.next.checkptr(c) {
			return l.m.seterror(ErrNode, "child %d (%d) at %s", k, c, l)
		}
	}
	return l.canonicalize(children)
}

// Children returns a copy of the children of node n.
func (l *Level) Children(n Node) []Node {
	if !l.checkptr(n) {
		l.m.seterror(ErrNode, "node %d in call to Children at %s", n, l)
		return nil
	}
	if l.Terminal() {
		return []Node{}
	}
	return append([]Node(nil), l.children(n)...)
}

// Child returns the child of n for branch v.
func (l *Level) Child(n Node, v int) Node {
	if !l.checkptr(n) {
		return l.m.seterror(ErrNode, "node %d in call to Child at %s", n, l)
	}
	if v < 0 || v >= l.size {
		return l.m.seterror(ErrCoords, "branch %d in call to Child at %s", v, l)
	}
	return l.child(n, v)
}

// Count returns the number of tuples in the set denoted by n. The result
// should not be modified. We return nil if n is not a node of l.
func (l *Level) Count(n Node) *big.Int {
	if !l.checkptr(n) {
		l.m.seterror(ErrNode, "node %d in call to Count at %s", n, l)
		return nil
	}
	return l.count(n)
}

// key returns a cache key made of the identifiers of args.
func (f *lifted) key(args []Node) string {
	f.kbuff = f.kbuff[:0]
	for _, a := range args {
		f.kbuff = binary.LittleEndian.AppendUint32(f.kbuff, uint32(a))
	}
	return string(f.kbuff)
}

func (l *Level) closecaches() {
	if l.Terminal() {
		return
	}
	l.unioncache.Close()
	l.intercache.Close()
	l.complcache.Close()
	for _, f := range l.ops {
		f.cache.Close()
	}
}
