// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"encoding/binary"
	"math/big"
	"slices"

	"github.com/ccoveille/go-safecast/v2"
	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// table is the unicity table of a level. Each node is identified by the
// content of its children array (node identifiers at the next level). We hash
// this content with xxhash, using a buffer that is reused between calls, and
// look for a matching node in the list of nodes sharing the same hash value.
// The unique map gives the head of the list and the next field of each node
// links to the following one. Since children are canonical, comparing two
// candidates only requires to compare their children identifiers.
type table struct {
	size    int             // Number of children of each node (the size of the factor)
	nodes   []node          // List of all the nodes. Empty and Full are always at index 0 and 1
	kids    []Node          // Arena for the children of all the nodes
	unique  map[uint64]Node // Unicity table, maps a hash value to the first node in its bucket
	hbuff   []byte          // Used to compute the hash of children arrays
	buffers [][]Node        // Free scratch buffers of length size
	tableStat               // Information about the accesses to the table (only with the debug build tag)
}

// tableStat stores status information about the unique table.
type tableStat struct {
	uniqueAccess int // accesses to the unique node table
	uniqueChain  int // iterations through the collision lists
	uniqueHit    int // entries actually found in the the unique node table
	uniqueMiss   int // entries not found in the the unique node table
}

func (t *table) init(size, nodesize int) {
	t.size = size
	t.nodes = make([]node, 0, nodesize)
	t.kids = make([]Node, 0, nodesize*size)
	t.unique = make(map[uint64]Node, nodesize)
	t.hbuff = make([]byte, 0, 4*size)
}

// initterminal sets up the table of the terminal level, which has no
// children and only two nodes.
func (t *table) initterminal() {
	t.size = 0
	t.nodes = []node{
		Empty: {next: Invalid, count: bigzero},
		Full:  {next: Invalid, count: bigone},
	}
}

func (t *table) kidshash(children []Node) uint64 {
	t.hbuff = t.hbuff[:0]
	for _, c := range children {
		t.hbuff = binary.LittleEndian.AppendUint32(t.hbuff, uint32(c))
	}
	return xxhash.Sum64(t.hbuff)
}

func (t *table) children(n Node) []Node {
	off := t.nodes[n].off
	return t.kids[off : off+t.size : off+t.size]
}

func (t *table) count(n Node) *big.Int {
	return t.nodes[n].count
}

func (t *table) valid(n Node) bool {
	return n >= 0 && int(n) < len(t.nodes)
}

// lookup returns the node with the given children, if any, together with the
// hash value of children.
func (t *table) lookup(children []Node) (Node, uint64, bool) {
	if _DEBUG {
		t.uniqueAccess++
	}
	h := t.kidshash(children)
	res, ok := t.unique[h]
	if !ok {
		if _DEBUG {
			t.uniqueMiss++
		}
		return Invalid, h, false
	}
	for res != Invalid {
		if slices.Equal(t.children(res), children) {
			if _DEBUG {
				t.uniqueHit++
			}
			return res, h, true
		}
		res = t.nodes[res].next
		if _DEBUG {
			t.uniqueChain++
		}
	}
	if _DEBUG {
		t.uniqueMiss++
	}
	return Invalid, h, false
}

// insert adds a new node for children, which are copied in the arena. The
// count is the number of tuples denoted by the node; it is fully determined by
// the children, so it is not part of the key.
func (t *table) insert(children []Node, h uint64, count *big.Int) Node {
	id, err := safecast.Convert[int32](len(t.nodes))
	if err != nil || id == int32(Invalid) {
		panic(errors.Wrapf(ErrMemory, "unique table with %d nodes", len(t.nodes)))
	}
	res := Node(id)
	next := Invalid
	if head, ok := t.unique[h]; ok {
		next = head
	}
	off := len(t.kids)
	t.kids = append(t.kids, children...)
	t.nodes = append(t.nodes, node{off: off, next: next, count: count})
	t.unique[h] = res
	return res
}

// getbuf returns a scratch buffer of length size, filled with Empty.
func (t *table) getbuf() []Node {
	if k := len(t.buffers); k > 0 {
		buf := t.buffers[k-1]
		t.buffers = t.buffers[:k-1]
		clear(buf)
		return buf
	}
	return make([]Node, t.size)
}

// putbuf releases a buffer obtained with getbuf. The buffer can be reused
// immediately, so it should not be referenced after the call.
func (t *table) putbuf(buf []Node) {
	t.buffers = append(t.buffers, buf)
}
