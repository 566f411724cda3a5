// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import "math/big"

// Node is a reference to a vertex of an MDD. Nodes are only meaningful with
// respect to the level they belong to: the same integer denotes different
// sets at different levels. Nodes returned by the methods of an MDD (and not
// of one of its levels) always belong to the top level, where they represent
// a subset of the whole product universe.
type Node int32

const (
	// Empty is the node for the empty set, at every level.
	Empty Node = 0

	// Full is the node for the set of all tuples, at every level. At the
	// terminal level it stands for the singleton containing the empty tuple.
	Full Node = 1

	// Invalid is returned by operations that fail. Using it as an argument
	// always fails.
	Invalid Node = -1
)

// node stores the information about a vertex in the unique table of a level.
// Children are kept in the arena of the level, starting at offset off.
type node struct {
	off   int      // Offset of the first child in the children arena
	next  Node     // Next node with the same hash value, Invalid if last
	count *big.Int // Number of tuples in the set denoted by the node
}

var (
	bigzero = big.NewInt(0)
	bigone  = big.NewInt(1)
)
