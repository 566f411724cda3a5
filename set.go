// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

// Union returns the node for the union of a sequence of sets. The union of an
// empty sequence is Empty.
func (m *MDD) Union(n ...Node) Node {
	if len(n) == 0 {
		return Empty
	}
	if len(n) == 1 {
		if !m.levels[0].checkptr(n[0]) {
			return m.seterror(ErrNode, "wrong operand (%d) in call to Union", n[0])
		}
		return n[0]
	}
	return m.levels[0].Union(n[0], m.Union(n[1:]...))
}

// Intersection returns the node for the intersection of a sequence of sets. The
// intersection of an empty sequence is Full.
func (m *MDD) Intersection(n ...Node) Node {
	if len(n) == 0 {
		return Full
	}
	if len(n) == 1 {
		if !m.levels[0].checkptr(n[0]) {
			return m.seterror(ErrNode, "wrong operand (%d) in call to Intersection", n[0])
		}
		return n[0]
	}
	return m.levels[0].Intersection(n[0], m.Intersection(n[1:]...))
}

// Difference returns the node for the set of tuples in a that are not in b.
func (m *MDD) Difference(a, b Node) Node {
	return m.levels[0].Intersection(a, m.levels[0].Complement(b))
}

// Subset returns true if the set denoted by a is included in the one denoted
// by b.
func (m *MDD) Subset(a, b Node) bool {
	res := m.levels[0].Union(a, b)
	return res != Invalid && res == b
}

// Equal tests equivalence between nodes. Since nodes are canonical, this is the
// same as testing a == b, for valid nodes.
func (m *MDD) Equal(a, b Node) bool {
	return a == b && m.levels[0].checkptr(a)
}
