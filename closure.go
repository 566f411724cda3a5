// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

// Spike returns the node for the singleton set {coords}. There must be exactly
// one coordinate per factor, each one in the universe of its factor.
func (m *MDD) Spike(coords ...int) Node {
	if err := m.levels[0].checkcoords(coords); err != nil {
		return m.seterror(err, "in call to Spike(%v)", coords)
	}
	// we build the result bottom-up, starting from the terminal level
	res := Full
	for i := len(coords) - 1; i >= 0; i-- {
		l := m.levels[i]
		buf := l.getbuf()
		buf[coords[i]] = res
		res = l.canonicalize(buf)
		l.putbuf(buf)
	}
	return res
}

// Closure returns the smallest set containing n and closed under all the
// operations of the factors, that is the subalgebra of the product generated
// by the tuples in n.
//
// We apply each operation in turn, replacing n with the union of n and its
// image by the operation, and stop after a full round of operations without
// any change. The computation always terminates since the product universe is
// finite, but it can be very long if the generated set does not have a
// compact representation. There is no bound on the number of iterations.
func (m *MDD) Closure(n Node) (res Node) {
	l := m.levels[0]
	if !l.checkptr(n) {
		return m.seterror(ErrNode, "wrong operand (%d) in call to Closure", n)
	}
	defer m.recoverOperation(&res)
	nops := len(m.signature)
	args := make([][]Node, nops)
	idle := 0
	applied := 0
	for op := 0; idle < nops; op = (op + 1) % nops {
		if args[op] == nil {
			args[op] = make([]Node, m.signature[op])
		}
		for t := range args[op] {
			args[op][t] = n
		}
		next := l.union(n, l.apply(op, args[op]))
		applied++
		if next == n {
			idle++
		} else {
			idle = 0
			n = next
		}
		if op == nops-1 && m.logger.Debug().Enabled() {
			m.logger.Debug().
				Int("applied", applied).
				Int("idle", idle).
				Str("count", l.count(n).String()).
				Int("nodes", m.Nodes()).
				Msg("closure round")
		}
	}
	return n
}

// Generate returns the closure of the set of tuples given as arguments. Each
// tuple must have one coordinate per factor.
func (m *MDD) Generate(tuples ...[]int) Node {
	res := Empty
	for _, t := range tuples {
		s := m.Spike(t...)
		if s == Invalid {
			return s
		}
		res = m.levels[0].union(res, s)
	}
	return m.Closure(res)
}

// Nodes returns the total number of nodes in the unique tables of m.
func (m *MDD) Nodes() int {
	res := 0
	for _, l := range m.levels {
		res += len(l.nodes)
	}
	return res
}
