// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

// Union returns the node for the union of the sets denoted by a and b at level
// l.
func (l *Level) Union(a, b Node) Node {
	if !l.checkptr(a) || !l.checkptr(b) {
		return l.m.seterror(ErrNode, "wrong operand in call to Union(%d, %d) at %s", a, b, l)
	}
	return l.union(a, b)
}

// Intersection returns the node for the intersection of the sets denoted by a
// and b at level l.
func (l *Level) Intersection(a, b Node) Node {
	if !l.checkptr(a) || !l.checkptr(b) {
		return l.m.seterror(ErrNode, "wrong operand in call to Intersection(%d, %d) at %s", a, b, l)
	}
	return l.intersection(a, b)
}

// Complement returns the node for the complement of the set denoted by a, with
// respect to the set of all tuples at level l.
func (l *Level) Complement(a Node) Node {
	if !l.checkptr(a) {
		return l.m.seterror(ErrNode, "wrong operand in call to Complement(%d) at %s", a, l)
	}
	return l.complement(a)
}

func (l *Level) union(a, b Node) Node {
	if a == Empty || a == b {
		return b
	}
	if b == Empty {
		return a
	}
	if a == Full || b == Full {
		return Full
	}
	// The terminal level has only two nodes, so we never get here with
	// l.next == nil.
	if a > b {
		a, b = b, a
	}
	key := [2]Node{a, b}
	if res, ok := l.unioncache.Get(key); ok {
		return res
	}
	buf := l.getbuf()
	ca, cb := l.children(a), l.children(b)
	for k := range buf {
		buf[k] = l.next.union(ca[k], cb[k])
	}
	res := l.canonicalize(buf)
	l.putbuf(buf)
	l.unioncache.Set(key, res)
	return res
}

func (l *Level) intersection(a, b Node) Node {
	if a == Full || a == b {
		return b
	}
	if b == Full {
		return a
	}
	if a == Empty || b == Empty {
		return Empty
	}
	if a > b {
		a, b = b, a
	}
	key := [2]Node{a, b}
	if res, ok := l.intercache.Get(key); ok {
		return res
	}
	buf := l.getbuf()
	ca, cb := l.children(a), l.children(b)
	for k := range buf {
		buf[k] = l.next.intersection(ca[k], cb[k])
	}
	res := l.canonicalize(buf)
	l.putbuf(buf)
	l.intercache.Set(key, res)
	return res
}

func (l *Level) complement(a Node) Node {
	if a == Empty {
		return Full
	}
	if a == Full {
		return Empty
	}
	if res, ok := l.complcache.Get(a); ok {
		return res
	}
	buf := l.getbuf()
	ca := l.children(a)
	for k := range buf {
		buf[k] = l.next.complement(ca[k])
	}
	res := l.canonicalize(buf)
	l.putbuf(buf)
	l.complcache.Set(a, res)
	// complement is an involution
	l.complcache.Set(res, a)
	return res
}
