// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"github.com/pkg/errors"
)

// Apply returns the node for the pointwise image of the sets denoted by args
// under the operation with index op. The result is the set of all tuples
// (f(x_0[0], ..., x_{r-1}[0]), f(x_0[1], ...), ...) where each x_t belongs to
// the set args[t] and f is the op-th operation of each factor. The number of
// arguments must be equal to the arity of the operation.
func (l *Level) Apply(op int, args ...Node) (res Node) {
	if op < 0 || op >= len(l.m.signature) {
		return l.m.seterror(ErrOperation, "unknown operation %d in call to Apply at %s", op, l)
	}
	if len(args) != l.m.signature[op] {
		return l.m.seterror(ErrArity, "operation %d has arity %d, called with %d arguments at %s", op, l.m.signature[op], len(args), l)
	}
	for k, a := range args {
		if !l.checkptr(a) {
			return l.m.seterror(ErrNode, "wrong operand %d (%d) in call to Apply at %s", k, a, l)
		}
	}
	defer l.m.recoverOperation(&res)
	return l.apply(op, args)
}

// apply evaluates the lifted operation. We enumerate all the tuples of
// branches (j_0, ..., j_{r-1}) such that no child args[t][j_t] is empty, and
// accumulate the image of the children in the branch f(j_0, ..., j_{r-1}) of
// the result.
func (l *Level) apply(op int, args []Node) Node {
	for _, a := range args {
		if a == Empty {
			return Empty
		}
	}
	if l.Terminal() {
		return Full
	}
	f := l.ops[op]
	key := f.key(args)
	if res, ok := f.cache.Get(key); ok {
		return res
	}
	buf := l.getbuf()
	sub := make([]Node, len(args))
	var it tupleIter
	it.Start(l, args)
	for it.Next() {
		tuple := it.Tuple()
		for t := range args {
			sub[t] = l.child(args[t], tuple[t])
		}
		v := f.op.Value(tuple)
		if v < 0 || v >= l.size {
			panic(operationError{errors.Wrapf(ErrOperation, "operation %d of factor %d returns %d on %v", op, l.index, v, tuple)})
		}
		buf[v] = l.next.union(buf[v], l.next.apply(op, sub))
	}
	res := l.canonicalize(buf)
	l.putbuf(buf)
	f.cache.Set(key, res)
	return res
}
