// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"fmt"

	"github.com/pkg/errors"
)

// Operation is a total function over the universe [0..size) of an algebra.
type Operation interface {
	// Arity returns the number of arguments of the operation.
	Arity() int

	// Value returns the result of the operation. The length of args is equal
	// to Arity and all values are in the universe of the algebra. The slice
	// should not be retained.
	Value(args []int) int
}

// Algebra is a finite algebra with universe [0..Size). All the factors of an
// MDD must have the same signature: the same number of operations, and
// operations with the same index must have the same arity.
type Algebra interface {
	// Size returns the number of elements of the algebra.
	Size() int

	// Operations returns the list of basic operations of the algebra.
	Operations() []Operation
}

// ************************************************************

type opfunc struct {
	arity int
	f     func(args []int) int
}

func (o opfunc) Arity() int           { return o.arity }
func (o opfunc) Value(args []int) int { return o.f(args) }

// NewOperation returns an operation of the given arity computed by f.
func NewOperation(arity int, f func(args []int) int) Operation {
	return opfunc{arity: arity, f: f}
}

type optable struct {
	arity int
	size  int
	table []int
}

func (o *optable) Arity() int { return o.arity }

func (o *optable) Value(args []int) int {
	k := 0
	for _, a := range args {
		k = k*o.size + a
	}
	return o.table[k]
}

// NewTableOperation returns an operation defined by its table of values. The
// value of (a_0, ..., a_{r-1}) is stored at index a_0*size^{r-1} + ... +
// a_{r-1}, so the table must have exactly size^arity entries.
func NewTableOperation(arity, size int, table []int) (Operation, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrSize, "table operation over %d elements", size)
	}
	if arity < 0 {
		return nil, errors.Wrapf(ErrArity, "table operation with arity %d", arity)
	}
	expected := 1
	for i := 0; i < arity; i++ {
		expected *= size
	}
	if len(table) != expected {
		return nil, errors.Wrapf(ErrOperation, "table with %d entries, expected %d", len(table), expected)
	}
	for k, v := range table {
		if v < 0 || v >= size {
			return nil, errors.Wrapf(ErrOperation, "value %d at index %d outside [0..%d)", v, k, size)
		}
	}
	return &optable{arity: arity, size: size, table: table}, nil
}

type algebra struct {
	size int
	ops  []Operation
}

func (a *algebra) Size() int               { return a.size }
func (a *algebra) Operations() []Operation { return a.ops }
func (a *algebra) String() string {
	return fmt.Sprintf("algebra(size: %d, operations: %d)", a.size, len(a.ops))
}

// NewAlgebra returns an algebra with universe [0..size) and the given
// operations.
func NewAlgebra(size int, ops ...Operation) Algebra {
	return &algebra{size: size, ops: ops}
}

// checkAlgebra verifies the metadata of factor a. When next is not nil, it
// also checks that a and next have the same signature.
func checkAlgebra(index int, a Algebra, next Algebra) error {
	if a == nil {
		return errors.Wrapf(ErrSize, "factor %d is nil", index)
	}
	if a.Size() <= 0 {
		return errors.Wrapf(ErrSize, "factor %d has size %d", index, a.Size())
	}
	ops := a.Operations()
	for k, op := range ops {
		if op == nil || op.Arity() < 0 {
			return errors.Wrapf(ErrOperation, "operation %d of factor %d", k, index)
		}
	}
	if next == nil {
		return nil
	}
	nops := next.Operations()
	if len(ops) != len(nops) {
		return errors.Wrapf(ErrSignature, "factor %d has %d operations, factor %d has %d", index, len(ops), index+1, len(nops))
	}
	for k := range ops {
		if ops[k].Arity() != nops[k].Arity() {
			return errors.Wrapf(ErrSignature, "operation %d has arity %d in factor %d and %d in factor %d",
				k, ops[k].Arity(), index, nops[k].Arity(), index+1)
		}
	}
	return nil
}
