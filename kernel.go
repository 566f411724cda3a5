// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import "github.com/pkg/errors"

// _DEFAULTNODESIZE is the default initial capacity (in number of nodes) of
// the unique table of each level.
const _DEFAULTNODESIZE int = 1 << 10

// _DEFAULTCACHESIZE is the default number of entries in each direct-mapped
// operation cache.
const _DEFAULTCACHESIZE int = 10000

// Errors reported by the library. Use errors.Is to test for them, since they
// are usually wrapped with more context.
var (
	// ErrNoFactor is returned when building an MDD without factor.
	ErrNoFactor = errors.New("empty list of factors")
	// ErrSize is returned for algebras with a non-positive size.
	ErrSize = errors.New("algebra size should be positive")
	// ErrSignature is returned when the operations of a factor do not match
	// (in number or arity) the ones of the following factor.
	ErrSignature = errors.New("mismatched signature between factors")
	// ErrArity is returned when an operation receives the wrong number of
	// arguments.
	ErrArity = errors.New("wrong number of arguments")
	// ErrOperation is returned for an unknown operation, or an operation
	// returning a value outside the universe of its algebra.
	ErrOperation = errors.New("invalid operation")
	// ErrNode is returned when a node does not belong to the level it is used
	// with.
	ErrNode = errors.New("invalid node")
	// ErrCoords is returned for tuples that do not fit in the product
	// universe.
	ErrCoords = errors.New("invalid coordinates")
	// ErrIndex is returned when decoding an index outside of [0, count).
	ErrIndex = errors.New("index out of range")
	// ErrMemory is raised (with a panic) when a unique table exceeds the
	// number of nodes that can be addressed.
	ErrMemory = errors.New("unable to allocate more nodes")
)
