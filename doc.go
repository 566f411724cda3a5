// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package mdd defines a concrete type for Multi-valued Decision Diagrams (MDD),
used to represent subsets of the Cartesian product A_0 × ... × A_{k-1} of a
list of finite algebras, called factors, together with the set operations and
the closure algorithm needed to compute subalgebras of such products
(subpowers) generated by a set of tuples.

# Basics

An MDD is initialized with its list of factors (using the method New). Each
factor is an Algebra, with universe [0..Size) and a list of operations. All
factors must have the same signature. Tuples are represented by a layered
decision diagram with one level per factor plus a terminal level: a node at
level i has one child for each value of A_i, and child v is the set of
suffixes of tuples whose i'th coordinate is v.

Most operations over an MDD return a Node, an integer identifier. We use the
convention that 0 (respectively 1) is the identifier of the empty set
(respectively the set of all tuples) at every level. Nodes are hash-consed:
two nodes standing for the same set are always equal.

# Operations

Union, intersection and complement are computed level by level and memoized,
so that shared subcomputations are done only once. Each operation of the
factors is also lifted into an operation over sets of tuples (Apply), that
computes the pointwise image of its arguments. Finally, Spike builds
singletons and Closure computes the least set containing a given set and
closed under all operations.

# Errors

Invalid arguments, such as nodes that do not belong to a level or tuples of
the wrong length, set an error status in the MDD (see Err and Errored) and
operations return the node Invalid. The first error is kept until a call to
ClearError.

# Caches

Operation results are stored in best-effort caches: a cache miss only means
that a result is computed again. By default we use direct-mapped tables of
fixed size (see Cachesize). Frequency-based, bounded caches can be selected
with EvictingCache.

# Use of build tags

To get access to better statistics about the unique tables, you can compile
your executable with the build tag `debug`.
*/
package mdd
