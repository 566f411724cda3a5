// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"github.com/rs/zerolog"

	"github.com/dalzilio/mdd/internal/cache"
)

// configs is used to store the values of different parameters of the MDD
type configs struct {
	nodesize int            // initial number of nodes in the table of each level
	cache    cache.Config   // kind and size of the operation caches
	logger   zerolog.Logger // logger for debug events
}

func makeconfigs() *configs {
	return &configs{
		nodesize: _DEFAULTNODESIZE,
		cache: cache.Config{
			Kind: cache.Direct,
			Size: _DEFAULTCACHESIZE,
		},
		logger: zerolog.Nop(),
	}
}

// Nodesize is a configuration option (function). Used as a parameter in New it
// sets a preferred initial capacity for the unique table of every level. Tables
// grow as needed during computations.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 2 {
			c.nodesize = size
		}
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New it
// sets the number of entries of each operation cache. There is one cache for
// union, intersection and complement, plus one for each lifted operation, at
// every level. The default value is 10 000. Caches are direct-mapped: a new
// result overwrites an older one stored in the same slot.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		c.cache.Kind = cache.Direct
		c.cache.Size = size
	}
}

// EvictingCache is a configuration option (function). Used as a parameter in
// New it replaces the direct-mapped caches with bounded caches, each one
// holding at most maxCost entries, and using a frequency-based eviction
// policy. This is a better choice when the same subcomputations are needed
// again long after they were first evaluated, as in long closure
// computations. Call Close on the MDD to release the resources used by the
// caches.
func EvictingCache(maxCost int64) func(*configs) {
	return func(c *configs) {
		c.cache.Kind = cache.Evicting
		c.cache.MaxCost = maxCost
	}
}

// NoCache is a configuration option (function). Used as a parameter in New it
// disables the memoization of operations. Results are the same, only (much)
// slower; this is mostly useful for testing.
func NoCache() func(*configs) {
	return func(c *configs) {
		c.cache.Kind = cache.Disabled
	}
}

// Logger is a configuration option (function). Used as a parameter in New it
// sets the logger used to report debug information, such as the progress of
// closure computations. The default is to log nothing.
func Logger(logger zerolog.Logger) func(*configs) {
	return func(c *configs) {
		c.logger = logger
	}
}
