// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cache

import (
	"github.com/rs/zerolog"
)

// direct is a hash table where each key can only be stored in one slot. A new
// entry simply replaces the one already in its slot, which makes the table a
// lossy cache with a fixed memory footprint. The number of slots is always a
// prime number.
type direct[K comparable, V any] struct {
	hash   func(K) uint64
	table  []entry[K, V]
	hits   uint64
	misses uint64
}

// entry is a unit of information stored in a direct cache.
type entry[K comparable, V any] struct {
	key   K
	value V
	valid bool
}

// NewDirectCache returns a direct-mapped cache with at least size slots.
func NewDirectCache[K comparable, V any](size int, hash func(K) uint64) Cache[K, V] {
	// we never check if the creation of the slice panic because of lack of memory
	c := &direct[K, V]{hash: hash}
	c.table = make([]entry[K, V], PrimeGTE(size))
	return c
}

func (c *direct[K, V]) slot(key K) *entry[K, V] {
	return &c.table[c.hash(key)%uint64(len(c.table))]
}

func (c *direct[K, V]) Get(key K) (V, bool) {
	e := c.slot(key)
	if e.valid && e.key == key {
		c.hits++
		return e.value, true
	}
	c.misses++
	return *new(V), false
}

func (c *direct[K, V]) Set(key K, value V) bool {
	*c.slot(key) = entry[K, V]{key: key, value: value, valid: true}
	return true
}

// Reset invalidates all the entries in the table.
func (c *direct[K, V]) Reset() {
	for k := range c.table {
		c.table[k].valid = false
	}
}

func (c *direct[K, V]) Close() {
	c.table = make([]entry[K, V], 1)
}

func (c *direct[K, V]) GetMetrics() Metrics { return c }
func (c *direct[K, V]) Hits() uint64        { return c.hits }
func (c *direct[K, V]) Misses() uint64      { return c.misses }

func (c *direct[K, V]) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("direct", true).Int("slots", len(c.table))
}
