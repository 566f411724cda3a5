// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cache

import (
	"sync"

	"github.com/Yiling-J/theine-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// NewTheineCache returns a bounded cache holding at most maxCost entries.
// Entries are evicted following the W-TinyLFU policy of theine, and a Set can
// be rejected by the admission filter.
func NewTheineCache[K comparable, V any](maxCost int64) (Cache[K, V], error) {
	built, err := theine.NewBuilder[K, V](maxCost).Build()
	if err != nil {
		return nil, errors.Wrap(err, "building theine cache")
	}
	return &theineCache[K, V]{cache: built, maxCost: maxCost}, nil
}

type theineCache[K comparable, V any] struct {
	cache   *theine.Cache[K, V]
	maxCost int64
	closed  sync.Once
	done    bool // set by Close; the cache then behaves like a noop cache
}

func (tc *theineCache[K, V]) Get(key K) (V, bool) {
	if tc.done {
		return *new(V), false
	}
	return tc.cache.Get(key)
}

func (tc *theineCache[K, V]) Set(key K, value V) bool {
	if tc.done {
		return false
	}
	return tc.cache.Set(key, value, 1)
}

func (tc *theineCache[K, V]) Close() {
	tc.closed.Do(func() {
		tc.done = true
		tc.cache.Close()
	})
}

func (tc *theineCache[K, V]) GetMetrics() Metrics { return tc }
func (tc *theineCache[K, V]) Hits() uint64        { return tc.cache.Stats().Hits() }
func (tc *theineCache[K, V]) Misses() uint64      { return tc.cache.Stats().Misses() }

func (tc *theineCache[K, V]) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("theine", true).Int64("maxCost", tc.maxCost)
}
