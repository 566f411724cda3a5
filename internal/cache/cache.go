// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package cache provides the memo tables used by decision diagram operations.
// Every cache is best-effort: an entry can be dropped or overwritten at any
// time and a miss only means that a result has to be computed again.
package cache

import (
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Kind selects the implementation backing a cache.
type Kind int

const (
	// Direct is a fixed-size, direct-mapped table where a new entry overwrites
	// the previous one with the same slot.
	Direct Kind = iota
	// Evicting is a bounded cache with an admission and eviction policy
	// (W-TinyLFU).
	Evicting
	// Disabled never stores anything.
	Disabled
)

var kindnames = [3]string{
	Direct:   "direct",
	Evicting: "evicting",
	Disabled: "disabled",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "unknown"
	}
	return kindnames[k]
}

// Config for caching.
type Config struct {
	// Kind of cache to build.
	Kind Kind

	// Size is the number of slots of a Direct cache. It is rounded up to the
	// next prime number.
	Size int

	// MaxCost is the capacity of an Evicting cache. Every entry has a cost of
	// one, so this is also the maximal number of entries.
	MaxCost int64
}

func (c *Config) MarshalZerologObject(e *zerolog.Event) {
	e.Stringer("kind", c.Kind)
	switch c.Kind {
	case Direct:
		e.Str("size", humanize.Comma(int64(c.Size)))
	case Evicting:
		e.Str("maxCost", humanize.Comma(c.MaxCost))
	}
}

// Cache defines an interface for a generic memo table.
type Cache[K comparable, V any] interface {
	// Get returns the value for the given key in the cache, if it exists.
	Get(key K) (V, bool)

	// Set records a value for the key. It returns false if the entry was
	// rejected.
	Set(key K, value V) bool

	// Close releases the background resources of the cache (if any).
	Close()

	// GetMetrics returns the metrics block for the cache.
	GetMetrics() Metrics

	zerolog.LogObjectMarshaler
}

// Metrics defines metrics exported by a cache.
type Metrics interface {
	// Hits is the number of cache hits.
	Hits() uint64

	// Misses is the number of cache misses.
	Misses() uint64
}

// ErrConfig is returned when a cache cannot be built from its Config.
var ErrConfig = errors.New("invalid cache configuration")

// New returns a cache following config. Function hash is only used by Direct
// caches; it does not need to be injective since keys are always compared
// for equality.
func New[K comparable, V any](config *Config, hash func(K) uint64) (Cache[K, V], error) {
	switch config.Kind {
	case Direct:
		if config.Size <= 0 {
			return nil, errors.Wrapf(ErrConfig, "direct cache with size %d", config.Size)
		}
		return NewDirectCache[K, V](config.Size, hash), nil
	case Evicting:
		if config.MaxCost <= 0 {
			return nil, errors.Wrapf(ErrConfig, "evicting cache with max cost %d", config.MaxCost)
		}
		return NewTheineCache[K, V](config.MaxCost)
	case Disabled:
		return NoopCache[K, V](), nil
	}
	return nil, errors.Wrapf(ErrConfig, "unknown cache kind %d", config.Kind)
}

// NoopCache returns a cache that does nothing.
func NoopCache[K comparable, V any]() Cache[K, V] { return &noopCache[K, V]{} }

type noopCache[K comparable, V any] struct {
	misses uint64
}

var _ Cache[int, any] = (*noopCache[int, any])(nil)

func (no *noopCache[K, V]) Get(_ K) (V, bool) {
	no.misses++
	return *new(V), false
}
func (no *noopCache[K, V]) Set(_ K, _ V) bool    { return false }
func (no *noopCache[K, V]) Close()              {}
func (no *noopCache[K, V]) GetMetrics() Metrics { return no }
func (no *noopCache[K, V]) Hits() uint64        { return 0 }
func (no *noopCache[K, V]) Misses() uint64      { return no.misses }
func (no *noopCache[K, V]) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("enabled", false)
}
