// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cache

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func identity(k int) uint64 { return uint64(k) }

func TestPrimeGTE(t *testing.T) {
	var primeTests = []struct {
		src      int
		expected int
	}{
		{0, 2},
		{2, 2},
		{3, 3},
		{4, 5},
		{14, 17},
		{100, 101},
		{1000, 1009},
		{10000, 10007},
	}
	for _, tt := range primeTests {
		actual := PrimeGTE(tt.src)
		if actual != tt.expected {
			t.Errorf("PrimeGTE(%d): expected %d, actual %d", tt.src, tt.expected, actual)
		}
	}
}

func TestDirectCache(t *testing.T) {
	c := NewDirectCache[int, string](10, identity)
	defer c.Close()

	_, ok := c.Get(3)
	require.False(t, ok)
	require.True(t, c.Set(3, "three"))
	v, ok := c.Get(3)
	require.True(t, ok)
	require.Equal(t, "three", v)

	// 3 and 14 share the same slot in a table of size 11
	require.True(t, c.Set(14, "fourteen"))
	_, ok = c.Get(3)
	require.False(t, ok, "colliding entry should have been overwritten")
	v, ok = c.Get(14)
	require.True(t, ok)
	require.Equal(t, "fourteen", v)

	require.Equal(t, uint64(2), c.GetMetrics().Hits())
	require.Equal(t, uint64(2), c.GetMetrics().Misses())
}

func TestDirectCacheReset(t *testing.T) {
	c := NewDirectCache[int, int](5, identity)
	for i := 0; i < 5; i++ {
		c.Set(i, i*i)
	}
	c.(*direct[int, int]).Reset()
	for i := 0; i < 5; i++ {
		_, ok := c.Get(i)
		require.False(t, ok)
	}
}

func TestNoopCache(t *testing.T) {
	c := NoopCache[int, int]()
	require.False(t, c.Set(1, 1))
	_, ok := c.Get(1)
	require.False(t, ok)
	require.Equal(t, uint64(0), c.GetMetrics().Hits())
	require.Equal(t, uint64(1), c.GetMetrics().Misses())
}

func TestNew(t *testing.T) {
	var configTests = []struct {
		name   string
		config Config
		fails  bool
	}{
		{"direct", Config{Kind: Direct, Size: 100}, false},
		{"direct without slots", Config{Kind: Direct}, true},
		{"evicting", Config{Kind: Evicting, MaxCost: 1000}, false},
		{"evicting without capacity", Config{Kind: Evicting}, true},
		{"disabled", Config{Kind: Disabled}, false},
		{"unknown", Config{Kind: Kind(42)}, true},
	}
	for _, tt := range configTests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New[[2]int, int](&tt.config, func(k [2]int) uint64 { return uint64(k[0] ^ k[1]) })
			if tt.fails {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrConfig))
				return
			}
			require.NoError(t, err)
			defer c.Close()
			c.Set([2]int{1, 2}, 3)
			if v, ok := c.Get([2]int{1, 2}); ok {
				require.Equal(t, 3, v)
			}
		})
	}
}

func TestTheineCacheMetrics(t *testing.T) {
	c, err := NewTheineCache[string, int](100)
	require.NoError(t, err)
	defer c.Close()

	for i := 0; i < 10; i++ {
		c.Get("missing")
	}
	require.Zero(t, c.GetMetrics().Hits())
	// closing twice is allowed, and a closed cache stores nothing
	c.Close()
	require.False(t, c.Set("key", 1))
	_, ok := c.Get("key")
	require.False(t, ok)
}
