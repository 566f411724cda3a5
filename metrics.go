// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const promNamespace = "mdd"

var (
	descLevelNodes = prometheus.NewDesc(
		prometheus.BuildFQName(promNamespace, "level", "nodes"),
		"Number of nodes in the unique table of a level",
		[]string{"level"},
		nil,
	)

	descCacheHitsTotal = prometheus.NewDesc(
		prometheus.BuildFQName(promNamespace, "cache", "hits_total"),
		"Number of operation cache hits",
		[]string{"level", "cache"},
		nil,
	)

	descCacheMissesTotal = prometheus.NewDesc(
		prometheus.BuildFQName(promNamespace, "cache", "misses_total"),
		"Number of operation cache misses",
		[]string{"level", "cache"},
		nil,
	)
)

// Collector returns a prometheus collector exporting the size of the unique
// tables and the use of the operation caches of m. The collector is not
// registered; since an MDD is not safe for concurrent use, it should only be
// gathered when no operation is running.
func (m *MDD) Collector() prometheus.Collector {
	return collector{m}
}

type collector struct {
	m *MDD
}

var _ prometheus.Collector = collector{}

func (c collector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(c, ch)
}

func (c collector) Collect(ch chan<- prometheus.Metric) {
	for _, l := range c.m.levels {
		level := strconv.Itoa(l.index)
		ch <- prometheus.MustNewConstMetric(descLevelNodes, prometheus.GaugeValue, float64(len(l.nodes)), level)
		if l.Terminal() {
			continue
		}
		collectCache(ch, level, "union", l.unioncache.GetMetrics())
		collectCache(ch, level, "intersection", l.intercache.GetMetrics())
		collectCache(ch, level, "complement", l.complcache.GetMetrics())
		for k, f := range l.ops {
			collectCache(ch, level, "op"+strconv.Itoa(k), f.cache.GetMetrics())
		}
	}
}

func collectCache(ch chan<- prometheus.Metric, level, name string, metrics hitmiss) {
	ch <- prometheus.MustNewConstMetric(descCacheHitsTotal, prometheus.CounterValue, float64(metrics.Hits()), level, name)
	ch <- prometheus.MustNewConstMetric(descCacheMissesTotal, prometheus.CounterValue, float64(metrics.Misses()), level, name)
}
