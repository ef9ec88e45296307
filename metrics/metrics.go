/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package metrics exposes registry counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/rootiface/registry"
)

// StatsSource is implemented by *registry.Registry.
type StatsSource interface {
	Stats() registry.Stats
}

// Collector is a prometheus.Collector reading a StatsSource on every scrape.
type Collector struct {
	src StatsSource

	hits          *prometheus.Desc
	constructions *prometheus.Desc
	failures      *prometheus.Desc
	entries       *prometheus.Desc
}

// Ensure Collector implements prometheus.Collector.
var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a Collector for src. constLabels are attached to
// every metric, e.g. to tell several registries in one process apart.
func NewCollector(src StatsSource, constLabels prometheus.Labels) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName("rootiface", "registry", name), help, nil, constLabels)
	}
	return &Collector{
		src:           src,
		hits:          desc("hits_total", "Lookups answered from the root interface cache."),
		constructions: desc("constructions_total", "Root interface entries built."),
		failures:      desc("failures_total", "Root interface entries degraded to an empty method set."),
		entries:       desc("entries", "Root interface entries currently cached."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.constructions
	ch <- c.failures
	ch <- c.entries
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(st.Hits))
	ch <- prometheus.MustNewConstMetric(c.constructions, prometheus.CounterValue, float64(st.Constructions))
	ch <- prometheus.MustNewConstMetric(c.failures, prometheus.CounterValue, float64(st.Failures))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(st.Entries))
}
