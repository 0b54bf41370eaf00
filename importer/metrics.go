// Copyright 2026 Hedera Mirror Node Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package importer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type importerMetrics struct {
	filesApplied     prometheus.Counter
	fileFailures     prometheus.Counter
	itemsApplied     *prometheus.CounterVec // by transaction kind
	entitiesCreated  prometheus.Counter
	lastConsensusEnd prometheus.Gauge
	commitSeconds    prometheus.Histogram
}

func (i *Importer) initMetrics(promRegistry prometheus.Registerer) {
	promautoFactory := promauto.With(promRegistry)
	i.metrics = &importerMetrics{}
	i.metrics.filesApplied = promautoFactory.NewCounter(
		prometheus.CounterOpts{
			Name: "mirror_record_files_applied_total",
			Help: "number of record files committed to the store",
		},
	)
	i.metrics.fileFailures = promautoFactory.NewCounter(
		prometheus.CounterOpts{
			Name: "mirror_record_file_failures_total",
			Help: "number of record files rejected or rolled back",
		},
	)
	i.metrics.itemsApplied = promautoFactory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mirror_record_items_applied_total",
			Help: "number of transaction outcome rows written",
		},
		[]string{"kind"},
	)
	i.metrics.entitiesCreated = promautoFactory.NewCounter(
		prometheus.CounterOpts{
			Name: "mirror_entities_created_total",
			Help: "number of entities created",
		},
	)
	i.metrics.lastConsensusEnd = promautoFactory.NewGauge(
		prometheus.GaugeOpts{
			Name: "mirror_last_consensus_end_ns",
			Help: "consensus end timestamp of the latest applied record file",
		},
	)
	i.metrics.commitSeconds = promautoFactory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mirror_record_file_commit_seconds",
			Help:    "time spent applying and committing a record file",
			Buckets: prometheus.DefBuckets,
		},
	)
}
