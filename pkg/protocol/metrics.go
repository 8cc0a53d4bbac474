// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package protocol

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes of classifying a record, as reported through metrics.
const (
	OutcomeOwned    = "owned"
	OutcomeNotOwned = "not_owned"
	OutcomeError    = "error"
)

// Metrics records the number of records checked and the time taken per batch.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	checked  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics constructs and registers the ownership metrics.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		checked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recordscan",
			Name:      "records_checked_total",
			Help:      "Number of records classified, by backend and outcome.",
		}, []string{"backend", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "recordscan",
			Name:      "batch_duration_seconds",
			Help:      "Time taken to classify a batch of records, by backend.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"backend"}),
	}
	//
	for _, c := range []prometheus.Collector{m.checked, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	//
	return m, nil
}

func (m *Metrics) observe(backend string, owned bool, err error) {
	if m == nil {
		return
	}
	//
	outcome := OutcomeNotOwned
	//
	switch {
	case err != nil:
		outcome = OutcomeError
	case owned:
		outcome = OutcomeOwned
	}
	//
	m.checked.WithLabelValues(backend, outcome).Inc()
}

func (m *Metrics) observeBatch(backend string, start time.Time) {
	if m == nil {
		return
	}
	//
	m.duration.WithLabelValues(backend).Observe(time.Since(start).Seconds())
}
