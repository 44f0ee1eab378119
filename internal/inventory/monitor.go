// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"time"

	"github.com/cobaltcore-dev/rackyard/internal/monitoring"
	"github.com/prometheus/client_golang/prometheus"
)

type Monitor struct {
	operationTimer *prometheus.HistogramVec
}

func NewStoreMonitor(registry *monitoring.Registry) Monitor {
	operationTimer := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rackyard_inventory_operation_duration_seconds",
		Help:    "Duration of inventory store operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	registry.MustRegister(operationTimer)
	return Monitor{operationTimer: operationTimer}
}

// Time the given store operation. Use as: defer s.mon.observe("get_rack")().
func (m Monitor) observe(operation string) func() {
	if m.operationTimer == nil {
		return func() {}
	}
	t := time.Now()
	return func() {
		m.operationTimer.WithLabelValues(operation).Observe(time.Since(t).Seconds())
	}
}
