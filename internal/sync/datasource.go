// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package sync

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Common interface for data sources.
type Datasource interface {
	// Initialize the data source, e.g. create database tables.
	Init(context.Context)
	// Download data from the data source.
	Sync(context.Context) error
}

// Pipeline that runs multiple data sources periodically.
type Pipeline struct {
	// Monitor to track the pipeline.
	Monitor Monitor
	// Data sources to run.
	Syncers []Datasource
	// Seconds to wait between two sync runs.
	IntervalSeconds int
}

// Create all needed database tables if they do not exist.
func (p Pipeline) Init(ctx context.Context) {
	for _, syncer := range p.Syncers {
		syncer.Init(ctx)
	}
}

// Sync all data sources once.
func (p Pipeline) Sync(ctx context.Context) {
	if p.Monitor.PipelineRunTimer != nil {
		hist := p.Monitor.PipelineRunTimer.WithLabelValues("pipeline")
		timer := prometheus.NewTimer(hist)
		defer timer.ObserveDuration()
	}
	for _, syncer := range p.Syncers {
		if err := syncer.Sync(ctx); err != nil {
			slog.Error("failed to sync objects", "error", err)
		}
	}
}

// Sync all data sources periodically until the context is canceled.
// This function blocks.
func (p Pipeline) SyncPeriodic(ctx context.Context) {
	interval := time.Duration(p.IntervalSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		p.Sync(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
