// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package sync

import (
	"context"
	"errors"
	"testing"
)

type mockDatasource struct {
	inits int
	syncs int
	err   error
}

func (m *mockDatasource) Init(ctx context.Context) { m.inits++ }

func (m *mockDatasource) Sync(ctx context.Context) error {
	m.syncs++
	return m.err
}

func TestPipeline_Init(t *testing.T) {
	first := &mockDatasource{}
	second := &mockDatasource{}
	pipeline := Pipeline{Syncers: []Datasource{first, second}}
	pipeline.Init(t.Context())
	if first.inits != 1 || second.inits != 1 {
		t.Errorf("expected all syncers initialized once, got %d and %d", first.inits, second.inits)
	}
}

func TestPipeline_Sync(t *testing.T) {
	// A failing syncer must not stop the others.
	failing := &mockDatasource{err: errors.New("boom")}
	ok := &mockDatasource{}
	pipeline := Pipeline{Syncers: []Datasource{failing, ok}}
	pipeline.Sync(t.Context())
	if failing.syncs != 1 || ok.syncs != 1 {
		t.Errorf("expected all syncers run once, got %d and %d", failing.syncs, ok.syncs)
	}
}
