// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"testing"

	testlibDB "github.com/cobaltcore-dev/rackyard/internal/db/testing"
)

func setupStore(t *testing.T) *Store {
	env := testlibDB.SetupDBEnv(t)
	t.Cleanup(env.Close)
	store := NewStore(env.DB, Monitor{})
	if err := store.Init(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return store
}

func TestStoreInit(t *testing.T) {
	env := testlibDB.SetupDBEnv(t)
	defer env.Close()

	store := NewStore(env.DB, Monitor{})
	if err := store.Init(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, table := range []string{
		"capacities", "hosts", "racks",
		"resource_classes", "flavors", "resource_class_flavors",
	} {
		var name string
		err := env.SelectOne(&name,
			"SELECT name FROM sqlite_master WHERE type='table' AND name = :name",
			map[string]any{"name": table})
		if err != nil {
			t.Errorf("expected table %s to exist, got %v", table, err)
		}
	}
}
