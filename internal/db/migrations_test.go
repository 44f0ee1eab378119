// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package db_test

import (
	"testing"

	"github.com/cobaltcore-dev/rackyard/internal/db"
	testlibDB "github.com/cobaltcore-dev/rackyard/internal/db/testing"
)

type capacityRow struct {
	ID        int64   `db:"id, primarykey, autoincrement"`
	OwnerKind string  `db:"owner_kind"`
	OwnerID   int64   `db:"owner_id"`
	Name      string  `db:"name"`
	Value     float64 `db:"value"`
	Unit      string  `db:"unit"`
}

func (capacityRow) TableName() string { return "capacities" }

type hostRow struct {
	ID     int64  `db:"id, primarykey, autoincrement"`
	RackID *int64 `db:"rack_id"`
}

func (hostRow) TableName() string { return "hosts" }

type rackRow struct {
	ID              int64  `db:"id, primarykey, autoincrement"`
	ResourceClassID *int64 `db:"resource_class_id"`
}

func (rackRow) TableName() string { return "racks" }

type rcfRow struct {
	ID              int64 `db:"id, primarykey, autoincrement"`
	ResourceClassID int64 `db:"resource_class_id"`
	FlavorID        int64 `db:"flavor_id"`
}

func (rcfRow) TableName() string { return "resource_class_flavors" }

func TestMigrate(t *testing.T) {
	env := testlibDB.SetupDBEnv(t)
	defer env.Close()

	// Migrations only add indexes, so the tables need to be there first.
	err := env.CreateTable(
		env.AddTable(capacityRow{}),
		env.AddTable(hostRow{}),
		env.AddTable(rackRow{}),
		env.AddTable(rcfRow{}),
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	migrater := db.NewMigrater(env.DB)
	migrater.Migrate() // Panics on failure.

	// The unique index must reject duplicate pairs.
	if err := env.Insert(&rcfRow{ResourceClassID: 1, FlavorID: 1}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := env.Insert(&rcfRow{ResourceClassID: 1, FlavorID: 1}); err == nil {
		t.Errorf("expected duplicate pair to be rejected")
	}
}
