// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"database/sql"
	"errors"
	"testing"
)

var testSizing = FlavorSizing{
	VCPUs:       4,
	RAMMB:       8192,
	RootDiskGB:  40,
	EphemeralGB: 10,
	SwapDiskMB:  1024,
}

func TestCreateFlavorWritesSizingCapacities(t *testing.T) {
	store := setupStore(t)
	ctx := t.Context()

	flavor, err := store.CreateFlavor(ctx, "m1.medium", testSizing)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	capacities, err := store.ListCapacities(ctx, OwnerFlavor, flavor.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(capacities) != 5 {
		t.Fatalf("expected 5 sizing capacities, got %d", len(capacities))
	}
	byName := map[string]Capacity{}
	for _, capacity := range capacities {
		byName[capacity.Name] = capacity
	}
	if byName[CapacityVCPU].Value != 4 || byName[CapacityVCPU].Unit != "" {
		t.Errorf("unexpected vcpu capacity: %+v", byName[CapacityVCPU])
	}
	if byName[CapacityRAM].Value != 8192 || byName[CapacityRAM].Unit != "MB" {
		t.Errorf("unexpected ram capacity: %+v", byName[CapacityRAM])
	}
	if byName[CapacityRootDisk].Value != 40 || byName[CapacityRootDisk].Unit != "GB" {
		t.Errorf("unexpected root_disk capacity: %+v", byName[CapacityRootDisk])
	}
	if byName[CapacityEphemeralDisk].Value != 10 || byName[CapacityEphemeralDisk].Unit != "GB" {
		t.Errorf("unexpected ephemeral_disk capacity: %+v", byName[CapacityEphemeralDisk])
	}
	if byName[CapacitySwapDisk].Value != 1024 || byName[CapacitySwapDisk].Unit != "MB" {
		t.Errorf("unexpected swap_disk capacity: %+v", byName[CapacitySwapDisk])
	}
}

func TestUpdateFlavorOverwritesSizing(t *testing.T) {
	store := setupStore(t)
	ctx := t.Context()

	flavor, err := store.CreateFlavor(ctx, "m1.medium", testSizing)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	updated := testSizing
	updated.VCPUs = 8
	if _, err := store.UpdateFlavor(ctx, flavor.ID, "m1.large", updated); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := store.GetFlavor(ctx, flavor.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Name != "m1.large" {
		t.Errorf("expected name to be m1.large, got %s", got.Name)
	}
	capacities, err := store.ListCapacities(ctx, OwnerFlavor, flavor.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(capacities) != 5 {
		t.Fatalf("expected 5 sizing capacities, got %d", len(capacities))
	}
	for _, capacity := range capacities {
		if capacity.Name == CapacityVCPU && capacity.Value != 8 {
			t.Errorf("expected vcpu to be 8, got %v", capacity.Value)
		}
	}
}

func TestUpdateFlavorNotFound(t *testing.T) {
	store := setupStore(t)

	_, err := store.UpdateFlavor(t.Context(), 42, "ghost", testSizing)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestDeleteFlavorRemovesCapacitiesAndAssociations(t *testing.T) {
	store := setupStore(t)
	ctx := t.Context()

	flavor, err := store.CreateFlavor(ctx, "m1.medium", testSizing)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	rc, err := store.CreateResourceClass(ctx, ResourceClass{Name: "compute", ServiceType: "compute"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := store.SetFlavors(ctx, rc.ID, []int64{flavor.ID}, nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := store.DeleteFlavor(ctx, flavor.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	capacities, err := store.ListCapacities(ctx, OwnerFlavor, flavor.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(capacities) != 0 {
		t.Errorf("expected sizing capacities to be gone, got %d", len(capacities))
	}
	associations, err := store.ListFlavorAssociations(ctx, rc.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(associations) != 0 {
		t.Errorf("expected associations to be gone, got %d", len(associations))
	}
}
