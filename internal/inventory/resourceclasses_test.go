// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"database/sql"
	"errors"
	"testing"
)

func TestSetResourcesReplacesAssignments(t *testing.T) {
	store := setupStore(t)
	ctx := t.Context()

	rc, err := store.CreateResourceClass(ctx, ResourceClass{Name: "compute", ServiceType: "compute"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	old, err := store.CreateRack(ctx, Rack{Name: "old", ResourceClassID: &rc.ID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	rack1, err := store.CreateRack(ctx, Rack{Name: "rack1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	rack2, err := store.CreateRack(ctx, Rack{Name: "rack2"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := store.SetResources(ctx, rc.ID, []int64{rack1.ID, rack2.ID}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	assigned, err := store.ListRacksInClass(ctx, rc.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(assigned) != 2 {
		t.Fatalf("expected 2 assigned racks, got %d", len(assigned))
	}
	if assigned[0].ID != rack1.ID || assigned[1].ID != rack2.ID {
		t.Errorf("expected racks %d and %d, got %+v", rack1.ID, rack2.ID, assigned)
	}

	// The previously assigned rack must be free again.
	gotOld, err := store.GetRack(ctx, old.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotOld.ResourceClassID != nil {
		t.Errorf("expected the old rack to be free, got class id %d", *gotOld.ResourceClassID)
	}
}

func TestSetResourcesUnknownRackRollsBack(t *testing.T) {
	store := setupStore(t)
	ctx := t.Context()

	rc, err := store.CreateResourceClass(ctx, ResourceClass{Name: "compute", ServiceType: "compute"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	old, err := store.CreateRack(ctx, Rack{Name: "old", ResourceClassID: &rc.ID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	rack1, err := store.CreateRack(ctx, Rack{Name: "rack1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err = store.SetResources(ctx, rc.ID, []int64{rack1.ID, 4242})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}

	// The replace must not have happened at all.
	gotOld, err := store.GetRack(ctx, old.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotOld.ResourceClassID == nil || *gotOld.ResourceClassID != rc.ID {
		t.Errorf("expected the old assignment to survive the rollback")
	}
	gotRack1, err := store.GetRack(ctx, rack1.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotRack1.ResourceClassID != nil {
		t.Errorf("expected rack1 to stay free after the rollback")
	}
}

func TestSetResourcesUnknownClass(t *testing.T) {
	store := setupStore(t)

	err := store.SetResources(t.Context(), 42, nil)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestSetFlavorsReplacesAssociations(t *testing.T) {
	store := setupStore(t)
	ctx := t.Context()

	rc, err := store.CreateResourceClass(ctx, ResourceClass{Name: "compute", ServiceType: "compute"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	flavor1, err := store.CreateFlavor(ctx, "m1.small", FlavorSizing{VCPUs: 1})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	flavor2, err := store.CreateFlavor(ctx, "m1.large", FlavorSizing{VCPUs: 8})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := store.SetFlavors(ctx, rc.ID, []int64{flavor1.ID}, map[int64]int{flavor1.ID: 3}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := store.SetFlavors(ctx, rc.ID, []int64{flavor2.ID}, map[int64]int{flavor2.ID: 5}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	associations, err := store.ListFlavorAssociations(ctx, rc.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(associations) != 1 {
		t.Fatalf("expected 1 association, got %d", len(associations))
	}
	if associations[0].FlavorID != flavor2.ID || associations[0].MaxVMs != 5 {
		t.Errorf("expected flavor %d with max vms 5, got %+v", flavor2.ID, associations[0])
	}
}

func TestSetFlavorsDefaultsMaxVMsToZero(t *testing.T) {
	store := setupStore(t)
	ctx := t.Context()

	rc, err := store.CreateResourceClass(ctx, ResourceClass{Name: "compute", ServiceType: "compute"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	flavor, err := store.CreateFlavor(ctx, "m1.small", FlavorSizing{VCPUs: 1})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := store.SetFlavors(ctx, rc.ID, []int64{flavor.ID}, nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	associations, err := store.ListFlavorAssociations(ctx, rc.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(associations) != 1 || associations[0].MaxVMs != 0 {
		t.Errorf("expected one association with max vms 0, got %+v", associations)
	}
}

func TestSetFlavorsUnknownFlavorRollsBack(t *testing.T) {
	store := setupStore(t)
	ctx := t.Context()

	rc, err := store.CreateResourceClass(ctx, ResourceClass{Name: "compute", ServiceType: "compute"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	flavor, err := store.CreateFlavor(ctx, "m1.small", FlavorSizing{VCPUs: 1})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := store.SetFlavors(ctx, rc.ID, []int64{flavor.ID}, map[int64]int{flavor.ID: 3}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err = store.SetFlavors(ctx, rc.ID, []int64{4242}, nil)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}

	associations, err := store.ListFlavorAssociations(ctx, rc.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(associations) != 1 || associations[0].FlavorID != flavor.ID {
		t.Errorf("expected the old association to survive the rollback, got %+v", associations)
	}
}

func TestRunningVirtualMachines(t *testing.T) {
	store := setupStore(t)
	ctx := t.Context()

	rc, err := store.CreateResourceClass(ctx, ResourceClass{Name: "compute", ServiceType: "compute"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	flavor, err := store.CreateFlavor(ctx, "m1.small", FlavorSizing{VCPUs: 1})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := store.SetFlavors(ctx, rc.ID, []int64{flavor.ID}, map[int64]int{flavor.ID: 7}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	vms, err := store.RunningVirtualMachines(ctx, rc.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(vms) != 1 {
		t.Fatalf("expected 1 row, got %d", len(vms))
	}
	// The caps are reported as stored, without any derived arithmetic.
	if vms[0].MaxVMs != 7 {
		t.Errorf("expected max vms 7, got %d", vms[0].MaxVMs)
	}
}

func TestDeleteResourceClassFreesRacksAndAssociations(t *testing.T) {
	store := setupStore(t)
	ctx := t.Context()

	rc, err := store.CreateResourceClass(ctx, ResourceClass{Name: "compute", ServiceType: "compute"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	rack, err := store.CreateRack(ctx, Rack{Name: "rack1", ResourceClassID: &rc.ID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	flavor, err := store.CreateFlavor(ctx, "m1.small", FlavorSizing{VCPUs: 1})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := store.SetFlavors(ctx, rc.ID, []int64{flavor.ID}, nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := store.DeleteResourceClass(ctx, rc.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	gotRack, err := store.GetRack(ctx, rack.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotRack.ResourceClassID != nil {
		t.Errorf("expected the rack to be free")
	}
	associations, err := store.ListFlavorAssociations(ctx, rc.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(associations) != 0 {
		t.Errorf("expected associations to be gone, got %d", len(associations))
	}
}
