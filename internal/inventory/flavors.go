// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"context"
	"database/sql"
)

// Sizing of a flavor, stored as capacity rows owned by the flavor.
type FlavorSizing struct {
	VCPUs       float64 `json:"vcpus"`
	RAMMB       float64 `json:"ram_mb"`
	RootDiskGB  float64 `json:"root_disk_gb"`
	EphemeralGB float64 `json:"ephemeral_gb"`
	SwapDiskMB  float64 `json:"swap_disk_mb"`
}

// The capacity rows a sizing expands to.
func (fs FlavorSizing) capacities(flavorID int64) []Capacity {
	return []Capacity{
		{OwnerKind: OwnerFlavor, OwnerID: flavorID, Name: CapacityVCPU, Value: fs.VCPUs, Unit: ""},
		{OwnerKind: OwnerFlavor, OwnerID: flavorID, Name: CapacityRAM, Value: fs.RAMMB, Unit: "MB"},
		{OwnerKind: OwnerFlavor, OwnerID: flavorID, Name: CapacityRootDisk, Value: fs.RootDiskGB, Unit: "GB"},
		{OwnerKind: OwnerFlavor, OwnerID: flavorID, Name: CapacityEphemeralDisk, Value: fs.EphemeralGB, Unit: "GB"},
		{OwnerKind: OwnerFlavor, OwnerID: flavorID, Name: CapacitySwapDisk, Value: fs.SwapDiskMB, Unit: "MB"},
	}
}

// Create a new flavor together with its sizing capacities, in one
// transaction.
func (s *Store) CreateFlavor(ctx context.Context, name string, sizing FlavorSizing) (Flavor, error) {
	defer s.mon.observe("create_flavor")()
	tx, err := s.DB.Begin()
	if err != nil {
		return Flavor{}, err
	}
	exec := tx.WithContext(ctx)
	flavor := Flavor{Name: name}
	if err := exec.Insert(&flavor); err != nil {
		_ = tx.Rollback()
		return Flavor{}, err
	}
	for _, capacity := range sizing.capacities(flavor.ID) {
		if err := exec.Insert(&capacity); err != nil {
			_ = tx.Rollback()
			return Flavor{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return Flavor{}, err
	}
	return flavor, nil
}

// Get a flavor by its id. Returns sql.ErrNoRows if the flavor is absent.
func (s *Store) GetFlavor(ctx context.Context, id int64) (Flavor, error) {
	defer s.mon.observe("get_flavor")()
	var flavor Flavor
	err := s.DB.WithContext(ctx).SelectOne(
		&flavor, "SELECT * FROM flavors WHERE id = :id",
		map[string]any{"id": id},
	)
	return flavor, err
}

// List all flavors.
func (s *Store) ListFlavors(ctx context.Context) ([]Flavor, error) {
	defer s.mon.observe("list_flavors")()
	var flavors []Flavor
	_, err := s.DB.WithContext(ctx).Select(&flavors, "SELECT * FROM flavors ORDER BY id")
	return flavors, err
}

// Overwrite a flavor's name and sizing capacities, in one transaction.
// Missing sizing rows are created, existing ones are overwritten.
func (s *Store) UpdateFlavor(ctx context.Context, id int64, name string, sizing FlavorSizing) (Flavor, error) {
	defer s.mon.observe("update_flavor")()
	tx, err := s.DB.Begin()
	if err != nil {
		return Flavor{}, err
	}
	exec := tx.WithContext(ctx)
	flavor := Flavor{ID: id, Name: name}
	count, err := exec.Update(&flavor)
	if err != nil {
		_ = tx.Rollback()
		return Flavor{}, err
	}
	if count == 0 {
		_ = tx.Rollback()
		return Flavor{}, sql.ErrNoRows
	}
	for _, capacity := range sizing.capacities(id) {
		result, err := exec.Exec(
			`UPDATE capacities SET value = :value, unit = :unit
			WHERE owner_kind = :owner_kind AND owner_id = :owner_id AND name = :name`,
			map[string]any{
				"value":      capacity.Value,
				"unit":       capacity.Unit,
				"owner_kind": OwnerFlavor,
				"owner_id":   id,
				"name":       capacity.Name,
			},
		)
		if err != nil {
			_ = tx.Rollback()
			return Flavor{}, err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			_ = tx.Rollback()
			return Flavor{}, err
		}
		if affected == 0 {
			if err := exec.Insert(&capacity); err != nil {
				_ = tx.Rollback()
				return Flavor{}, err
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return Flavor{}, err
	}
	return flavor, nil
}

// Delete a flavor, its sizing capacities, and its resource class
// associations, in one transaction.
func (s *Store) DeleteFlavor(ctx context.Context, id int64) error {
	defer s.mon.observe("delete_flavor")()
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	exec := tx.WithContext(ctx)
	result, err := exec.Exec("DELETE FROM flavors WHERE id = :id", map[string]any{"id": id})
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if affected == 0 {
		_ = tx.Rollback()
		return sql.ErrNoRows
	}
	if _, err := exec.Exec(
		"DELETE FROM capacities WHERE owner_kind = :owner_kind AND owner_id = :owner_id",
		map[string]any{"owner_kind": OwnerFlavor, "owner_id": id},
	); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := exec.Exec(
		"DELETE FROM resource_class_flavors WHERE flavor_id = :flavor_id",
		map[string]any{"flavor_id": id},
	); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
