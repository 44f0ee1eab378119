// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"context"
	"database/sql"
	"fmt"
)

// Create a new resource class.
func (s *Store) CreateResourceClass(ctx context.Context, resourceClass ResourceClass) (ResourceClass, error) {
	defer s.mon.observe("create_resource_class")()
	if err := s.DB.WithContext(ctx).Insert(&resourceClass); err != nil {
		return ResourceClass{}, err
	}
	return resourceClass, nil
}

// Get a resource class by its id. Returns sql.ErrNoRows if absent.
func (s *Store) GetResourceClass(ctx context.Context, id int64) (ResourceClass, error) {
	defer s.mon.observe("get_resource_class")()
	var resourceClass ResourceClass
	err := s.DB.WithContext(ctx).SelectOne(
		&resourceClass, "SELECT * FROM resource_classes WHERE id = :id",
		map[string]any{"id": id},
	)
	return resourceClass, err
}

// List all resource classes.
func (s *Store) ListResourceClasses(ctx context.Context) ([]ResourceClass, error) {
	defer s.mon.observe("list_resource_classes")()
	var resourceClasses []ResourceClass
	_, err := s.DB.WithContext(ctx).Select(
		&resourceClasses, "SELECT * FROM resource_classes ORDER BY id",
	)
	return resourceClasses, err
}

// Overwrite a resource class with the given fields.
func (s *Store) UpdateResourceClass(ctx context.Context, resourceClass ResourceClass) (ResourceClass, error) {
	defer s.mon.observe("update_resource_class")()
	count, err := s.DB.WithContext(ctx).Update(&resourceClass)
	if err != nil {
		return ResourceClass{}, err
	}
	if count == 0 {
		return ResourceClass{}, sql.ErrNoRows
	}
	return resourceClass, nil
}

// Delete a resource class. Its flavor associations are removed and its
// racks become free, all in one transaction.
func (s *Store) DeleteResourceClass(ctx context.Context, id int64) error {
	defer s.mon.observe("delete_resource_class")()
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	exec := tx.WithContext(ctx)
	result, err := exec.Exec(
		"DELETE FROM resource_classes WHERE id = :id", map[string]any{"id": id},
	)
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
		"DELETE FROM resource_class_flavors WHERE resource_class_id = :resource_class_id",
		map[string]any{"resource_class_id": id},
	); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := exec.Exec(
		"UPDATE racks SET resource_class_id = NULL WHERE resource_class_id = :resource_class_id",
		map[string]any{"resource_class_id": id},
	); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// List the flavor associations of a resource class.
func (s *Store) ListFlavorAssociations(ctx context.Context, resourceClassID int64) ([]ResourceClassFlavor, error) {
	defer s.mon.observe("list_flavor_associations")()
	var associations []ResourceClassFlavor
	_, err := s.DB.WithContext(ctx).Select(
		&associations,
		"SELECT * FROM resource_class_flavors WHERE resource_class_id = :resource_class_id ORDER BY flavor_id",
		map[string]any{"resource_class_id": resourceClassID},
	)
	return associations, err
}

// The per-flavor VM caps of a resource class. These are the plain
// association rows; deriving a live VM count from them needs usage data
// that the inventory does not track.
func (s *Store) RunningVirtualMachines(ctx context.Context, resourceClassID int64) ([]ResourceClassFlavor, error) {
	defer s.mon.observe("running_virtual_machines")()
	return s.ListFlavorAssociations(ctx, resourceClassID)
}

// Replace the racks assigned to a resource class. All currently
// assigned racks become free and the given racks are assigned, in one
// transaction. Unknown rack ids roll the whole operation back.
func (s *Store) SetResources(ctx context.Context, resourceClassID int64, rackIDs []int64) error {
	defer s.mon.observe("set_resources")()
	if _, err := s.GetResourceClass(ctx, resourceClassID); err != nil {
		return err
	}
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	exec := tx.WithContext(ctx)
	if _, err := exec.Exec(
		"UPDATE racks SET resource_class_id = NULL WHERE resource_class_id = :resource_class_id",
		map[string]any{"resource_class_id": resourceClassID},
	); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, rackID := range rackIDs {
		result, err := exec.Exec(
			"UPDATE racks SET resource_class_id = :resource_class_id WHERE id = :id",
			map[string]any{"resource_class_id": resourceClassID, "id": rackID},
		)
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
			return fmt.Errorf("rack %d: %w", rackID, sql.ErrNoRows)
		}
	}
	return tx.Commit()
}

// Replace the flavor associations of a resource class. All existing
// associations are removed and the given flavors are associated with
// their cap from maxVMs (0 when absent), in one transaction. Unknown
// flavor ids roll the whole operation back.
func (s *Store) SetFlavors(ctx context.Context, resourceClassID int64, flavorIDs []int64, maxVMs map[int64]int) error {
	defer s.mon.observe("set_flavors")()
	if _, err := s.GetResourceClass(ctx, resourceClassID); err != nil {
		return err
	}
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	exec := tx.WithContext(ctx)
	if _, err := exec.Exec(
		"DELETE FROM resource_class_flavors WHERE resource_class_id = :resource_class_id",
		map[string]any{"resource_class_id": resourceClassID},
	); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, flavorID := range flavorIDs {
		count, err := exec.SelectInt(
			"SELECT COUNT(*) FROM flavors WHERE id = :id", map[string]any{"id": flavorID},
		)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
		if count == 0 {
			_ = tx.Rollback()
			return fmt.Errorf("flavor %d: %w", flavorID, sql.ErrNoRows)
		}
		association := ResourceClassFlavor{
			ResourceClassID: resourceClassID,
			FlavorID:        flavorID,
			MaxVMs:          maxVMs[flavorID],
		}
		if err := exec.Insert(&association); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
