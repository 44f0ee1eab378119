// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"context"
	"database/sql"
)

// Create a new rack.
func (s *Store) CreateRack(ctx context.Context, rack Rack) (Rack, error) {
	defer s.mon.observe("create_rack")()
	if err := s.DB.WithContext(ctx).Insert(&rack); err != nil {
		return Rack{}, err
	}
	return rack, nil
}

// Get a rack by its id. Returns sql.ErrNoRows if the rack is absent.
func (s *Store) GetRack(ctx context.Context, id int64) (Rack, error) {
	defer s.mon.observe("get_rack")()
	var rack Rack
	err := s.DB.WithContext(ctx).SelectOne(
		&rack, "SELECT * FROM racks WHERE id = :id",
		map[string]any{"id": id},
	)
	return rack, err
}

// List racks. With onlyFree, only racks not assigned to any resource
// class are returned, filtered by the database.
func (s *Store) ListRacks(ctx context.Context, onlyFree bool) ([]Rack, error) {
	defer s.mon.observe("list_racks")()
	query := "SELECT * FROM racks ORDER BY id"
	if onlyFree {
		query = "SELECT * FROM racks WHERE resource_class_id IS NULL ORDER BY id"
	}
	var racks []Rack
	_, err := s.DB.WithContext(ctx).Select(&racks, query)
	return racks, err
}

// List all racks assigned to the given resource class.
func (s *Store) ListRacksInClass(ctx context.Context, resourceClassID int64) ([]Rack, error) {
	defer s.mon.observe("list_racks_in_class")()
	var racks []Rack
	_, err := s.DB.WithContext(ctx).Select(
		&racks, "SELECT * FROM racks WHERE resource_class_id = :resource_class_id ORDER BY id",
		map[string]any{"resource_class_id": resourceClassID},
	)
	return racks, err
}

// Overwrite a rack with the given fields, including its resource class
// assignment.
func (s *Store) UpdateRack(ctx context.Context, rack Rack) (Rack, error) {
	defer s.mon.observe("update_rack")()
	count, err := s.DB.WithContext(ctx).Update(&rack)
	if err != nil {
		return Rack{}, err
	}
	if count == 0 {
		return Rack{}, sql.ErrNoRows
	}
	return rack, nil
}

// Delete a rack and its capacity rows. Hosts mounted in the rack are
// kept and become unracked.
func (s *Store) DeleteRack(ctx context.Context, id int64) error {
	defer s.mon.observe("delete_rack")()
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	exec := tx.WithContext(ctx)
	result, err := exec.Exec("DELETE FROM racks WHERE id = :id", map[string]any{"id": id})
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
		"UPDATE hosts SET rack_id = NULL WHERE rack_id = :rack_id",
		map[string]any{"rack_id": id},
	); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := exec.Exec(
		"DELETE FROM capacities WHERE owner_kind = :owner_kind AND owner_id = :owner_id",
		map[string]any{"owner_kind": OwnerRack, "owner_id": id},
	); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
