// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"context"
	"database/sql"
)

// Create a new capacity row attached to the given owner.
// Values are persisted as given, there is no domain validation.
func (s *Store) CreateCapacity(ctx context.Context, capacity Capacity) (Capacity, error) {
	defer s.mon.observe("create_capacity")()
	if err := s.DB.WithContext(ctx).Insert(&capacity); err != nil {
		return Capacity{}, err
	}
	return capacity, nil
}

// Get a capacity row by its id.
func (s *Store) GetCapacity(ctx context.Context, id int64) (Capacity, error) {
	defer s.mon.observe("get_capacity")()
	var capacity Capacity
	err := s.DB.WithContext(ctx).SelectOne(
		&capacity, "SELECT * FROM capacities WHERE id = :id",
		map[string]any{"id": id},
	)
	return capacity, err
}

// List all capacity rows attached to the given owner.
func (s *Store) ListCapacities(ctx context.Context, ownerKind string, ownerID int64) ([]Capacity, error) {
	defer s.mon.observe("list_capacities")()
	var capacities []Capacity
	_, err := s.DB.WithContext(ctx).Select(
		&capacities,
		"SELECT * FROM capacities WHERE owner_kind = :owner_kind AND owner_id = :owner_id ORDER BY id",
		map[string]any{"owner_kind": ownerKind, "owner_id": ownerID},
	)
	return capacities, err
}

// Overwrite a capacity row, including its owner.
func (s *Store) UpdateCapacity(ctx context.Context, capacity Capacity) (Capacity, error) {
	defer s.mon.observe("update_capacity")()
	count, err := s.DB.WithContext(ctx).Update(&capacity)
	if err != nil {
		return Capacity{}, err
	}
	if count == 0 {
		return Capacity{}, sql.ErrNoRows
	}
	return capacity, nil
}
