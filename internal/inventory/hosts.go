// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"context"
	"database/sql"
)

// Create a new host.
func (s *Store) CreateHost(ctx context.Context, host Host) (Host, error) {
	defer s.mon.observe("create_host")()
	if err := s.DB.WithContext(ctx).Insert(&host); err != nil {
		return Host{}, err
	}
	return host, nil
}

// Get a host by its id. Returns sql.ErrNoRows if the host is absent.
func (s *Store) GetHost(ctx context.Context, id int64) (Host, error) {
	defer s.mon.observe("get_host")()
	var host Host
	err := s.DB.WithContext(ctx).SelectOne(
		&host, "SELECT * FROM hosts WHERE id = :id",
		map[string]any{"id": id},
	)
	return host, err
}

// List all hosts.
func (s *Store) ListHosts(ctx context.Context) ([]Host, error) {
	defer s.mon.observe("list_hosts")()
	var hosts []Host
	_, err := s.DB.WithContext(ctx).Select(&hosts, "SELECT * FROM hosts ORDER BY id")
	return hosts, err
}

// List all hosts that are not mounted in any rack.
func (s *Store) ListUnrackedHosts(ctx context.Context) ([]Host, error) {
	defer s.mon.observe("list_unracked_hosts")()
	var hosts []Host
	_, err := s.DB.WithContext(ctx).Select(
		&hosts, "SELECT * FROM hosts WHERE rack_id IS NULL ORDER BY id",
	)
	return hosts, err
}

// List all hosts mounted in the given rack.
func (s *Store) ListHostsInRack(ctx context.Context, rackID int64) ([]Host, error) {
	defer s.mon.observe("list_hosts_in_rack")()
	var hosts []Host
	_, err := s.DB.WithContext(ctx).Select(
		&hosts, "SELECT * FROM hosts WHERE rack_id = :rack_id ORDER BY id",
		map[string]any{"rack_id": rackID},
	)
	return hosts, err
}

// Overwrite a host with the given fields.
func (s *Store) UpdateHost(ctx context.Context, host Host) (Host, error) {
	defer s.mon.observe("update_host")()
	count, err := s.DB.WithContext(ctx).Update(&host)
	if err != nil {
		return Host{}, err
	}
	if count == 0 {
		return Host{}, sql.ErrNoRows
	}
	return host, nil
}

// Delete a host and its capacity rows.
func (s *Store) DeleteHost(ctx context.Context, id int64) error {
	defer s.mon.observe("delete_host")()
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	exec := tx.WithContext(ctx)
	result, err := exec.Exec("DELETE FROM hosts WHERE id = :id", map[string]any{"id": id})
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
		map[string]any{"owner_kind": OwnerHost, "owner_id": id},
	); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
