// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"github.com/cobaltcore-dev/rackyard/internal/db"
)

// Store providing access to the inventory tables.
type Store struct {
	// Database the inventory is stored in.
	DB db.DB
	// Monitor to track the store.
	mon Monitor
}

// Create a new inventory store.
func NewStore(database db.DB, mon Monitor) *Store {
	return &Store{DB: database, mon: mon}
}

// Create the inventory tables if they don't exist yet.
func (s *Store) Init() error {
	return s.DB.CreateTable(
		s.DB.AddTable(Capacity{}),
		s.DB.AddTable(Host{}),
		s.DB.AddTable(Rack{}),
		s.DB.AddTable(ResourceClass{}),
		s.DB.AddTable(Flavor{}),
		s.DB.AddTable(ResourceClassFlavor{}),
	)
}
