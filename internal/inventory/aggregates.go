// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"context"

	"github.com/majewsky/gg/option"
)

// Sum the named capacity over all hosts mounted in racks of the given
// resource class. Returns None when no matching capacity rows exist or
// when the rows disagree on the unit, so callers can render an
// "unavailable" state instead of a bogus number.
func (s *Store) TotalCapacity(ctx context.Context, resourceClassID int64, name string) (option.Option[Capacity], error) {
	defer s.mon.observe("total_capacity")()
	var totals []struct {
		Unit  string  `db:"unit"`
		Value float64 `db:"value"`
	}
	_, err := s.DB.WithContext(ctx).Select(
		&totals,
		`SELECT c.unit AS unit, SUM(c.value) AS value
		FROM capacities c
		JOIN hosts h ON c.owner_kind = :owner_kind AND c.owner_id = h.id
		JOIN racks r ON h.rack_id = r.id
		WHERE r.resource_class_id = :resource_class_id AND c.name = :name
		GROUP BY c.unit`,
		map[string]any{
			"owner_kind":        OwnerHost,
			"resource_class_id": resourceClassID,
			"name":              name,
		},
	)
	if err != nil {
		return option.None[Capacity](), err
	}
	// More than one group means the capacity rows disagree on the unit,
	// and a sum across units would be meaningless.
	if len(totals) != 1 {
		return option.None[Capacity](), nil
	}
	return option.Some(Capacity{
		Name:  name,
		Value: totals[0].Value,
		Unit:  totals[0].Unit,
	}), nil
}

// Sum of the "cpu" capacities under the resource class.
func (s *Store) TotalCPU(ctx context.Context, resourceClassID int64) (option.Option[Capacity], error) {
	return s.TotalCapacity(ctx, resourceClassID, CapacityCPU)
}

// Sum of the "ram" capacities under the resource class.
func (s *Store) TotalRAM(ctx context.Context, resourceClassID int64) (option.Option[Capacity], error) {
	return s.TotalCapacity(ctx, resourceClassID, CapacityRAM)
}

// Sum of the "storage" capacities under the resource class.
func (s *Store) TotalStorage(ctx context.Context, resourceClassID int64) (option.Option[Capacity], error) {
	return s.TotalCapacity(ctx, resourceClassID, CapacityStorage)
}
