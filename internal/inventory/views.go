// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"context"
	"strconv"

	"github.com/majewsky/gg/option"
)

// Views adapt inventory rows for dashboard tables, which compare row
// identifiers as strings. Related objects are loaded on first access
// and cached on the view. A view is meant to live for a single request;
// the cache is never shared and only cleared through Invalidate.

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatOptionalID(id *int64) string {
	if id == nil {
		return ""
	}
	return formatID(*id)
}

type CapacityView struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func NewCapacityView(capacity Capacity) CapacityView {
	return CapacityView{
		ID:    formatID(capacity.ID),
		Name:  capacity.Name,
		Value: capacity.Value,
		Unit:  capacity.Unit,
	}
}

func newCapacityViews(capacities []Capacity) []CapacityView {
	views := make([]CapacityView, len(capacities))
	for i, capacity := range capacities {
		views[i] = NewCapacityView(capacity)
	}
	return views
}

type HostView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MacAddress string `json:"mac_address"`
	IPAddress  string `json:"ip_address"`
	Status     string `json:"status"`
	Usage      string `json:"usage"`
	// Empty when the host is unracked.
	RackID string `json:"rack_id,omitempty"`

	store *Store

	capacities       []CapacityView
	capacitiesLoaded bool
}

func NewHostView(store *Store, host Host) *HostView {
	return &HostView{
		ID:         formatID(host.ID),
		Name:       host.Name,
		MacAddress: host.MacAddress,
		IPAddress:  host.IPAddress,
		Status:     host.Status,
		Usage:      host.Usage,
		RackID:     formatOptionalID(host.RackID),
		store:      store,
	}
}

// The capacity rows of the host, loaded once and cached.
func (v *HostView) Capacities(ctx context.Context) ([]CapacityView, error) {
	if !v.capacitiesLoaded {
		id, err := strconv.ParseInt(v.ID, 10, 64)
		if err != nil {
			return nil, err
		}
		capacities, err := v.store.ListCapacities(ctx, OwnerHost, id)
		if err != nil {
			return nil, err
		}
		v.capacities = newCapacityViews(capacities)
		v.capacitiesLoaded = true
	}
	return v.capacities, nil
}

// Drop all cached relations so the next access reloads them.
func (v *HostView) Invalidate() {
	v.capacities = nil
	v.capacitiesLoaded = false
}

type RackView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Subnet   string `json:"subnet"`
	// Empty when the rack is free.
	ResourceClassID string `json:"resource_class_id,omitempty"`

	store *Store

	hosts       []*HostView
	hostsLoaded bool

	capacities       []CapacityView
	capacitiesLoaded bool
}

func NewRackView(store *Store, rack Rack) *RackView {
	return &RackView{
		ID:              formatID(rack.ID),
		Name:            rack.Name,
		Location:        rack.Location,
		Subnet:          rack.Subnet,
		ResourceClassID: formatOptionalID(rack.ResourceClassID),
		store:           store,
	}
}

// The hosts mounted in the rack, loaded once and cached.
func (v *RackView) Hosts(ctx context.Context) ([]*HostView, error) {
	if !v.hostsLoaded {
		id, err := strconv.ParseInt(v.ID, 10, 64)
		if err != nil {
			return nil, err
		}
		hosts, err := v.store.ListHostsInRack(ctx, id)
		if err != nil {
			return nil, err
		}
		v.hosts = make([]*HostView, len(hosts))
		for i, host := range hosts {
			v.hosts[i] = NewHostView(v.store, host)
		}
		v.hostsLoaded = true
	}
	return v.hosts, nil
}

func (v *RackView) HostsCount(ctx context.Context) (int, error) {
	hosts, err := v.Hosts(ctx)
	if err != nil {
		return 0, err
	}
	return len(hosts), nil
}

// The capacity rows of the rack, loaded once and cached.
func (v *RackView) Capacities(ctx context.Context) ([]CapacityView, error) {
	if !v.capacitiesLoaded {
		id, err := strconv.ParseInt(v.ID, 10, 64)
		if err != nil {
			return nil, err
		}
		capacities, err := v.store.ListCapacities(ctx, OwnerRack, id)
		if err != nil {
			return nil, err
		}
		v.capacities = newCapacityViews(capacities)
		v.capacitiesLoaded = true
	}
	return v.capacities, nil
}

// Drop all cached relations so the next access reloads them.
func (v *RackView) Invalidate() {
	v.hosts = nil
	v.hostsLoaded = false
	v.capacities = nil
	v.capacitiesLoaded = false
}

type FlavorView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// The VM cap when the flavor is joined through a resource class.
	MaxVMs int `json:"max_vms"`

	store *Store

	capacities       []CapacityView
	capacitiesLoaded bool
}

func NewFlavorView(store *Store, flavor Flavor) *FlavorView {
	return &FlavorView{
		ID:    formatID(flavor.ID),
		Name:  flavor.Name,
		store: store,
	}
}

// The sizing capacity rows of the flavor, loaded once and cached.
func (v *FlavorView) Capacities(ctx context.Context) ([]CapacityView, error) {
	if !v.capacitiesLoaded {
		id, err := strconv.ParseInt(v.ID, 10, 64)
		if err != nil {
			return nil, err
		}
		capacities, err := v.store.ListCapacities(ctx, OwnerFlavor, id)
		if err != nil {
			return nil, err
		}
		v.capacities = newCapacityViews(capacities)
		v.capacitiesLoaded = true
	}
	return v.capacities, nil
}

// A single sizing capacity by name, None when the flavor has no such row.
func (v *FlavorView) Capacity(ctx context.Context, name string) (option.Option[CapacityView], error) {
	capacities, err := v.Capacities(ctx)
	if err != nil {
		return option.None[CapacityView](), err
	}
	for _, capacity := range capacities {
		if capacity.Name == name {
			return option.Some(capacity), nil
		}
	}
	return option.None[CapacityView](), nil
}

func (v *FlavorView) VCPUs(ctx context.Context) (option.Option[CapacityView], error) {
	return v.Capacity(ctx, CapacityVCPU)
}

func (v *FlavorView) RAM(ctx context.Context) (option.Option[CapacityView], error) {
	return v.Capacity(ctx, CapacityRAM)
}

func (v *FlavorView) RootDisk(ctx context.Context) (option.Option[CapacityView], error) {
	return v.Capacity(ctx, CapacityRootDisk)
}

func (v *FlavorView) EphemeralDisk(ctx context.Context) (option.Option[CapacityView], error) {
	return v.Capacity(ctx, CapacityEphemeralDisk)
}

func (v *FlavorView) SwapDisk(ctx context.Context) (option.Option[CapacityView], error) {
	return v.Capacity(ctx, CapacitySwapDisk)
}

// Drop all cached relations so the next access reloads them.
func (v *FlavorView) Invalidate() {
	v.capacities = nil
	v.capacitiesLoaded = false
}

type ResourceClassView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ServiceType string `json:"service_type"`

	store *Store

	racks       []*RackView
	racksLoaded bool

	flavors       []*FlavorView
	flavorsLoaded bool

	totals       map[string]option.Option[CapacityView]
	totalsLoaded map[string]bool
}

func NewResourceClassView(store *Store, resourceClass ResourceClass) *ResourceClassView {
	return &ResourceClassView{
		ID:           formatID(resourceClass.ID),
		Name:         resourceClass.Name,
		ServiceType:  resourceClass.ServiceType,
		store:        store,
		totals:       map[string]option.Option[CapacityView]{},
		totalsLoaded: map[string]bool{},
	}
}

func (v *ResourceClassView) id() (int64, error) {
	return strconv.ParseInt(v.ID, 10, 64)
}

// The racks assigned to the resource class, loaded once and cached.
func (v *ResourceClassView) Racks(ctx context.Context) ([]*RackView, error) {
	if !v.racksLoaded {
		id, err := v.id()
		if err != nil {
			return nil, err
		}
		racks, err := v.store.ListRacksInClass(ctx, id)
		if err != nil {
			return nil, err
		}
		v.racks = make([]*RackView, len(racks))
		for i, rack := range racks {
			v.racks[i] = NewRackView(v.store, rack)
		}
		v.racksLoaded = true
	}
	return v.racks, nil
}

// The ids of the racks assigned to the resource class.
func (v *ResourceClassView) RackIDs(ctx context.Context) ([]string, error) {
	racks, err := v.Racks(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(racks))
	for i, rack := range racks {
		ids[i] = rack.ID
	}
	return ids, nil
}

func (v *ResourceClassView) RacksCount(ctx context.Context) (int, error) {
	racks, err := v.Racks(ctx)
	if err != nil {
		return 0, err
	}
	return len(racks), nil
}

// All hosts mounted in racks of the resource class.
func (v *ResourceClassView) Hosts(ctx context.Context) ([]*HostView, error) {
	racks, err := v.Racks(ctx)
	if err != nil {
		return nil, err
	}
	var hosts []*HostView
	for _, rack := range racks {
		rackHosts, err := rack.Hosts(ctx)
		if err != nil {
			return nil, err
		}
		hosts = append(hosts, rackHosts...)
	}
	return hosts, nil
}

func (v *ResourceClassView) HostsCount(ctx context.Context) (int, error) {
	hosts, err := v.Hosts(ctx)
	if err != nil {
		return 0, err
	}
	return len(hosts), nil
}

// The flavors associated with the resource class, with their VM caps
// attached, loaded once and cached.
func (v *ResourceClassView) Flavors(ctx context.Context) ([]*FlavorView, error) {
	if !v.flavorsLoaded {
		id, err := v.id()
		if err != nil {
			return nil, err
		}
		associations, err := v.store.ListFlavorAssociations(ctx, id)
		if err != nil {
			return nil, err
		}
		v.flavors = make([]*FlavorView, len(associations))
		for i, association := range associations {
			flavor, err := v.store.GetFlavor(ctx, association.FlavorID)
			if err != nil {
				return nil, err
			}
			view := NewFlavorView(v.store, flavor)
			view.MaxVMs = association.MaxVMs
			v.flavors[i] = view
		}
		v.flavorsLoaded = true
	}
	return v.flavors, nil
}

// The ids of the flavors associated with the resource class.
func (v *ResourceClassView) FlavorIDs(ctx context.Context) ([]string, error) {
	flavors, err := v.Flavors(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(flavors))
	for i, flavor := range flavors {
		ids[i] = flavor.ID
	}
	return ids, nil
}

// The named capacity total over the class's hosts, loaded once and
// cached per name. None means the total is unavailable.
func (v *ResourceClassView) Total(ctx context.Context, name string) (option.Option[CapacityView], error) {
	if !v.totalsLoaded[name] {
		id, err := v.id()
		if err != nil {
			return option.None[CapacityView](), err
		}
		total, err := v.store.TotalCapacity(ctx, id, name)
		if err != nil {
			return option.None[CapacityView](), err
		}
		if capacity, ok := total.Unpack(); ok {
			v.totals[name] = option.Some(NewCapacityView(capacity))
		} else {
			v.totals[name] = option.None[CapacityView]()
		}
		v.totalsLoaded[name] = true
	}
	return v.totals[name], nil
}

func (v *ResourceClassView) TotalCPU(ctx context.Context) (option.Option[CapacityView], error) {
	return v.Total(ctx, CapacityCPU)
}

func (v *ResourceClassView) TotalRAM(ctx context.Context) (option.Option[CapacityView], error) {
	return v.Total(ctx, CapacityRAM)
}

func (v *ResourceClassView) TotalStorage(ctx context.Context) (option.Option[CapacityView], error) {
	return v.Total(ctx, CapacityStorage)
}

// Drop all cached relations so the next access reloads them. Call this
// after mutating the class through the store, the view does not observe
// such writes on its own.
func (v *ResourceClassView) Invalidate() {
	v.racks = nil
	v.racksLoaded = false
	v.flavors = nil
	v.flavorsLoaded = false
	v.totals = map[string]option.Option[CapacityView]{}
	v.totalsLoaded = map[string]bool{}
}
