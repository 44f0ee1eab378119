// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package inventory

// Owner kinds a capacity row can be attached to.
const (
	OwnerHost   = "host"
	OwnerRack   = "rack"
	OwnerFlavor = "flavor"
)

// Capacity names used for flavor sizing.
const (
	CapacityVCPU          = "vcpu"
	CapacityRAM           = "ram"
	CapacityRootDisk      = "root_disk"
	CapacityEphemeralDisk = "ephemeral_disk"
	CapacitySwapDisk      = "swap_disk"
)

// Capacity names aggregated over the hosts of a resource class.
const (
	CapacityCPU     = "cpu"
	CapacityStorage = "storage"
)

// A named numeric attribute with a unit, attached to a host, rack or
// flavor. The owner is a tagged (kind, id) pair instead of a
// polymorphic relation.
type Capacity struct {
	ID        int64   `json:"id" db:"id, primarykey, autoincrement"`
	OwnerKind string  `json:"owner_kind" db:"owner_kind"`
	OwnerID   int64   `json:"owner_id" db:"owner_id"`
	Name      string  `json:"name" db:"name"`
	Value     float64 `json:"value" db:"value"`
	Unit      string  `json:"unit" db:"unit"`
}

// Table in which the inventory model is stored.
func (Capacity) TableName() string { return "capacities" }

// A physical machine, optionally mounted in a rack.
type Host struct {
	ID         int64  `json:"id" db:"id, primarykey, autoincrement"`
	Name       string `json:"name" db:"name"`
	MacAddress string `json:"mac_address" db:"mac_address"`
	IPAddress  string `json:"ip_address" db:"ip_address"`
	Status     string `json:"status" db:"status"`
	Usage      string `json:"usage" db:"usage"`
	// Nil when the host is not mounted in any rack.
	RackID *int64 `json:"rack_id" db:"rack_id"`
}

// Table in which the inventory model is stored.
func (Host) TableName() string { return "hosts" }

// A physical rack grouping hosts, optionally assigned to a resource class.
type Rack struct {
	ID       int64  `json:"id" db:"id, primarykey, autoincrement"`
	Name     string `json:"name" db:"name"`
	Location string `json:"location" db:"location"`
	Subnet   string `json:"subnet" db:"subnet"`
	// Nil when the rack is free, meaning not assigned to any resource class.
	ResourceClassID *int64 `json:"resource_class_id" db:"resource_class_id"`
}

// Table in which the inventory model is stored.
func (Rack) TableName() string { return "racks" }

// A logical grouping of racks and permitted flavors sharing a service type.
type ResourceClass struct {
	ID          int64  `json:"id" db:"id, primarykey, autoincrement"`
	Name        string `json:"name" db:"name"`
	ServiceType string `json:"service_type" db:"service_type"`
}

// Table in which the inventory model is stored.
func (ResourceClass) TableName() string { return "resource_classes" }

// A VM sizing template. The sizing itself (vcpu, ram, disks) is stored
// as capacity rows owned by the flavor.
type Flavor struct {
	ID   int64  `json:"id" db:"id, primarykey, autoincrement"`
	Name string `json:"name" db:"name"`
}

// Table in which the inventory model is stored.
func (Flavor) TableName() string { return "flavors" }

// Join record capping how many VM instances of a flavor may run within
// a resource class.
type ResourceClassFlavor struct {
	ID              int64 `json:"id" db:"id, primarykey, autoincrement"`
	ResourceClassID int64 `json:"resource_class_id" db:"resource_class_id"`
	FlavorID        int64 `json:"flavor_id" db:"flavor_id"`
	MaxVMs          int   `json:"max_vms" db:"max_vms"`
}

// Table in which the inventory model is stored.
func (ResourceClassFlavor) TableName() string { return "resource_class_flavors" }
