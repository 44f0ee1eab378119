// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package baremetal

import (
	"encoding/json"
	"strings"

	"github.com/cobaltcore-dev/rackyard/internal/conf"
)

// Type alias for the baremetal sync configuration.
type BaremetalConf = conf.BaremetalConfig

// Baremetal node model as returned by the Nova API under /os-baremetal-nodes.
// See: https://docs.openstack.org/api-ref/compute/#bare-metal-nodes-os-baremetal-nodes-deprecated
type Node struct {
	ID           string `json:"id" db:"id,primarykey"`
	UUID         string `json:"uuid" db:"uuid"`
	InstanceUUID string `json:"instance_uuid" db:"instance_uuid"`
	ServiceHost  string `json:"service_host" db:"service_host"`
	CPUs         int    `json:"cpus" db:"cpus"`
	MemoryMB     int    `json:"memory_mb" db:"memory_mb"`
	LocalGB      int    `json:"local_gb" db:"local_gb"`
	TaskState    string `json:"task_state" db:"task_state"`
	// Power management credentials, unset for nodes managed by ironic.
	PMAddress *string `json:"pm_address" db:"pm_address"`
	PMUser    *string `json:"pm_user" db:"pm_user"`

	// From nested JSON, a comma-separated list of mac addresses.
	MacAddresses string `json:"-" db:"mac_addresses"`
}

// Custom unmarshaler for Node to handle nested JSON.
// The interface list is flattened into a comma-separated mac address
// column to make querying the data easier.
func (n *Node) UnmarshalJSON(data []byte) error {
	type Alias Node
	aux := &struct {
		Interfaces []struct {
			Address string `json:"address"`
		} `json:"interfaces"`
		*Alias
	}{
		Alias: (*Alias)(n),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	addresses := make([]string, len(aux.Interfaces))
	for i, iface := range aux.Interfaces {
		addresses[i] = iface.Address
	}
	n.MacAddresses = strings.Join(addresses, ",")
	return nil
}

// Custom marshaler for Node to handle nested JSON.
// This is the reverse operation of the UnmarshalJSON method.
func (n *Node) MarshalJSON() ([]byte, error) {
	type Alias Node
	type iface struct {
		Address string `json:"address"`
	}
	var ifaces []iface
	if n.MacAddresses != "" {
		for _, address := range strings.Split(n.MacAddresses, ",") {
			ifaces = append(ifaces, iface{Address: address})
		}
	}
	aux := &struct {
		Interfaces []iface `json:"interfaces"`
		*Alias
	}{
		Interfaces: ifaces,
		Alias:      (*Alias)(n),
	}
	return json.Marshal(aux)
}

// Table in which the baremetal model is stored.
func (Node) TableName() string { return "baremetal_nodes" }

// Baremetal node model as returned by the Ironic API under /v1/nodes/detail.
// See: https://docs.openstack.org/api-ref/baremetal/#list-nodes-detailed
type IronicNode struct {
	ID           string `json:"id" db:"id,primarykey"`
	UUID         string `json:"uuid" db:"uuid"`
	InstanceUUID string `json:"instance_uuid" db:"instance_uuid"`
	Driver       string `json:"driver" db:"driver"`
	PowerState   string `json:"power_state" db:"power_state"`

	// From nested JSON
	IPMIAddress  string `json:"-" db:"ipmi_address"`
	IPMIUsername string `json:"-" db:"ipmi_username"`
	IPMIPassword string `json:"-" db:"ipmi_password"`
	IPAddress    string `json:"-" db:"ip_address"`
	CPU          string `json:"-" db:"cpu"`
	RAM          string `json:"-" db:"ram"`
	LocalDisk    string `json:"-" db:"local_disk"`
}

// Custom unmarshaler for IronicNode to handle nested JSON.
// Specifically, we unwrap the "driver_info" and "properties" fields
// into separate columns. The hardware properties are reported by the
// drivers as strings, they are stored unparsed.
func (n *IronicNode) UnmarshalJSON(data []byte) error {
	type Alias IronicNode
	aux := &struct {
		DriverInfo json.RawMessage `json:"driver_info"`
		Properties json.RawMessage `json:"properties"`
		*Alias
	}{
		Alias: (*Alias)(n),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	// Both nested objects are optional in the ironic response.
	if len(aux.DriverInfo) > 0 {
		var driverInfo struct {
			IPMIAddress  string `json:"ipmi_address"`
			IPMIUsername string `json:"ipmi_username"`
			IPMIPassword string `json:"ipmi_password"`
			IPAddress    string `json:"ip_address"`
		}
		if err := json.Unmarshal(aux.DriverInfo, &driverInfo); err != nil {
			return err
		}
		n.IPMIAddress = driverInfo.IPMIAddress
		n.IPMIUsername = driverInfo.IPMIUsername
		n.IPMIPassword = driverInfo.IPMIPassword
		n.IPAddress = driverInfo.IPAddress
	}
	if len(aux.Properties) > 0 {
		var properties struct {
			CPU       string `json:"cpu"`
			RAM       string `json:"ram"`
			LocalDisk string `json:"local_disk"`
		}
		if err := json.Unmarshal(aux.Properties, &properties); err != nil {
			return err
		}
		n.CPU = properties.CPU
		n.RAM = properties.RAM
		n.LocalDisk = properties.LocalDisk
	}
	return nil
}

// Custom marshaler for IronicNode to handle nested JSON.
// This is the reverse operation of the UnmarshalJSON method.
func (n *IronicNode) MarshalJSON() ([]byte, error) {
	type Alias IronicNode
	aux := &struct {
		DriverInfo json.RawMessage `json:"driver_info"`
		Properties json.RawMessage `json:"properties"`
		*Alias
	}{
		Alias: (*Alias)(n),
	}
	var driverInfo struct {
		IPMIAddress  string `json:"ipmi_address"`
		IPMIUsername string `json:"ipmi_username"`
		IPMIPassword string `json:"ipmi_password"`
		IPAddress    string `json:"ip_address"`
	}
	driverInfo.IPMIAddress = n.IPMIAddress
	driverInfo.IPMIUsername = n.IPMIUsername
	driverInfo.IPMIPassword = n.IPMIPassword
	driverInfo.IPAddress = n.IPAddress
	var properties struct {
		CPU       string `json:"cpu"`
		RAM       string `json:"ram"`
		LocalDisk string `json:"local_disk"`
	}
	properties.CPU = n.CPU
	properties.RAM = n.RAM
	properties.LocalDisk = n.LocalDisk
	var err error
	if aux.DriverInfo, err = json.Marshal(driverInfo); err != nil {
		return nil, err
	}
	if aux.Properties, err = json.Marshal(properties); err != nil {
		return nil, err
	}
	return json.Marshal(aux)
}

// Table in which the baremetal model is stored.
func (IronicNode) TableName() string { return "baremetal_ironic_nodes" }

// Baremetal port model as returned by the Ironic API under /v1/ports/detail.
// See: https://docs.openstack.org/api-ref/baremetal/#list-detailed-ports
type Port struct {
	ID      string `json:"id" db:"id,primarykey"`
	Type    string `json:"type" db:"type"`
	Address string `json:"address" db:"address"`
}

// Table in which the baremetal model is stored.
func (Port) TableName() string { return "baremetal_ports" }
