// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package baremetal

import "context"

// Canned baremetal nodes as the compute service would report them.
// Each call returns a fresh slice that the caller may mutate.
func MockNodes() []Node {
	return []Node{
		{
			ID:           "1",
			UUID:         "aa-11",
			InstanceUUID: "aa",
			ServiceHost:  "undercloud",
			CPUs:         1,
			MemoryMB:     4096,
			LocalGB:      20,
			TaskState:    "active",
			MacAddresses: "52:54:00:90:38:01,52:54:00:90:38:01",
		},
		{
			ID:           "2",
			UUID:         "bb-22",
			InstanceUUID: "bb",
			ServiceHost:  "undercloud",
			CPUs:         1,
			MemoryMB:     4096,
			LocalGB:      20,
			TaskState:    "active",
			MacAddresses: "52:54:00:90:38:01",
		},
		{
			ID:           "3",
			UUID:         "cc-33",
			InstanceUUID: "cc",
			ServiceHost:  "undercloud",
			CPUs:         1,
			MemoryMB:     4096,
			LocalGB:      20,
			TaskState:    "reboot",
			MacAddresses: "52:54:00:90:38:01",
		},
		{
			ID:           "4",
			UUID:         "cc-44",
			InstanceUUID: "cc",
			ServiceHost:  "undercloud",
			CPUs:         1,
			MemoryMB:     4096,
			LocalGB:      20,
			TaskState:    "active",
			MacAddresses: "52:54:00:90:38:01",
		},
		{
			ID:           "5",
			UUID:         "dd-55",
			InstanceUUID: "dd",
			ServiceHost:  "undercloud",
			CPUs:         1,
			MemoryMB:     4096,
			LocalGB:      20,
			TaskState:    "error",
			MacAddresses: "52:54:00:90:38:01",
		},
	}
}

// Canned ironic nodes matching the compute nodes above by uuid.
// Each call returns a fresh slice that the caller may mutate.
func MockIronicNodes() []IronicNode {
	return []IronicNode{
		{
			ID:           "1",
			UUID:         "aa-11",
			InstanceUUID: "aa",
			Driver:       "pxe_ipmitool",
			PowerState:   "on",
			IPMIAddress:  "1.1.1.1",
			IPMIUsername: "admin",
			IPMIPassword: "password",
			IPAddress:    "1.2.2.2",
			CPU:          "8",
			RAM:          "16",
			LocalDisk:    "10",
		},
		{
			ID:           "2",
			UUID:         "bb-22",
			InstanceUUID: "bb",
			Driver:       "pxe_ipmitool",
			PowerState:   "on",
			IPMIAddress:  "2.2.2.2",
			IPMIUsername: "admin",
			IPMIPassword: "password",
			IPAddress:    "1.2.2.3",
			CPU:          "16",
			RAM:          "32",
			LocalDisk:    "100",
		},
		{
			ID:           "3",
			UUID:         "cc-33",
			InstanceUUID: "cc",
			Driver:       "pxe_ipmitool",
			PowerState:   "rebooting",
			IPMIAddress:  "3.3.3.3",
			IPMIUsername: "admin",
			IPMIPassword: "password",
			IPAddress:    "1.2.2.4",
			CPU:          "32",
			RAM:          "64",
			LocalDisk:    "1",
		},
		{
			ID:           "4",
			UUID:         "cc-44",
			InstanceUUID: "cc",
			Driver:       "pxe_ipmitool",
			PowerState:   "on",
			IPMIAddress:  "4.4.4.4",
			IPMIUsername: "admin",
			IPMIPassword: "password",
			IPAddress:    "1.2.2.5",
			CPU:          "8",
			RAM:          "16",
			LocalDisk:    "10",
		},
		{
			ID:           "5",
			UUID:         "dd-55",
			InstanceUUID: "dd",
			Driver:       "pxe_ipmitool",
			PowerState:   "error",
			IPMIAddress:  "5.5.5.5",
			IPMIUsername: "admin",
			IPMIPassword: "password",
			IPAddress:    "1.2.2.6",
			CPU:          "8",
			RAM:          "16",
			LocalDisk:    "10",
		},
	}
}

// Canned ironic ports. Each call returns a fresh slice that the caller
// may mutate.
func MockPorts() []Port {
	return []Port{
		{ID: "1-port-id", Type: "port", Address: "aa:aa:aa:aa:aa:aa"},
		{ID: "2-port-id", Type: "port", Address: "bb:bb:bb:bb:bb:bb"},
		{ID: "3-port-id", Type: "port", Address: "cc:cc:cc:cc:cc:cc"},
		{ID: "4-port-id", Type: "port", Address: "dd:dd:dd:dd:dd:dd"},
	}
}

// Mock API serving the canned objects above without hitting OpenStack.
type MockAPI struct{}

func (MockAPI) Init(ctx context.Context) {}

func (MockAPI) GetAllNodes(ctx context.Context) ([]Node, error) {
	return MockNodes(), nil
}

func (MockAPI) GetAllIronicNodes(ctx context.Context) ([]IronicNode, error) {
	return MockIronicNodes(), nil
}

func (MockAPI) GetAllPorts(ctx context.Context) ([]Port, error) {
	return MockPorts(), nil
}
