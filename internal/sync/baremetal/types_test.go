// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package baremetal

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUnmarshalNode(t *testing.T) {
	data := []byte(`{
        "id": "1",
        "uuid": "aa-11",
        "instance_uuid": "aa",
        "service_host": "undercloud",
        "cpus": 1,
        "memory_mb": 4096,
        "local_gb": 20,
        "task_state": "active",
        "pm_address": null,
        "pm_user": null,
        "interfaces": [
            {"address": "52:54:00:90:38:01"},
            {"address": "52:54:00:90:38:01"}
        ]
    }`)

	var node Node
	err := json.Unmarshal(data, &node)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if node.ID != "1" {
		t.Errorf("expected ID to be %s, got %s", "1", node.ID)
	}
	if node.UUID != "aa-11" {
		t.Errorf("expected UUID to be %s, got %s", "aa-11", node.UUID)
	}
	if node.MemoryMB != 4096 {
		t.Errorf("expected MemoryMB to be %d, got %d", 4096, node.MemoryMB)
	}
	if node.PMAddress != nil {
		t.Errorf("expected PMAddress to be nil, got %v", *node.PMAddress)
	}
	if node.MacAddresses != "52:54:00:90:38:01,52:54:00:90:38:01" {
		t.Errorf("expected both interfaces to be flattened, got %s", node.MacAddresses)
	}
}

func TestMarshalNode(t *testing.T) {
	node := Node{
		ID:           "1",
		UUID:         "aa-11",
		InstanceUUID: "aa",
		ServiceHost:  "undercloud",
		CPUs:         1,
		MemoryMB:     4096,
		LocalGB:      20,
		TaskState:    "active",
		MacAddresses: "52:54:00:90:38:01",
	}

	data, err := json.Marshal(&node)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !json.Valid(data) {
		t.Error("expected valid JSON, got invalid")
	}
	if !strings.Contains(string(data), `"interfaces":[{"address":"52:54:00:90:38:01"}]`) {
		t.Error("expected JSON to contain 'interfaces' with 'address'")
	}
}

func TestUnmarshalIronicNode(t *testing.T) {
	data := []byte(`{
        "id": "2",
        "uuid": "bb-22",
        "instance_uuid": "bb",
        "driver": "pxe_ipmitool",
        "driver_info": {
            "ipmi_address": "2.2.2.2",
            "ipmi_username": "admin",
            "ipmi_password": "password",
            "ip_address": "1.2.2.3"
        },
        "properties": {
            "cpu": "16",
            "ram": "32",
            "local_disk": "100"
        },
        "power_state": "on"
    }`)

	var node IronicNode
	err := json.Unmarshal(data, &node)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if node.UUID != "bb-22" {
		t.Errorf("expected UUID to be %s, got %s", "bb-22", node.UUID)
	}
	if node.IPMIAddress != "2.2.2.2" {
		t.Errorf("expected IPMIAddress to be %s, got %s", "2.2.2.2", node.IPMIAddress)
	}
	if node.IPAddress != "1.2.2.3" {
		t.Errorf("expected IPAddress to be %s, got %s", "1.2.2.3", node.IPAddress)
	}
	if node.CPU != "16" {
		t.Errorf("expected CPU to be %s, got %s", "16", node.CPU)
	}
	if node.LocalDisk != "100" {
		t.Errorf("expected LocalDisk to be %s, got %s", "100", node.LocalDisk)
	}
	if node.PowerState != "on" {
		t.Errorf("expected PowerState to be %s, got %s", "on", node.PowerState)
	}
}

func TestUnmarshalIronicNodeWithoutNestedObjects(t *testing.T) {
	data := []byte(`{
        "id": "2",
        "uuid": "bb-22",
        "instance_uuid": "bb",
        "driver": "pxe_ipmitool",
        "power_state": "on"
    }`)

	var node IronicNode
	err := json.Unmarshal(data, &node)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if node.UUID != "bb-22" {
		t.Errorf("expected UUID to be %s, got %s", "bb-22", node.UUID)
	}
	if node.IPMIAddress != "" {
		t.Errorf("expected IPMIAddress to be empty, got %s", node.IPMIAddress)
	}
	if node.CPU != "" {
		t.Errorf("expected CPU to be empty, got %s", node.CPU)
	}
}

func TestMarshalIronicNode(t *testing.T) {
	node := IronicNode{
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
	}

	data, err := json.Marshal(&node)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !json.Valid(data) {
		t.Error("expected valid JSON, got invalid")
	}
	if !strings.Contains(string(data), `"ipmi_address":"2.2.2.2"`) {
		t.Error("expected JSON to contain 'driver_info' with 'ipmi_address'")
	}
	if !strings.Contains(string(data), `"local_disk":"100"`) {
		t.Error("expected JSON to contain 'properties' with 'local_disk'")
	}
}
