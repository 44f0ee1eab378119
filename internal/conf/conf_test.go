// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package conf

import (
	"os"
	"path/filepath"
	"testing"
)

const testYAML = `
db:
  host: localhost
  port: "5432"
  database: rackyard
  user: postgres
  password: secret
sync:
  intervalSeconds: 60
  keystone:
    url: http://keystone:5000/v3
    username: admin
    password: secret
    projectName: admin
    userDomainName: Default
    projectDomainName: Default
  baremetal:
    url: http://ironic:6385/v1
    computeURL: http://nova:8774/v2.1
    types: [nodes, ironic_nodes, ports]
api:
  port: 8080
monitoring:
  port: 2112
  labels:
    service: rackyard
mqtt:
  url: tcp://localhost:1883
`

func TestNewConfigFromBytes(t *testing.T) {
	c := newConfigFromBytes([]byte(testYAML))
	if err := c.Validate(); err != nil {
		t.Fatalf("expected config to be valid, got %v", err)
	}
	if c.GetDBConfig().Host != "localhost" {
		t.Errorf("expected db host to be localhost, got %s", c.GetDBConfig().Host)
	}
	if c.GetAPIConfig().Port != 8080 {
		t.Errorf("expected api port to be 8080, got %d", c.GetAPIConfig().Port)
	}
	if c.GetMonitoringConfig().Labels["service"] != "rackyard" {
		t.Errorf("expected service label to be rackyard")
	}
	sync := c.GetSyncConfig()
	if sync.Keystone.OSUsername != "admin" {
		t.Errorf("expected keystone username to be admin, got %s", sync.Keystone.OSUsername)
	}
	if len(sync.Baremetal.Types) != 3 {
		t.Errorf("expected 3 baremetal types, got %d", len(sync.Baremetal.Types))
	}
}

func TestNewConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.yaml")
	if err := os.WriteFile(path, []byte(testYAML), 0644); err != nil {
		t.Fatal(err)
	}
	c := newConfigFromFile(path)
	if c.GetDBConfig().Database != "rackyard" {
		t.Errorf("expected database to be rackyard, got %s", c.GetDBConfig().Database)
	}
}

func TestNewConfigFromFileMissing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("the code did not panic")
		}
	}()
	newConfigFromFile("/nonexistent/conf.yaml")
}

func TestValidateMissingValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing db host", "db:\n  database: x\napi:\n  port: 1\nmonitoring:\n  port: 1\nsync:\n  intervalSeconds: 1"},
		{"missing database", "db:\n  host: x\napi:\n  port: 1\nmonitoring:\n  port: 1\nsync:\n  intervalSeconds: 1"},
		{"missing api port", "db:\n  host: x\n  database: x\nmonitoring:\n  port: 1\nsync:\n  intervalSeconds: 1"},
		{"missing monitoring port", "db:\n  host: x\n  database: x\napi:\n  port: 1\nsync:\n  intervalSeconds: 1"},
		{"missing sync interval", "db:\n  host: x\n  database: x\napi:\n  port: 1\nmonitoring:\n  port: 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newConfigFromBytes([]byte(tt.yaml))
			if err := c.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestGetenv(t *testing.T) {
	key := "TEST_GETENV"
	value := "test_value"
	defaultValue := "default_value"
	os.Setenv(key, value)
	defer os.Unsetenv(key)

	result := getenv(key, defaultValue)
	if result != value {
		t.Errorf("expected value to be %s, got %s", value, result)
	}
}

func TestGetenvDefault(t *testing.T) {
	key := "TEST_GETENV_DEFAULT"
	defaultValue := "default_value"
	os.Unsetenv(key)

	result := getenv(key, defaultValue)
	if result != defaultValue {
		t.Errorf("expected value to be %s, got %s", defaultValue, result)
	}
}
