// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package conf

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration for single-sign-on (SSO).
type SSOConfig struct {
	Cert    string `yaml:"cert,omitempty"`
	CertKey string `yaml:"certKey,omitempty"`

	// If the certificate is self-signed, we need to skip verification.
	SelfSigned bool `yaml:"selfSigned,omitempty"`
}

// Database configuration.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// Configuration for the keystone authentication.
type KeystoneConfig struct {
	// The URL of the keystone service.
	URL string `yaml:"url"`
	// The SSO certificate to use. If none is given, we won't
	// use SSO to connect to the openstack services.
	SSO SSOConfig `yaml:"sso,omitempty"`
	// The OpenStack username (OS_USERNAME in openstack cli).
	OSUsername string `yaml:"username"`
	// The OpenStack password (OS_PASSWORD in openstack cli).
	OSPassword string `yaml:"password"`
	// The OpenStack project name (OS_PROJECT_NAME in openstack cli).
	OSProjectName string `yaml:"projectName"`
	// The OpenStack user domain name (OS_USER_DOMAIN_NAME in openstack cli).
	OSUserDomainName string `yaml:"userDomainName"`
	// The OpenStack project domain name (OS_PROJECT_DOMAIN_NAME in openstack cli).
	OSProjectDomainName string `yaml:"projectDomainName"`
}

// Configuration for the baremetal (ironic) service.
type BaremetalConfig struct {
	// The URL of the baremetal service.
	URL string `yaml:"url"`
	// The URL of the compute service serving the baremetal extension.
	ComputeURL string `yaml:"computeURL"`
	// The types of resources to sync.
	Types []string `yaml:"types"`
}

// Configuration for the sync module.
type SyncConfig struct {
	// Configuration for the keystone service.
	Keystone KeystoneConfig `yaml:"keystone"`
	// Configuration for the baremetal service.
	Baremetal BaremetalConfig `yaml:"baremetal"`
	// Seconds to wait between two sync runs.
	IntervalSeconds int `yaml:"intervalSeconds"`
}

// Configuration for the inventory API module.
type APIConfig struct {
	// The port to use for the inventory API.
	Port int `yaml:"port"`

	// If request bodies should be logged out.
	// This feature is intended for debugging purposes only.
	LogRequestBodies bool `yaml:"logRequestBodies"`
}

// Configuration for the monitoring module.
type MonitoringConfig struct {
	// The labels to add to all metrics.
	Labels map[string]string `yaml:"labels"`

	// The port to expose the metrics on.
	Port int `yaml:"port"`
}

// Configuration for the mqtt broker connection.
type MQTTConfig struct {
	// The URL of the mqtt broker.
	URL string `yaml:"url"`
	// Credentials for the mqtt broker.
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Configuration for the rackyard service.
type Config interface {
	GetDBConfig() DBConfig
	GetSyncConfig() SyncConfig
	GetAPIConfig() APIConfig
	GetMonitoringConfig() MonitoringConfig
	GetMQTTConfig() MQTTConfig
	// Check if the configuration is valid.
	Validate() error
}

type config struct {
	DBConfig         `yaml:"db"`
	SyncConfig       `yaml:"sync"`
	APIConfig        `yaml:"api"`
	MonitoringConfig `yaml:"monitoring"`
	MQTTConfig       `yaml:"mqtt"`
}

func (c *config) GetDBConfig() DBConfig                 { return c.DBConfig }
func (c *config) GetSyncConfig() SyncConfig             { return c.SyncConfig }
func (c *config) GetAPIConfig() APIConfig               { return c.APIConfig }
func (c *config) GetMonitoringConfig() MonitoringConfig { return c.MonitoringConfig }
func (c *config) GetMQTTConfig() MQTTConfig             { return c.MQTTConfig }

// Check if the configuration is valid.
func (c *config) Validate() error {
	if c.DBConfig.Host == "" {
		return errors.New("db: missing host")
	}
	if c.DBConfig.Database == "" {
		return errors.New("db: missing database")
	}
	if c.APIConfig.Port == 0 {
		return errors.New("api: missing port")
	}
	if c.MonitoringConfig.Port == 0 {
		return errors.New("monitoring: missing port")
	}
	if c.SyncConfig.IntervalSeconds <= 0 {
		return errors.New("sync: intervalSeconds must be positive")
	}
	return nil
}

// Create a new configuration from the default config yaml file.
// The path can be overridden with the RACKYARD_CONFIG environment variable.
func NewConfig() Config {
	return newConfigFromFile(getenv("RACKYARD_CONFIG", "/etc/config/conf.yaml"))
}

// Create a new configuration from the given file.
func newConfigFromFile(filepath string) Config {
	file, err := os.Open(filepath)
	if err != nil {
		panic(err)
	}
	defer file.Close()
	bytes, err := io.ReadAll(file)
	if err != nil {
		panic(err)
	}
	return newConfigFromBytes(bytes)
}

// Create a new configuration from the given bytes.
func newConfigFromBytes(bytes []byte) Config {
	var c config
	if err := yaml.Unmarshal(bytes, &c); err != nil {
		panic(err)
	}
	return &c
}
