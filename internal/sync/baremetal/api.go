// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package baremetal

import (
	"context"
	"log/slog"

	"github.com/cobaltcore-dev/rackyard/internal/sync"
	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/baremetal/v1/nodes"
	"github.com/gophercloud/gophercloud/v2/openstack/baremetal/v1/ports"
	"github.com/gophercloud/gophercloud/v2/pagination"
	"github.com/prometheus/client_golang/prometheus"
)

type BaremetalAPI interface {
	// Init the baremetal API.
	Init(ctx context.Context)
	// List all baremetal nodes known to the compute service.
	GetAllNodes(ctx context.Context) ([]Node, error)
	// List all nodes registered with ironic.
	GetAllIronicNodes(ctx context.Context) ([]IronicNode, error)
	// List all ports registered with ironic.
	GetAllPorts(ctx context.Context) ([]Port, error)
}

// API for the OpenStack baremetal services.
type baremetalAPI struct {
	// Monitor to track the api.
	mon sync.Monitor
	// Keystone api to authenticate against.
	keystoneAPI KeystoneAPI
	// Baremetal configuration.
	conf BaremetalConf
	// Authenticated OpenStack service client for the ironic endpoint.
	sc *gophercloud.ServiceClient
	// Authenticated OpenStack service client for the compute endpoint.
	computeSC *gophercloud.ServiceClient
}

// Create a new OpenStack baremetal api.
func newBaremetalAPI(mon sync.Monitor, k KeystoneAPI, conf BaremetalConf) BaremetalAPI {
	return &baremetalAPI{mon: mon, keystoneAPI: k, conf: conf}
}

// Init the baremetal API.
func (api *baremetalAPI) Init(ctx context.Context) {
	if err := api.keystoneAPI.Authenticate(ctx); err != nil {
		panic(err)
	}
	provider := api.keystoneAPI.Client()
	api.sc = &gophercloud.ServiceClient{
		ProviderClient: provider,
		// For some reason gophercloud expects a trailing slash.
		Endpoint: api.conf.URL + "/",
		Type:     "baremetal",
	}
	api.computeSC = &gophercloud.ServiceClient{
		ProviderClient: provider,
		Endpoint:       api.conf.ComputeURL + "/",
		Type:           "compute",
	}
}

// Get all baremetal nodes from the compute service.
// The os-baremetal-nodes extension has no list endpoint in gophercloud,
// so the request is made directly against the service client.
func (api *baremetalAPI) GetAllNodes(ctx context.Context) ([]Node, error) {
	label := Node{}.TableName()
	slog.Info("fetching baremetal data", "label", label)
	var data = &struct {
		Nodes []Node `json:"nodes"`
	}{}
	err := func() error {
		if api.mon.PipelineRequestTimer != nil {
			hist := api.mon.PipelineRequestTimer.WithLabelValues(label)
			timer := prometheus.NewTimer(hist)
			defer timer.ObserveDuration()
		}
		url := api.computeSC.Endpoint + "os-baremetal-nodes"
		_, err := api.computeSC.Get(ctx, url, data, nil)
		return err
	}()
	if err != nil {
		return nil, err
	}
	slog.Info("fetched", "label", label, "count", len(data.Nodes))
	return data.Nodes, nil
}

// Get all nodes registered with ironic.
func (api *baremetalAPI) GetAllIronicNodes(ctx context.Context) ([]IronicNode, error) {
	label := IronicNode{}.TableName()
	slog.Info("fetching baremetal data", "label", label)
	// Fetch all pages.
	pages, err := func() (pagination.Page, error) {
		if api.mon.PipelineRequestTimer != nil {
			hist := api.mon.PipelineRequestTimer.WithLabelValues(label)
			timer := prometheus.NewTimer(hist)
			defer timer.ObserveDuration()
		}
		return nodes.ListDetail(api.sc, nodes.ListOpts{}).AllPages(ctx)
	}()
	if err != nil {
		return nil, err
	}
	// Parse the json data into our custom model.
	var data = &struct {
		Nodes []IronicNode `json:"nodes"`
	}{}
	if err := pages.(nodes.NodePage).ExtractInto(data); err != nil {
		return nil, err
	}
	slog.Info("fetched", "label", label, "count", len(data.Nodes))
	return data.Nodes, nil
}

// Get all ports registered with ironic.
func (api *baremetalAPI) GetAllPorts(ctx context.Context) ([]Port, error) {
	label := Port{}.TableName()
	slog.Info("fetching baremetal data", "label", label)
	// Fetch all pages.
	pages, err := func() (pagination.Page, error) {
		if api.mon.PipelineRequestTimer != nil {
			hist := api.mon.PipelineRequestTimer.WithLabelValues(label)
			timer := prometheus.NewTimer(hist)
			defer timer.ObserveDuration()
		}
		return ports.ListDetail(api.sc, ports.ListOpts{}).AllPages(ctx)
	}()
	if err != nil {
		return nil, err
	}
	// Parse the json data into our custom model.
	var data = &struct {
		Ports []Port `json:"ports"`
	}{}
	if err := pages.(ports.PortPage).ExtractInto(data); err != nil {
		return nil, err
	}
	slog.Info("fetched", "label", label, "count", len(data.Ports))
	return data.Ports, nil
}
