// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"

	"github.com/cobaltcore-dev/rackyard/internal/inventory"
)

// Request body for creating or updating a host.
type HostRequest struct {
	Name       string `json:"name"`
	MacAddress string `json:"mac_address"`
	IPAddress  string `json:"ip_address"`
	Status     string `json:"status"`
	Usage      string `json:"usage"`
	// Empty to leave the host unracked.
	RackID string `json:"rack_id,omitempty"`
}

func (req HostRequest) model() (inventory.Host, error) {
	rackID, err := optionalID(req.RackID)
	if err != nil {
		return inventory.Host{}, err
	}
	return inventory.Host{
		Name:       req.Name,
		MacAddress: req.MacAddress,
		IPAddress:  req.IPAddress,
		Status:     req.Status,
		Usage:      req.Usage,
		RackID:     rackID,
	}, nil
}

// Response body for a single host with its capacities attached.
type HostDetail struct {
	*inventory.HostView
	Capacities []inventory.CapacityView `json:"capacities"`
}

// Handle the GET request to list all hosts.
// With ?unracked=true only hosts outside of any rack are returned.
func (api *api) ListHosts(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/hosts")
	var hosts []inventory.Host
	var err error
	if r.URL.Query().Get("unracked") == "true" {
		hosts, err = api.store.ListUnrackedHosts(r.Context())
	} else {
		hosts, err = api.store.ListHosts(r.Context())
	}
	if err != nil {
		h.respondStoreError(err, "failed to list hosts")
		return
	}
	views := make([]*inventory.HostView, len(hosts))
	for i, host := range hosts {
		views[i] = inventory.NewHostView(api.store, host)
	}
	h.respondJSON(http.StatusOK, struct {
		Hosts []*inventory.HostView `json:"hosts"`
	}{Hosts: views})
}

// Handle the POST request to create a host.
func (api *api) CreateHost(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/hosts")
	var req HostRequest
	if err := api.decode(r, &req); err != nil {
		h.respond(http.StatusBadRequest, err, "failed to decode request body")
		return
	}
	host, err := req.model()
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid rack id")
		return
	}
	host, err = api.store.CreateHost(r.Context(), host)
	if err != nil {
		h.respondStoreError(err, "failed to create host")
		return
	}
	h.respondJSON(http.StatusCreated, inventory.NewHostView(api.store, host))
}

// Handle the GET request for a single host.
func (api *api) GetHost(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/hosts/{id}")
	id, err := pathID(r)
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid host id")
		return
	}
	host, err := api.store.GetHost(r.Context(), id)
	if err != nil {
		h.respondStoreError(err, "failed to get host")
		return
	}
	view := inventory.NewHostView(api.store, host)
	capacities, err := view.Capacities(r.Context())
	if err != nil {
		h.respondStoreError(err, "failed to load host capacities")
		return
	}
	h.respondJSON(http.StatusOK, HostDetail{HostView: view, Capacities: capacities})
}

// Handle the PUT request to update a host.
func (api *api) UpdateHost(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/hosts/{id}")
	id, err := pathID(r)
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid host id")
		return
	}
	var req HostRequest
	if err := api.decode(r, &req); err != nil {
		h.respond(http.StatusBadRequest, err, "failed to decode request body")
		return
	}
	host, err := req.model()
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid rack id")
		return
	}
	host.ID = id
	host, err = api.store.UpdateHost(r.Context(), host)
	if err != nil {
		h.respondStoreError(err, "failed to update host")
		return
	}
	h.respondJSON(http.StatusOK, inventory.NewHostView(api.store, host))
}

// Handle the DELETE request for a single host.
func (api *api) DeleteHost(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/hosts/{id}")
	id, err := pathID(r)
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid host id")
		return
	}
	if err := api.store.DeleteHost(r.Context(), id); err != nil {
		h.respondStoreError(err, "failed to delete host")
		return
	}
	h.respond(http.StatusNoContent, nil, "Success")
	w.WriteHeader(http.StatusNoContent)
}
