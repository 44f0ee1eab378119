// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"

	"github.com/cobaltcore-dev/rackyard/internal/inventory"
)

// Request body for creating or updating a rack.
type RackRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Subnet   string `json:"subnet"`
	// Empty to leave the rack free.
	ResourceClassID string `json:"resource_class_id,omitempty"`
}

func (req RackRequest) model() (inventory.Rack, error) {
	resourceClassID, err := optionalID(req.ResourceClassID)
	if err != nil {
		return inventory.Rack{}, err
	}
	return inventory.Rack{
		Name:            req.Name,
		Location:        req.Location,
		Subnet:          req.Subnet,
		ResourceClassID: resourceClassID,
	}, nil
}

// Response body for a single rack with its relations attached.
type RackDetail struct {
	*inventory.RackView
	Hosts      []*inventory.HostView    `json:"hosts"`
	HostsCount int                      `json:"hosts_count"`
	Capacities []inventory.CapacityView `json:"capacities"`
}

// Handle the GET request to list all racks.
// With ?free=true only racks without a resource class are returned.
func (api *api) ListRacks(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/racks")
	onlyFree := r.URL.Query().Get("free") == "true"
	racks, err := api.store.ListRacks(r.Context(), onlyFree)
	if err != nil {
		h.respondStoreError(err, "failed to list racks")
		return
	}
	views := make([]*inventory.RackView, len(racks))
	for i, rack := range racks {
		views[i] = inventory.NewRackView(api.store, rack)
	}
	h.respondJSON(http.StatusOK, struct {
		Racks []*inventory.RackView `json:"racks"`
	}{Racks: views})
}

// Handle the POST request to create a rack.
func (api *api) CreateRack(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/racks")
	var req RackRequest
	if err := api.decode(r, &req); err != nil {
		h.respond(http.StatusBadRequest, err, "failed to decode request body")
		return
	}
	rack, err := req.model()
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid resource class id")
		return
	}
	rack, err = api.store.CreateRack(r.Context(), rack)
	if err != nil {
		h.respondStoreError(err, "failed to create rack")
		return
	}
	h.respondJSON(http.StatusCreated, inventory.NewRackView(api.store, rack))
}

// Handle the GET request for a single rack, with its hosts and
// capacities attached.
func (api *api) GetRack(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/racks/{id}")
	id, err := pathID(r)
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid rack id")
		return
	}
	rack, err := api.store.GetRack(r.Context(), id)
	if err != nil {
		h.respondStoreError(err, "failed to get rack")
		return
	}
	view := inventory.NewRackView(api.store, rack)
	hosts, err := view.Hosts(r.Context())
	if err != nil {
		h.respondStoreError(err, "failed to load rack hosts")
		return
	}
	capacities, err := view.Capacities(r.Context())
	if err != nil {
		h.respondStoreError(err, "failed to load rack capacities")
		return
	}
	h.respondJSON(http.StatusOK, RackDetail{
		RackView:   view,
		Hosts:      hosts,
		HostsCount: len(hosts),
		Capacities: capacities,
	})
}

// Handle the PUT request to update a rack.
func (api *api) UpdateRack(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/racks/{id}")
	id, err := pathID(r)
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid rack id")
		return
	}
	var req RackRequest
	if err := api.decode(r, &req); err != nil {
		h.respond(http.StatusBadRequest, err, "failed to decode request body")
		return
	}
	rack, err := req.model()
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid resource class id")
		return
	}
	rack.ID = id
	rack, err = api.store.UpdateRack(r.Context(), rack)
	if err != nil {
		h.respondStoreError(err, "failed to update rack")
		return
	}
	h.respondJSON(http.StatusOK, inventory.NewRackView(api.store, rack))
}

// Handle the DELETE request for a single rack. Hosts mounted in the
// rack are unracked, not deleted.
func (api *api) DeleteRack(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/racks/{id}")
	id, err := pathID(r)
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid rack id")
		return
	}
	if err := api.store.DeleteRack(r.Context(), id); err != nil {
		h.respondStoreError(err, "failed to delete rack")
		return
	}
	h.respond(http.StatusNoContent, nil, "Success")
	w.WriteHeader(http.StatusNoContent)
}
