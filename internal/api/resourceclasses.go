// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"
	"strconv"

	"github.com/cobaltcore-dev/rackyard/internal/inventory"
)

// Request body for creating or updating a resource class.
type ResourceClassRequest struct {
	Name        string `json:"name"`
	ServiceType string `json:"service_type"`
}

// Request body for replacing the racks assigned to a resource class.
type SetResourcesRequest struct {
	RackIDs []string `json:"rack_ids"`
}

// Request body for replacing the flavors associated with a resource class.
type SetFlavorsRequest struct {
	Flavors []struct {
		ID     string `json:"id"`
		MaxVMs int    `json:"max_vms"`
	} `json:"flavors"`
}

// Response body for a single resource class with its relations and
// capacity totals attached. An absent total is encoded as null.
type ResourceClassDetail struct {
	*inventory.ResourceClassView
	RackIDs                []string                           `json:"rack_ids"`
	HostsCount             int                                `json:"hosts_count"`
	Flavors                []*inventory.FlavorView            `json:"flavors"`
	Totals                 map[string]*inventory.CapacityView `json:"totals"`
	RunningVirtualMachines []inventory.ResourceClassFlavor    `json:"running_virtual_machines"`
}

// Handle the GET request to list all resource classes.
func (api *api) ListResourceClasses(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/resource-classes")
	resourceClasses, err := api.store.ListResourceClasses(r.Context())
	if err != nil {
		h.respondStoreError(err, "failed to list resource classes")
		return
	}
	views := make([]*inventory.ResourceClassView, len(resourceClasses))
	for i, resourceClass := range resourceClasses {
		views[i] = inventory.NewResourceClassView(api.store, resourceClass)
	}
	h.respondJSON(http.StatusOK, struct {
		ResourceClasses []*inventory.ResourceClassView `json:"resource_classes"`
	}{ResourceClasses: views})
}

// Handle the POST request to create a resource class.
func (api *api) CreateResourceClass(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/resource-classes")
	var req ResourceClassRequest
	if err := api.decode(r, &req); err != nil {
		h.respond(http.StatusBadRequest, err, "failed to decode request body")
		return
	}
	resourceClass, err := api.store.CreateResourceClass(r.Context(), inventory.ResourceClass{
		Name:        req.Name,
		ServiceType: req.ServiceType,
	})
	if err != nil {
		h.respondStoreError(err, "failed to create resource class")
		return
	}
	h.respondJSON(http.StatusCreated, inventory.NewResourceClassView(api.store, resourceClass))
}

// Handle the GET request for a single resource class, with its racks,
// flavors, capacity totals and running VM caps attached.
func (api *api) GetResourceClass(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/resource-classes/{id}")
	id, err := pathID(r)
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid resource class id")
		return
	}
	resourceClass, err := api.store.GetResourceClass(r.Context(), id)
	if err != nil {
		h.respondStoreError(err, "failed to get resource class")
		return
	}
	view := inventory.NewResourceClassView(api.store, resourceClass)
	rackIDs, err := view.RackIDs(r.Context())
	if err != nil {
		h.respondStoreError(err, "failed to load racks")
		return
	}
	hostsCount, err := view.HostsCount(r.Context())
	if err != nil {
		h.respondStoreError(err, "failed to load hosts")
		return
	}
	flavors, err := view.Flavors(r.Context())
	if err != nil {
		h.respondStoreError(err, "failed to load flavors")
		return
	}
	totals := map[string]*inventory.CapacityView{}
	for _, name := range []string{
		inventory.CapacityCPU, inventory.CapacityRAM, inventory.CapacityStorage,
	} {
		total, err := view.Total(r.Context(), name)
		if err != nil {
			h.respondStoreError(err, "failed to aggregate capacities")
			return
		}
		if capacity, ok := total.Unpack(); ok {
			totals[name] = &capacity
		} else {
			totals[name] = nil
		}
	}
	runningVMs, err := api.store.RunningVirtualMachines(r.Context(), id)
	if err != nil {
		h.respondStoreError(err, "failed to load running virtual machines")
		return
	}
	h.respondJSON(http.StatusOK, ResourceClassDetail{
		ResourceClassView:      view,
		RackIDs:                rackIDs,
		HostsCount:             hostsCount,
		Flavors:                flavors,
		Totals:                 totals,
		RunningVirtualMachines: runningVMs,
	})
}

// Handle the PUT request to update a resource class.
func (api *api) UpdateResourceClass(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/resource-classes/{id}")
	id, err := pathID(r)
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid resource class id")
		return
	}
	var req ResourceClassRequest
	if err := api.decode(r, &req); err != nil {
		h.respond(http.StatusBadRequest, err, "failed to decode request body")
		return
	}
	resourceClass, err := api.store.UpdateResourceClass(r.Context(), inventory.ResourceClass{
		ID:          id,
		Name:        req.Name,
		ServiceType: req.ServiceType,
	})
	if err != nil {
		h.respondStoreError(err, "failed to update resource class")
		return
	}
	h.respondJSON(http.StatusOK, inventory.NewResourceClassView(api.store, resourceClass))
}

// Handle the DELETE request for a single resource class. Its racks are
// freed and its flavor associations removed.
func (api *api) DeleteResourceClass(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/resource-classes/{id}")
	id, err := pathID(r)
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid resource class id")
		return
	}
	if err := api.store.DeleteResourceClass(r.Context(), id); err != nil {
		h.respondStoreError(err, "failed to delete resource class")
		return
	}
	h.respond(http.StatusNoContent, nil, "Success")
	w.WriteHeader(http.StatusNoContent)
}

// Handle the PUT request to replace the racks assigned to a resource
// class with the given set.
func (api *api) SetResources(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/resource-classes/{id}/racks")
	id, err := pathID(r)
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid resource class id")
		return
	}
	var req SetResourcesRequest
	if err := api.decode(r, &req); err != nil {
		h.respond(http.StatusBadRequest, err, "failed to decode request body")
		return
	}
	rackIDs := make([]int64, len(req.RackIDs))
	for i, rackID := range req.RackIDs {
		rackIDs[i], err = strconv.ParseInt(rackID, 10, 64)
		if err != nil {
			h.respond(http.StatusBadRequest, err, "invalid rack id")
			return
		}
	}
	if err := api.store.SetResources(r.Context(), id, rackIDs); err != nil {
		h.respondStoreError(err, "failed to assign racks")
		return
	}
	h.respond(http.StatusNoContent, nil, "Success")
	w.WriteHeader(http.StatusNoContent)
}

// Handle the PUT request to replace the flavors associated with a
// resource class with the given set.
func (api *api) SetFlavors(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/resource-classes/{id}/flavors")
	id, err := pathID(r)
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid resource class id")
		return
	}
	var req SetFlavorsRequest
	if err := api.decode(r, &req); err != nil {
		h.respond(http.StatusBadRequest, err, "failed to decode request body")
		return
	}
	flavorIDs := make([]int64, len(req.Flavors))
	maxVMs := make(map[int64]int, len(req.Flavors))
	for i, flavor := range req.Flavors {
		flavorID, err := strconv.ParseInt(flavor.ID, 10, 64)
		if err != nil {
			h.respond(http.StatusBadRequest, err, "invalid flavor id")
			return
		}
		flavorIDs[i] = flavorID
		maxVMs[flavorID] = flavor.MaxVMs
	}
	if err := api.store.SetFlavors(r.Context(), id, flavorIDs, maxVMs); err != nil {
		h.respondStoreError(err, "failed to associate flavors")
		return
	}
	h.respond(http.StatusNoContent, nil, "Success")
	w.WriteHeader(http.StatusNoContent)
}
