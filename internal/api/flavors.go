// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"

	"github.com/cobaltcore-dev/rackyard/internal/inventory"
)

// Request body for creating or updating a flavor.
type FlavorRequest struct {
	Name   string                 `json:"name"`
	Sizing inventory.FlavorSizing `json:"sizing"`
}

// Response body for a single flavor with its sizing capacities attached.
type FlavorDetail struct {
	*inventory.FlavorView
	Capacities []inventory.CapacityView `json:"capacities"`
}

// Handle the GET request to list all flavors.
func (api *api) ListFlavors(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/flavors")
	flavors, err := api.store.ListFlavors(r.Context())
	if err != nil {
		h.respondStoreError(err, "failed to list flavors")
		return
	}
	views := make([]*inventory.FlavorView, len(flavors))
	for i, flavor := range flavors {
		views[i] = inventory.NewFlavorView(api.store, flavor)
	}
	h.respondJSON(http.StatusOK, struct {
		Flavors []*inventory.FlavorView `json:"flavors"`
	}{Flavors: views})
}

// Handle the POST request to create a flavor with its sizing.
func (api *api) CreateFlavor(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/flavors")
	var req FlavorRequest
	if err := api.decode(r, &req); err != nil {
		h.respond(http.StatusBadRequest, err, "failed to decode request body")
		return
	}
	flavor, err := api.store.CreateFlavor(r.Context(), req.Name, req.Sizing)
	if err != nil {
		h.respondStoreError(err, "failed to create flavor")
		return
	}
	h.respondJSON(http.StatusCreated, inventory.NewFlavorView(api.store, flavor))
}

// Handle the GET request for a single flavor, with its sizing
// capacities attached.
func (api *api) GetFlavor(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/flavors/{id}")
	id, err := pathID(r)
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid flavor id")
		return
	}
	flavor, err := api.store.GetFlavor(r.Context(), id)
	if err != nil {
		h.respondStoreError(err, "failed to get flavor")
		return
	}
	view := inventory.NewFlavorView(api.store, flavor)
	capacities, err := view.Capacities(r.Context())
	if err != nil {
		h.respondStoreError(err, "failed to load flavor capacities")
		return
	}
	h.respondJSON(http.StatusOK, FlavorDetail{FlavorView: view, Capacities: capacities})
}

// Handle the PUT request to update a flavor and its sizing.
func (api *api) UpdateFlavor(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/flavors/{id}")
	id, err := pathID(r)
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid flavor id")
		return
	}
	var req FlavorRequest
	if err := api.decode(r, &req); err != nil {
		h.respond(http.StatusBadRequest, err, "failed to decode request body")
		return
	}
	flavor, err := api.store.UpdateFlavor(r.Context(), id, req.Name, req.Sizing)
	if err != nil {
		h.respondStoreError(err, "failed to update flavor")
		return
	}
	h.respondJSON(http.StatusOK, inventory.NewFlavorView(api.store, flavor))
}

// Handle the DELETE request for a single flavor.
func (api *api) DeleteFlavor(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/v1/flavors/{id}")
	id, err := pathID(r)
	if err != nil {
		h.respond(http.StatusBadRequest, err, "invalid flavor id")
		return
	}
	if err := api.store.DeleteFlavor(r.Context(), id); err != nil {
		h.respondStoreError(err, "failed to delete flavor")
		return
	}
	h.respond(http.StatusNoContent, nil, "Success")
	w.WriteHeader(http.StatusNoContent)
}
