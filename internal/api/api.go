// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cobaltcore-dev/rackyard/internal/conf"
	"github.com/cobaltcore-dev/rackyard/internal/inventory"
	"github.com/sapcc/go-bits/httpext"
)

type API interface {
	// Init the API mux and bind the handlers.
	Init(context.Context)
}

type api struct {
	store   *inventory.Store
	config  conf.APIConfig
	monitor Monitor
}

func NewAPI(config conf.APIConfig, store *inventory.Store, m Monitor) API {
	return &api{
		store:   store,
		config:  config,
		monitor: m,
	}
}

// Init the API mux and bind the handlers.
func (api *api) Init(ctx context.Context) {
	mux := http.NewServeMux()
	api.Bind(mux)
	slog.Info("api listening on", "port", api.config.Port)
	addr := fmt.Sprintf(":%d", api.config.Port)
	if err := httpext.ListenAndServeContext(ctx, addr, mux); err != nil {
		panic(err)
	}
}

// Bind the handlers on the given mux.
func (api *api) Bind(mux *http.ServeMux) {
	mux.HandleFunc("GET /up", api.Up)

	mux.HandleFunc("GET /v1/hosts", api.ListHosts)
	mux.HandleFunc("POST /v1/hosts", api.CreateHost)
	mux.HandleFunc("GET /v1/hosts/{id}", api.GetHost)
	mux.HandleFunc("PUT /v1/hosts/{id}", api.UpdateHost)
	mux.HandleFunc("DELETE /v1/hosts/{id}", api.DeleteHost)

	mux.HandleFunc("GET /v1/racks", api.ListRacks)
	mux.HandleFunc("POST /v1/racks", api.CreateRack)
	mux.HandleFunc("GET /v1/racks/{id}", api.GetRack)
	mux.HandleFunc("PUT /v1/racks/{id}", api.UpdateRack)
	mux.HandleFunc("DELETE /v1/racks/{id}", api.DeleteRack)

	mux.HandleFunc("GET /v1/flavors", api.ListFlavors)
	mux.HandleFunc("POST /v1/flavors", api.CreateFlavor)
	mux.HandleFunc("GET /v1/flavors/{id}", api.GetFlavor)
	mux.HandleFunc("PUT /v1/flavors/{id}", api.UpdateFlavor)
	mux.HandleFunc("DELETE /v1/flavors/{id}", api.DeleteFlavor)

	mux.HandleFunc("GET /v1/resource-classes", api.ListResourceClasses)
	mux.HandleFunc("POST /v1/resource-classes", api.CreateResourceClass)
	mux.HandleFunc("GET /v1/resource-classes/{id}", api.GetResourceClass)
	mux.HandleFunc("PUT /v1/resource-classes/{id}", api.UpdateResourceClass)
	mux.HandleFunc("DELETE /v1/resource-classes/{id}", api.DeleteResourceClass)
	mux.HandleFunc("PUT /v1/resource-classes/{id}/racks", api.SetResources)
	mux.HandleFunc("PUT /v1/resource-classes/{id}/flavors", api.SetFlavors)
}

// Helper to respond to the request with the given code and error.
// Also adds monitoring for the time it took to handle the request.
type apihelper struct {
	api     *api
	w       http.ResponseWriter
	r       *http.Request
	pattern string
	t       time.Time
}

func (api *api) newHelper(w http.ResponseWriter, r *http.Request, pattern string) apihelper {
	return apihelper{api: api, w: w, r: r, pattern: pattern, t: time.Now()}
}

// Respond to the request with the given code and error.
// Also log the time it took to handle the request.
func (h apihelper) respond(code int, err error, text string) {
	if h.api.monitor.apiRequestsTimer != nil {
		observer := h.api.monitor.apiRequestsTimer.WithLabelValues(
			h.r.Method,
			h.pattern,
			strconv.Itoa(code),
			text, // Internal error messages should not face the monitor.
		)
		observer.Observe(time.Since(h.t).Seconds())
	}
	if err != nil {
		slog.Error("failed to handle request", "error", err)
		http.Error(h.w, text, code)
		return
	}
	// If there was no error, nothing else to do.
}

// Respond with the given object as JSON.
func (h apihelper) respondJSON(code int, obj any) {
	h.w.Header().Set("Content-Type", "application/json")
	h.w.WriteHeader(code)
	if err := json.NewEncoder(h.w).Encode(obj); err != nil {
		slog.Error("failed to encode response", "error", err)
		return
	}
	h.respond(code, nil, "Success")
}

// Respond to a failed store operation. Absent rows map to 404, anything
// else is an internal error.
func (h apihelper) respondStoreError(err error, text string) {
	if errors.Is(err, sql.ErrNoRows) {
		h.respond(http.StatusNotFound, err, "not found")
		return
	}
	h.respond(http.StatusInternalServerError, err, text)
}

// Decode the request body into the given struct.
// If configured, log out the complete request body.
func (api *api) decode(r *http.Request, into any) error {
	// Ensure body is closed after reading.
	defer r.Body.Close()
	if api.config.LogRequestBodies {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return err
		}
		slog.Info("request body", "body", string(body))
		r.Body = io.NopCloser(bytes.NewBuffer(body)) // Restore the body for further processing
	}
	return json.NewDecoder(r.Body).Decode(into)
}

// Parse the id path value of the request.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// Parse an optional string id from a request body. Empty means unset.
func optionalID(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Handle the GET request to check if the API is up.
func (api *api) Up(w http.ResponseWriter, r *http.Request) {
	h := api.newHelper(w, r, "/up")
	h.respond(http.StatusOK, nil, "Success")
}
