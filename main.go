// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/cobaltcore-dev/rackyard/internal/api"
	"github.com/cobaltcore-dev/rackyard/internal/conf"
	"github.com/cobaltcore-dev/rackyard/internal/db"
	"github.com/cobaltcore-dev/rackyard/internal/inventory"
	"github.com/cobaltcore-dev/rackyard/internal/monitoring"
	"github.com/cobaltcore-dev/rackyard/internal/mqtt"
	"github.com/cobaltcore-dev/rackyard/internal/sync"
	"github.com/cobaltcore-dev/rackyard/internal/sync/baremetal"
	"github.com/sapcc/go-api-declarations/bininfo"
	"github.com/sapcc/go-bits/httpext"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		// If called with `--version`, report version and exit (the Dockerfile
		// uses this to check if the binary was built correctly)
		bininfo.HandleVersionArgument()
	}

	config := conf.NewConfig()
	if err := config.Validate(); err != nil {
		panic(err)
	}

	// Set runtime concurrency to match CPU limit imposed by Kubernetes
	undoMaxprocs, err := maxprocs.Set(maxprocs.Logger(slog.Debug))
	if err != nil {
		panic(err)
	}
	defer undoMaxprocs()

	// Override User-Agent header for all requests made by this process
	// (logs will show e.g. "rackyard/d0c9faa" instead of "Go-http-client/2.0")
	wrap := httpext.WrapTransport(&http.DefaultTransport)
	wrap.SetOverrideUserAgent(bininfo.Component(), bininfo.VersionOr("rolling"))

	// This context will gracefully shutdown when the process receives the
	// standard shutdown signal SIGINT, with a 10-second delay to allow
	// Kubernetes to stop sending new requests well before the process starts
	// to shut down.
	ctx := httpext.ContextWithSIGINT(context.Background(), 10*time.Second)

	registry := monitoring.NewRegistry(config.GetMonitoringConfig())
	go func() {
		if err := monitoring.Serve(ctx, registry); err != nil {
			panic(err)
		}
	}()

	database := db.NewPostgresDB(config.GetDBConfig(), db.NewDBMonitor(registry))
	defer database.Close()

	store := inventory.NewStore(database, inventory.NewStoreMonitor(registry))
	if err := store.Init(); err != nil {
		panic(err)
	}
	db.NewMigrater(database).Migrate()

	mqttClient := mqtt.NewClient(config.GetMQTTConfig(), mqtt.NewMQTTMonitor(registry))
	if err := mqttClient.Connect(); err != nil {
		panic("failed to connect to mqtt broker: " + err.Error())
	}
	defer mqttClient.Disconnect()

	syncConfig := config.GetSyncConfig()
	monitor := sync.NewSyncMonitor(registry)
	keystoneAPI := baremetal.NewKeystoneAPI(syncConfig.Keystone)
	pipeline := sync.Pipeline{
		Monitor: monitor,
		Syncers: []sync.Datasource{
			baremetal.NewSyncer(database, monitor, keystoneAPI, syncConfig.Baremetal, mqttClient),
		},
		IntervalSeconds: syncConfig.IntervalSeconds,
	}
	pipeline.Init(ctx)
	go pipeline.SyncPeriodic(ctx)

	// Run the api server after all other tasks have been started. This
	// function blocks until the context is canceled.
	api.NewAPI(config.GetAPIConfig(), store, api.NewAPIMonitor(registry)).Init(ctx)
}
