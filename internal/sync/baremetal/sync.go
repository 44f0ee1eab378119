// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package baremetal

import (
	"context"
	"slices"

	"github.com/cobaltcore-dev/rackyard/internal/db"
	"github.com/cobaltcore-dev/rackyard/internal/mqtt"
	"github.com/cobaltcore-dev/rackyard/internal/sync"
	"github.com/go-gorp/gorp"
)

// Syncer for the OpenStack baremetal services.
type Syncer struct {
	// Database to store the baremetal objects in.
	DB db.DB
	// Monitor to track the syncer.
	Mon sync.Monitor
	// Configuration for the baremetal syncer.
	Conf BaremetalConf
	// Baremetal API client to fetch the data.
	API BaremetalAPI
	// MQTT client to publish mqtt data.
	MqttClient mqtt.Client
}

// Create a new OpenStack baremetal syncer.
func NewSyncer(db db.DB, mon sync.Monitor, k KeystoneAPI, conf BaremetalConf, mqttClient mqtt.Client) *Syncer {
	return &Syncer{
		DB:         db,
		Mon:        mon,
		Conf:       conf,
		API:        newBaremetalAPI(mon, k, conf),
		MqttClient: mqttClient,
	}
}

// Init the baremetal syncer.
func (s *Syncer) Init(ctx context.Context) {
	s.API.Init(ctx)
	tables := []*gorp.TableMap{}
	// Only add the tables that are configured in the yaml conf.
	if slices.Contains(s.Conf.Types, "nodes") {
		tables = append(tables, s.DB.AddTable(Node{}))
	}
	if slices.Contains(s.Conf.Types, "ironic_nodes") {
		tables = append(tables, s.DB.AddTable(IronicNode{}))
	}
	if slices.Contains(s.Conf.Types, "ports") {
		tables = append(tables, s.DB.AddTable(Port{}))
	}
	if err := s.DB.CreateTable(tables...); err != nil {
		panic(err)
	}
}

// Sync the baremetal objects and publish triggers.
func (s *Syncer) Sync(ctx context.Context) error {
	// Only sync the objects that are configured in the yaml conf.
	if slices.Contains(s.Conf.Types, "nodes") {
		if _, err := s.SyncNodes(ctx); err != nil {
			return err
		}
		go s.MqttClient.Publish(TriggerNodesSynced, "")
	}
	if slices.Contains(s.Conf.Types, "ironic_nodes") {
		if _, err := s.SyncIronicNodes(ctx); err != nil {
			return err
		}
		go s.MqttClient.Publish(TriggerIronicNodesSynced, "")
	}
	if slices.Contains(s.Conf.Types, "ports") {
		if _, err := s.SyncPorts(ctx); err != nil {
			return err
		}
		go s.MqttClient.Publish(TriggerPortsSynced, "")
	}
	return nil
}

// Sync the baremetal nodes into the database.
func (s *Syncer) SyncNodes(ctx context.Context) ([]Node, error) {
	label := Node{}.TableName()
	allNodes, err := s.API.GetAllNodes(ctx)
	if err != nil {
		return nil, err
	}
	if err := db.ReplaceAll(s.DB, allNodes...); err != nil {
		return nil, err
	}
	if s.Mon.PipelineObjectsGauge != nil {
		gauge := s.Mon.PipelineObjectsGauge.WithLabelValues(label)
		gauge.Set(float64(len(allNodes)))
	}
	if s.Mon.PipelineRequestProcessedCounter != nil {
		counter := s.Mon.PipelineRequestProcessedCounter.WithLabelValues(label)
		counter.Inc()
	}
	return allNodes, nil
}

// Sync the ironic nodes into the database.
func (s *Syncer) SyncIronicNodes(ctx context.Context) ([]IronicNode, error) {
	label := IronicNode{}.TableName()
	ironicNodes, err := s.API.GetAllIronicNodes(ctx)
	if err != nil {
		return nil, err
	}
	if err := db.ReplaceAll(s.DB, ironicNodes...); err != nil {
		return nil, err
	}
	if s.Mon.PipelineObjectsGauge != nil {
		gauge := s.Mon.PipelineObjectsGauge.WithLabelValues(label)
		gauge.Set(float64(len(ironicNodes)))
	}
	if s.Mon.PipelineRequestProcessedCounter != nil {
		counter := s.Mon.PipelineRequestProcessedCounter.WithLabelValues(label)
		counter.Inc()
	}
	return ironicNodes, nil
}

// Sync the ironic ports into the database.
func (s *Syncer) SyncPorts(ctx context.Context) ([]Port, error) {
	label := Port{}.TableName()
	allPorts, err := s.API.GetAllPorts(ctx)
	if err != nil {
		return nil, err
	}
	if err := db.ReplaceAll(s.DB, allPorts...); err != nil {
		return nil, err
	}
	if s.Mon.PipelineObjectsGauge != nil {
		gauge := s.Mon.PipelineObjectsGauge.WithLabelValues(label)
		gauge.Set(float64(len(allPorts)))
	}
	if s.Mon.PipelineRequestProcessedCounter != nil {
		counter := s.Mon.PipelineRequestProcessedCounter.WithLabelValues(label)
		counter.Inc()
	}
	return allPorts, nil
}
