// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package baremetal

// Trigger executed when new baremetal nodes are available.
const TriggerNodesSynced = "triggers/sync/baremetal/types/nodes"

// Trigger executed when new ironic nodes are available.
const TriggerIronicNodesSynced = "triggers/sync/baremetal/types/ironic_nodes"

// Trigger executed when new ports are available.
const TriggerPortsSynced = "triggers/sync/baremetal/types/ports"
