// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package mqtt

import (
	"slices"
	"sync"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
)

// Mock mqtt client that records published topics and can be used for testing.
// Safe for concurrent use, since publishes may come from goroutines.
type MockClient struct {
	lock sync.Mutex
	// Topics published so far, in order.
	publishedTopics []string
}

func (m *MockClient) Connect() error {
	return nil
}

func (m *MockClient) Publish(topic string, payload any) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.publishedTopics = append(m.publishedTopics, topic)
}

// The topics published so far, as a copy.
func (m *MockClient) PublishedTopics() []string {
	m.lock.Lock()
	defer m.lock.Unlock()
	return slices.Clone(m.publishedTopics)
}

func (m *MockClient) Disconnect() {
	// Do nothing
}

func (m *MockClient) Subscribe(topic string, callback pahomqtt.MessageHandler) error {
	return nil
}
