// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package messaging

import "sync"

// MockNatsConn implements INatsConn for testing.
type MockNatsConn struct {
	mu         sync.Mutex
	connected  bool
	publishErr error
	published  []PublishedMessage
}

// PublishedMessage captures one Publish call.
type PublishedMessage struct {
	Subject string
	Data    []byte
}

// NewMockNatsConn creates a connected mock.
func NewMockNatsConn() *MockNatsConn {
	return &MockNatsConn{connected: true}
}

func (m *MockNatsConn) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

func (m *MockNatsConn) Publish(subj string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.publishErr != nil {
		return m.publishErr
	}
	m.published = append(m.published, PublishedMessage{Subject: subj, Data: data})
	return nil
}

// Published returns a copy of all captured messages.
func (m *MockNatsConn) Published() []PublishedMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PublishedMessage, len(m.published))
	copy(out, m.published)
	return out
}

// SetPublishError makes subsequent Publish calls fail.
func (m *MockNatsConn) SetPublishError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publishErr = err
}
