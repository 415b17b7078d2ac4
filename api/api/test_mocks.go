/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package
 * Authors: Zachary Bower
 */

package api

import (
	"context"

	"teammatch-bot/api/match"
	"teammatch-bot/api/registration"
	"teammatch-bot/api/shared"
	"teammatch-bot/api/store"
)

// MockStore implements the store Interface for testing
type MockStore struct {
	// Storage for mock data
	Saved     *store.Snapshot
	SaveCount int
	LoadSnap  *store.Snapshot

	// Error injection for testing error paths
	SaveSnapshotError error
	LoadSnapshotError error
}

// NewMockStore creates a new MockStore with no persisted snapshot
func NewMockStore() *MockStore {
	return &MockStore{}
}

// SaveSnapshot mock implementation
func (m *MockStore) SaveSnapshot(snap store.Snapshot) error {
	if m.SaveSnapshotError != nil {
		return m.SaveSnapshotError
	}
	m.Saved = &snap
	m.SaveCount++
	return nil
}

// LoadSnapshot mock implementation
func (m *MockStore) LoadSnapshot() (store.Snapshot, bool, error) {
	if m.LoadSnapshotError != nil {
		return store.Snapshot{}, false, m.LoadSnapshotError
	}
	if m.LoadSnap == nil {
		return store.Snapshot{}, false, nil
	}
	return m.LoadSnap.Migrate(), true, nil
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// mockClient implements minimal client interface
type mockClient struct{}

func (m *mockClient) Disconnect(ctx context.Context) error {
	return nil
}

// Implement getter methods for the store Interface
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return &mockDatabase{name: "test_db"}
}

func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}

// Ensure MockStore implements the store Interface
var _ store.Interface = (*MockStore)(nil)

// MockNotifier implements Notifier for testing
type MockNotifier struct {
	// Delivered records match notices per user in delivery order
	Delivered map[string][]shared.MatchNotice
	// Timeouts records timeout notices in delivery order
	Timeouts []string

	// Error injection for testing error paths
	NotifyMatchError   map[string]error
	NotifyTimeoutError error
}

// NewMockNotifier creates a new MockNotifier
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{
		Delivered:        make(map[string][]shared.MatchNotice),
		NotifyMatchError: make(map[string]error),
	}
}

// NotifyMatch mock implementation
func (m *MockNotifier) NotifyMatch(userID string, notice shared.MatchNotice) error {
	if err := m.NotifyMatchError[userID]; err != nil {
		return err
	}
	m.Delivered[userID] = append(m.Delivered[userID], notice)
	return nil
}

// NotifyTimeout mock implementation
func (m *MockNotifier) NotifyTimeout(userID string) error {
	if m.NotifyTimeoutError != nil {
		return m.NotifyTimeoutError
	}
	m.Timeouts = append(m.Timeouts, userID)
	return nil
}

// Ensure MockNotifier implements Notifier
var _ Notifier = (*MockNotifier)(nil)

// NewTestAPI creates an API wired to mocks, bypassing NewAPI's database
// connection
func NewTestAPI(ms *MockStore, mn *MockNotifier) *API {
	return &API{
		Store:    ms,
		Notifier: mn,
		State:    match.NewState(),
		Sessions: registration.NewTracker(registration.DefaultTTL),
		work:     make(chan sweepRequest, 16),
		quit:     make(chan struct{}),
	}
}
