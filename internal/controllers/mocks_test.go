package controllers_test

import (
	"context"
	"sync"

	"github.com/oakmere/gatehouse/internal/authclient"
	"github.com/oakmere/gatehouse/internal/pubsub"
)

// mockAuthAPI implements controllers.AuthAPI with overridable functions and
// call counters.
type mockAuthAPI struct {
	mu sync.Mutex

	loginFn         func(ctx context.Context, email, password string, rememberMe bool) (authclient.LoginResult, error)
	requestResetFn  func(ctx context.Context, email string) error
	completeResetFn func(ctx context.Context, token, newPassword string) error

	loginCalls         int
	requestResetCalls  int
	completeResetCalls int
}

func (m *mockAuthAPI) Login(ctx context.Context, email, password string, rememberMe bool) (authclient.LoginResult, error) {
	m.mu.Lock()
	m.loginCalls++
	fn := m.loginFn
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, email, password, rememberMe)
	}
	return authclient.LoginResult{
		User:      authclient.User{ID: "u-1", Email: email},
		AuthToken: "tok-123",
	}, nil
}

func (m *mockAuthAPI) RequestReset(ctx context.Context, email string) error {
	m.mu.Lock()
	m.requestResetCalls++
	fn := m.requestResetFn
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, email)
	}
	return nil
}

func (m *mockAuthAPI) CompleteReset(ctx context.Context, token, newPassword string) error {
	m.mu.Lock()
	m.completeResetCalls++
	fn := m.completeResetFn
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, token, newPassword)
	}
	return nil
}

func (m *mockAuthAPI) calls() (login, requestReset, completeReset int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loginCalls, m.requestResetCalls, m.completeResetCalls
}

// mockNavigator records replace-history navigations.
type mockNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (m *mockNavigator) Replace(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paths = append(m.paths, path)
}

func (m *mockNavigator) replaced() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, len(m.paths))
	copy(result, m.paths)
	return result
}

// mockPublisher records published snapshots.
type mockPublisher struct {
	mu       sync.Mutex
	messages []pubsub.Message
}

func (m *mockPublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockPublisher) Close() error {
	return nil
}

func (m *mockPublisher) phases() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []string
	for _, msg := range m.messages {
		result = append(result, msg.Metadata["phase"])
	}
	return result
}
