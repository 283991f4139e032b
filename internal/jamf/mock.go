package jamf

import (
	"context"
)

// MockClient for testing
type MockClient struct {
	ListFunc func(ctx context.Context, ep Endpoint) ([]Summary, error)
	GetFunc  func(ctx context.Context, ep Endpoint, id int) (map[string]any, error)
}

func (m *MockClient) List(ctx context.Context, ep Endpoint) ([]Summary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, ep)
	}
	return nil, nil
}

func (m *MockClient) Get(ctx context.Context, ep Endpoint, id int) (map[string]any, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, ep, id)
	}
	return nil, nil
}
