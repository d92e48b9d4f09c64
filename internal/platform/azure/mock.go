package azure

import "context"

// MockResourceGroupManager is a mock implementation of ResourceGroupManager.
type MockResourceGroupManager struct {
	EnsureResourceGroupFunc func(ctx context.Context, name, location string) (*ResourceGroup, error)

	Ensured []string
}

func (m *MockResourceGroupManager) EnsureResourceGroup(ctx context.Context, name, location string) (*ResourceGroup, error) {
	m.Ensured = append(m.Ensured, name)
	if m.EnsureResourceGroupFunc != nil {
		return m.EnsureResourceGroupFunc(ctx, name, location)
	}
	return &ResourceGroup{Name: name, Location: location, Created: true}, nil
}
