package azcli

import "context"

// MockClient is a mock implementation of Client.
type MockClient struct {
	SubscriptionIDFunc         func(ctx context.Context) (string, error)
	AddExtensionFunc           func(ctx context.Context, name string) error
	CreateHubFunc              func(ctx context.Context, spec HubSpec) (string, error)
	CreateDeviceIdentityFunc   func(ctx context.Context, hub, deviceID string) error
	DeviceConnectionStringFunc func(ctx context.Context, hub, deviceID string) (string, error)
	CreateStorageAccountFunc   func(ctx context.Context, spec StorageAccountSpec) error
	CreateFunctionAppFunc      func(ctx context.Context, spec FunctionAppSpec) error
}

func (m *MockClient) SubscriptionID(ctx context.Context) (string, error) {
	if m.SubscriptionIDFunc != nil {
		return m.SubscriptionIDFunc(ctx)
	}
	return "00000000-0000-0000-0000-000000000000", nil
}

func (m *MockClient) AddExtension(ctx context.Context, name string) error {
	if m.AddExtensionFunc != nil {
		return m.AddExtensionFunc(ctx, name)
	}
	return nil
}

func (m *MockClient) CreateHub(ctx context.Context, spec HubSpec) (string, error) {
	if m.CreateHubFunc != nil {
		return m.CreateHubFunc(ctx, spec)
	}
	return spec.Name, nil
}

func (m *MockClient) CreateDeviceIdentity(ctx context.Context, hub, deviceID string) error {
	if m.CreateDeviceIdentityFunc != nil {
		return m.CreateDeviceIdentityFunc(ctx, hub, deviceID)
	}
	return nil
}

func (m *MockClient) DeviceConnectionString(ctx context.Context, hub, deviceID string) (string, error) {
	if m.DeviceConnectionStringFunc != nil {
		return m.DeviceConnectionStringFunc(ctx, hub, deviceID)
	}
	return "HostName=" + hub + ".azure-devices.net;DeviceId=" + deviceID + ";SharedAccessKey=mock", nil
}

func (m *MockClient) CreateStorageAccount(ctx context.Context, spec StorageAccountSpec) error {
	if m.CreateStorageAccountFunc != nil {
		return m.CreateStorageAccountFunc(ctx, spec)
	}
	return nil
}

func (m *MockClient) CreateFunctionApp(ctx context.Context, spec FunctionAppSpec) error {
	if m.CreateFunctionAppFunc != nil {
		return m.CreateFunctionAppFunc(ctx, spec)
	}
	return nil
}
