package functools

import (
	"context"
	"path/filepath"
)

// MockTools is a mock implementation of Tools.
type MockTools struct {
	InitFunc        func(ctx context.Context, parentDir, name, runtime string) (string, error)
	NewFunctionFunc func(ctx context.Context, appDir, name, template string) error
	PublishFunc     func(ctx context.Context, appDir, appName string) error

	Functions []string
	Published []string
}

func (m *MockTools) Init(ctx context.Context, parentDir, name, runtime string) (string, error) {
	if m.InitFunc != nil {
		return m.InitFunc(ctx, parentDir, name, runtime)
	}
	return filepath.Join(parentDir, name), nil
}

func (m *MockTools) NewFunction(ctx context.Context, appDir, name, template string) error {
	m.Functions = append(m.Functions, name)
	if m.NewFunctionFunc != nil {
		return m.NewFunctionFunc(ctx, appDir, name, template)
	}
	return nil
}

func (m *MockTools) Publish(ctx context.Context, appDir, appName string) error {
	m.Published = append(m.Published, appName)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, appDir, appName)
	}
	return nil
}
