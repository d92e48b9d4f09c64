package arm

import "context"

// MockKeyLister is a mock implementation of KeyLister.
type MockKeyLister struct {
	ListFunctionKeysFunc func(ctx context.Context, ref FunctionRef) (*Keys, error)

	Refs []FunctionRef
}

func (m *MockKeyLister) ListFunctionKeys(ctx context.Context, ref FunctionRef) (*Keys, error) {
	m.Refs = append(m.Refs, ref)
	if m.ListFunctionKeysFunc != nil {
		return m.ListFunctionKeysFunc(ctx, ref)
	}
	key := "key-" + ref.Function
	return &Keys{Default: key, All: map[string]string{"default": key}}, nil
}
