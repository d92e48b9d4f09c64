package cli

import (
	"context"
	"fmt"
	"strings"
)

// Response is a canned result for MockRunner.
type Response struct {
	Output string
	Err    error
}

// MockRunner records every command and answers from Responses, keyed by
// the command string with its first matching prefix.
type MockRunner struct {
	Calls     []Command
	Responses map[string]Response

	// RunFunc overrides Responses when set.
	RunFunc func(ctx context.Context, cmd Command) ([]byte, error)
}

// Run implements Runner.
func (m *MockRunner) Run(ctx context.Context, cmd Command) ([]byte, error) {
	m.Calls = append(m.Calls, cmd)
	if m.RunFunc != nil {
		return m.RunFunc(ctx, cmd)
	}

	line := cmd.String()
	best := ""
	for prefix := range m.Responses {
		if strings.HasPrefix(line, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return []byte("{}"), nil
	}

	resp := m.Responses[best]
	if resp.Err != nil {
		return nil, resp.Err
	}
	return []byte(resp.Output), nil
}

// CallsWithPrefix returns recorded commands whose string form starts with prefix.
func (m *MockRunner) CallsWithPrefix(prefix string) []Command {
	var out []Command
	for _, c := range m.Calls {
		if strings.HasPrefix(c.String(), prefix) {
			out = append(out, c)
		}
	}
	return out
}

// Lines returns every recorded command as a string.
func (m *MockRunner) Lines() []string {
	out := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		out[i] = fmt.Sprint(c)
	}
	return out
}
