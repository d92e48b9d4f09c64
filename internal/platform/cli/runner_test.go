package cli

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell tests require a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found in PATH")
	}
}

func TestCommand_String(t *testing.T) {
	cmd := Command{Name: "func", Args: []string{"new", "--name", "d1", "--template", "HTTP trigger"}}
	assert.Equal(t, `func new --name d1 --template "HTTP trigger"`, cmd.String())
}

func TestExecRunner_Success(t *testing.T) {
	requireShell(t)
	out, err := NewExecRunner(0).Run(context.Background(), Command{Name: "sh", Args: []string{"-c", `printf '{"a":1}'`}})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(out))
}

func TestExecRunner_WorkingDirectory(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	out, err := NewExecRunner(0).Run(context.Background(), Command{Dir: dir, Name: "sh", Args: []string{"-c", "pwd -P"}})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestExecRunner_Failure(t *testing.T) {
	requireShell(t)
	_, err := NewExecRunner(0).Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo 'ResourceGroupNotFound' >&2; exit 3"}})
	require.Error(t, err)
	assert.True(t, IsCommandError(err))

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 3, cmdErr.ExitCode)
	assert.Contains(t, cmdErr.Error(), "ResourceGroupNotFound")
	assert.Contains(t, cmdErr.Error(), "exit code 3")
}

func TestExecRunner_MissingBinary(t *testing.T) {
	_, err := NewExecRunner(0).Run(context.Background(), Command{Name: "definitely-not-a-real-binary-xyz"})
	require.Error(t, err)

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, -1, cmdErr.ExitCode)
}

func TestExecRunner_Timeout(t *testing.T) {
	requireShell(t)
	_, err := NewExecRunner(50*time.Millisecond).Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "sleep 5"}})
	require.Error(t, err)
	assert.True(t, IsCommandError(err))
}

func TestMockRunner(t *testing.T) {
	m := &MockRunner{Responses: map[string]Response{
		"az iot":                            {Output: `{"generic":true}`},
		"az iot hub device-identity create": {Output: `{"deviceId":"d1"}`},
		"az storage":                        {Err: errors.New("quota exceeded")},
	}}

	out, err := m.Run(context.Background(), Command{Name: "az", Args: []string{"iot", "hub", "device-identity", "create", "-d", "d1"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"deviceId":"d1"}`, string(out), "longest prefix wins")

	_, err = m.Run(context.Background(), Command{Name: "az", Args: []string{"storage", "account", "create"}})
	require.EqualError(t, err, "quota exceeded")

	out, err = m.Run(context.Background(), Command{Name: "func", Args: []string{"init"}})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))

	assert.Len(t, m.CallsWithPrefix("az "), 2)
	assert.Equal(t, "func init", m.Lines()[2])
}
