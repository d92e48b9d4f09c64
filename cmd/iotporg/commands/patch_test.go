package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatch(t *testing.T) {
	cmd := Patch()

	require.NotNil(t, cmd)
	assert.Equal(t, "patch", cmd.Use)
	assert.Contains(t, cmd.Long, "platform.txt")
	assert.NotNil(t, cmd.RunE)
}

func TestPatch_Flags(t *testing.T) {
	cmd := Patch()

	dir := cmd.Flags().Lookup("arduino-dir")
	require.NotNil(t, dir, "arduino-dir flag should exist")
	assert.Equal(t, "", dir.DefValue)

	yes := cmd.Flags().Lookup("yes")
	require.NotNil(t, yes, "yes flag should exist")
	assert.Equal(t, "y", yes.Shorthand)
	assert.Equal(t, "false", yes.DefValue)
}
