package handlers

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkrspc/iotporg/internal/config"
	"github.com/mkrspc/iotporg/internal/config/wizard"
)

func TestInit_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iotporg.yaml")

	var err error
	output := captureOutput(func() {
		err = Init(context.Background(), path, false, false)
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Configuration saved!")
	assert.Contains(t, output, "iotporg provision")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultResourceGroup, cfg.ResourceGroup.Name)
	assert.False(t, cfg.Hub.Create)
	assert.True(t, cfg.Keys.Enabled)
}

func TestInit_ExistingFileWithoutForce(t *testing.T) {
	saveAndRestoreFactories(t)

	fileExists = func(string) bool { return true }
	saved := false
	saveConfig = func(*config.Config, string) error {
		saved = true
		return nil
	}

	err := Init(context.Background(), "iotporg.yaml", false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
	assert.False(t, saved)
}

func TestInit_ExistingFileWithForce(t *testing.T) {
	saveAndRestoreFactories(t)

	fileExists = func(string) bool { return true }
	var savedPath string
	saveConfig = func(_ *config.Config, path string) error {
		savedPath = path
		return nil
	}

	var err error
	captureOutput(func() {
		err = Init(context.Background(), "iotporg.yaml", true, false)
	})
	require.NoError(t, err)
	assert.Equal(t, "iotporg.yaml", savedPath)
}

func TestInit_Interactive(t *testing.T) {
	saveAndRestoreFactories(t)

	fileExists = func(string) bool { return false }
	runWizard = func(context.Context) (*wizard.WizardResult, error) {
		result := wizard.NewWizardResult()
		result.ResourceGroup = "wizard-rg"
		result.CreateHub = true
		result.CreateDevices = true
		result.DeviceSource = wizard.DeviceSourceGenerated
		result.DeviceCount = 3
		result.DevicePrefix = "porg"
		return result, nil
	}
	var saved *config.Config
	saveConfig = func(cfg *config.Config, _ string) error {
		saved = cfg
		return nil
	}

	var err error
	output := captureOutput(func() {
		err = Init(context.Background(), "iotporg.yaml", false, true)
	})
	require.NoError(t, err)
	assert.Contains(t, output, "This wizard chooses which provisioning stages to run.")

	require.NotNil(t, saved)
	assert.Equal(t, "wizard-rg", saved.ResourceGroup.Name)
	assert.True(t, saved.Hub.Create)
	assert.Equal(t, 3, saved.Devices.Count)
	assert.Equal(t, "porg", saved.Devices.Prefix)
	assert.Empty(t, saved.Devices.NamesFile)
}

func TestInit_WizardCanceled(t *testing.T) {
	saveAndRestoreFactories(t)

	fileExists = func(string) bool { return false }
	runWizard = func(context.Context) (*wizard.WizardResult, error) {
		return nil, errors.New("user aborted")
	}

	var err error
	captureOutput(func() {
		err = Init(context.Background(), "iotporg.yaml", false, true)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard canceled")
}

func TestInit_SaveError(t *testing.T) {
	saveAndRestoreFactories(t)

	fileExists = func(string) bool { return false }
	saveConfig = func(*config.Config, string) error { return errors.New("read-only file system") }

	err := Init(context.Background(), "iotporg.yaml", false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config")
}

func TestEnabledLabel(t *testing.T) {
	assert.Equal(t, "enabled", enabledLabel(true))
	assert.Equal(t, "disabled", enabledLabel(false))
}
