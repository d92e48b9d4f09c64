package wizard

import (
	"context"
	"fmt"

	"github.com/mkrspc/iotporg/internal/config"
)

// WizardResult holds all the answers from the interactive wizard.
type WizardResult struct {
	ResourceGroup string
	Location      string

	CreateHub bool
	HubSKU    string

	// Devices: names come from NamesFile or are generated from
	// DevicePrefix and DeviceCount, depending on DeviceSource.
	CreateDevices bool
	DeviceSource  string
	NamesFile     string
	DeviceCount   int
	DevicePrefix  string

	CreateFunctionApp bool
	Runtime           string

	FetchKeys       bool
	CredentialsFile string
}

// NewWizardResult returns a result pre-filled with the configuration
// defaults, so every form starts from the same values `iotporg init` writes.
func NewWizardResult() *WizardResult {
	d := config.Default()
	return &WizardResult{
		ResourceGroup:   d.ResourceGroup.Name,
		Location:        d.ResourceGroup.Location,
		HubSKU:          d.Hub.SKU,
		DeviceSource:    DeviceSourceFile,
		NamesFile:       d.Devices.NamesFile,
		DeviceCount:     1,
		DevicePrefix:    d.Devices.Prefix,
		Runtime:         d.FunctionApp.Runtime,
		FetchKeys:       d.Keys.Enabled,
		CredentialsFile: d.Keys.CredentialsFile,
	}
}

// RunWizard runs the interactive configuration wizard.
// The context is used for cancellation support (e.g., Ctrl+C).
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := NewWizardResult()

	if err := runResourceGroupGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("resource group: %w", err)
	}

	if err := runHubGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("hub: %w", err)
	}

	if err := runDevicesGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("devices: %w", err)
	}

	if err := runFunctionAppGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("function app: %w", err)
	}

	if err := runKeysGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("function keys: %w", err)
	}

	return result, nil
}
