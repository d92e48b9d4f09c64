package wizard

import (
	"strings"

	"github.com/mkrspc/iotporg/internal/config"
)

// BuildConfig creates a Config from the wizard result. Anything the
// wizard does not ask about keeps its default.
func BuildConfig(result *WizardResult) *config.Config {
	cfg := config.Default()

	cfg.ResourceGroup.Name = strings.TrimSpace(result.ResourceGroup)
	cfg.ResourceGroup.Location = result.Location

	cfg.Hub.Create = result.CreateHub
	if result.HubSKU != "" {
		cfg.Hub.SKU = result.HubSKU
	}

	cfg.Devices.Create = result.CreateDevices
	switch result.DeviceSource {
	case DeviceSourceGenerated:
		cfg.Devices.NamesFile = ""
		cfg.Devices.Count = result.DeviceCount
		cfg.Devices.Prefix = strings.TrimSpace(result.DevicePrefix)
	default:
		cfg.Devices.NamesFile = strings.TrimSpace(result.NamesFile)
	}

	cfg.FunctionApp.Create = result.CreateFunctionApp
	if v := RuntimeVersion(result.Runtime); v != "" {
		cfg.FunctionApp.Runtime = result.Runtime
		cfg.FunctionApp.RuntimeVersion = v
	}

	cfg.Keys.Enabled = result.FetchKeys
	if result.FetchKeys {
		cfg.Keys.CredentialsFile = strings.TrimSpace(result.CredentialsFile)
	}

	return cfg
}
