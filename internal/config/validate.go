package config

import (
	"fmt"
	"regexp"

	"github.com/hashicorp/go-multierror"
)

var (
	// hubNameRegex follows the IoT Hub naming rules: 3-50 alphanumerics or hyphens, not ending in a hyphen.
	hubNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]{1,48}[A-Za-z0-9]$`)

	storageAccountRegex = regexp.MustCompile(`^[a-z0-9]{3,24}$`)

	validHubSKUs = map[string]bool{
		"F1": true,
		"B1": true, "B2": true, "B3": true,
		"S1": true, "S2": true, "S3": true,
	}
)

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.ResourceGroup.Name == "" {
		result = multierror.Append(result, fmt.Errorf("resource_group.name is required"))
	}
	if c.ResourceGroup.Location == "" {
		result = multierror.Append(result, fmt.Errorf("resource_group.location is required"))
	}
	if c.StateFile == "" {
		result = multierror.Append(result, fmt.Errorf("state_file is required"))
	}

	if err := c.validateHub(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.validateDevices(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.validateFunctionApp(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.validateKeys(); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

func (c *Config) validateHub() error {
	if c.Hub.Name != "" && !hubNameRegex.MatchString(c.Hub.Name) {
		return fmt.Errorf("hub.name %q must be 3-50 alphanumeric characters or hyphens", c.Hub.Name)
	}
	if !validHubSKUs[c.Hub.SKU] {
		return fmt.Errorf("hub.sku %q is not a valid IoT Hub SKU", c.Hub.SKU)
	}
	if c.Hub.PartitionCount < 2 || c.Hub.PartitionCount > 32 {
		return fmt.Errorf("hub.partition_count must be between 2 and 32, got %d", c.Hub.PartitionCount)
	}
	return nil
}

func (c *Config) validateDevices() error {
	if c.Devices.Count < 0 {
		return fmt.Errorf("devices.count must not be negative, got %d", c.Devices.Count)
	}
	if c.Devices.OutputFile == "" {
		return fmt.Errorf("devices.output_file is required")
	}
	return nil
}

func (c *Config) validateFunctionApp() error {
	fa := c.FunctionApp
	if !fa.Create {
		return nil
	}
	if fa.StorageAccount != "" && !storageAccountRegex.MatchString(fa.StorageAccount) {
		return fmt.Errorf("function_app.storage_account %q must be 3-24 lowercase alphanumeric characters", fa.StorageAccount)
	}
	return nil
}

func (c *Config) validateKeys() error {
	if !c.Keys.Enabled {
		return nil
	}
	if c.Keys.CredentialsFile == "" {
		return fmt.Errorf("keys.credentials_file is required when keys.enabled is true")
	}
	return nil
}
