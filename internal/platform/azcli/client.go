// Package azcli wraps the Azure CLI subcommands used during provisioning.
//
// Every call runs `az ... --output json` through a cli.Runner and reads
// the fields it needs from the JSON result with gjson; the rest of the
// output is treated as opaque.
package azcli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/mkrspc/iotporg/internal/platform/cli"
)

const binary = "az"

// HubSpec describes an IoT Hub to create.
type HubSpec struct {
	Name           string
	ResourceGroup  string
	SKU            string
	PartitionCount int
}

// StorageAccountSpec describes a storage account to create.
type StorageAccountSpec struct {
	Name          string
	Location      string
	ResourceGroup string
	SKU           string
}

// FunctionAppSpec describes a consumption-plan function app to create.
type FunctionAppSpec struct {
	Name             string
	ResourceGroup    string
	Location         string
	OSType           string
	Runtime          string
	RuntimeVersion   string
	FunctionsVersion string
	StorageAccount   string
}

// Client is the set of az operations the pipeline depends on.
type Client interface {
	SubscriptionID(ctx context.Context) (string, error)
	AddExtension(ctx context.Context, name string) error
	CreateHub(ctx context.Context, spec HubSpec) (string, error)
	CreateDeviceIdentity(ctx context.Context, hub, deviceID string) error
	DeviceConnectionString(ctx context.Context, hub, deviceID string) (string, error)
	CreateStorageAccount(ctx context.Context, spec StorageAccountSpec) error
	CreateFunctionApp(ctx context.Context, spec FunctionAppSpec) error
}

// CLI implements Client on top of a cli.Runner.
type CLI struct {
	runner cli.Runner
}

// New returns a CLI using runner.
func New(runner cli.Runner) *CLI {
	return &CLI{runner: runner}
}

// SubscriptionID returns the subscription of the active az login.
func (c *CLI) SubscriptionID(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "account", "show")
	if err != nil {
		return "", err
	}
	return requireField(out, "id", "account show")
}

// AddExtension installs a CLI extension. az treats an installed extension as success.
func (c *CLI) AddExtension(ctx context.Context, name string) error {
	_, err := c.run(ctx, "extension", "add", "--name", name)
	return err
}

// CreateHub creates an IoT Hub and returns the name reported by Azure.
func (c *CLI) CreateHub(ctx context.Context, spec HubSpec) (string, error) {
	out, err := c.run(ctx,
		"iot", "hub", "create",
		"-n", spec.Name,
		"--resource-group", spec.ResourceGroup,
		"--sku", spec.SKU,
		"--partition-count", strconv.Itoa(spec.PartitionCount),
	)
	if err != nil {
		return "", err
	}

	if name := gjson.GetBytes(out, "name"); name.Exists() {
		return name.String(), nil
	}
	return spec.Name, nil
}

// CreateDeviceIdentity registers a device identity under hub.
func (c *CLI) CreateDeviceIdentity(ctx context.Context, hub, deviceID string) error {
	_, err := c.run(ctx, "iot", "hub", "device-identity", "create", "-n", hub, "-d", deviceID)
	return err
}

// DeviceConnectionString returns the primary connection string of a device.
func (c *CLI) DeviceConnectionString(ctx context.Context, hub, deviceID string) (string, error) {
	out, err := c.run(ctx, "iot", "hub", "device-identity", "show-connection-string", "-d", deviceID, "-n", hub)
	if err != nil {
		return "", err
	}
	return requireField(out, "connectionString", "show-connection-string")
}

// CreateStorageAccount creates the storage account backing a function app.
func (c *CLI) CreateStorageAccount(ctx context.Context, spec StorageAccountSpec) error {
	_, err := c.run(ctx,
		"storage", "account", "create",
		"--name", spec.Name,
		"--location", spec.Location,
		"--resource-group", spec.ResourceGroup,
		"--sku", spec.SKU,
	)
	return err
}

// CreateFunctionApp creates a consumption-plan function app.
func (c *CLI) CreateFunctionApp(ctx context.Context, spec FunctionAppSpec) error {
	_, err := c.run(ctx,
		"functionapp", "create",
		"--resource-group", spec.ResourceGroup,
		"--os-type", spec.OSType,
		"--consumption-plan-location", spec.Location,
		"--runtime", spec.Runtime,
		"--runtime-version", spec.RuntimeVersion,
		"--functions-version", spec.FunctionsVersion,
		"--name", spec.Name,
		"--storage-account", spec.StorageAccount,
	)
	return err
}

func (c *CLI) run(ctx context.Context, args ...string) ([]byte, error) {
	args = append(args, "--output", "json")
	return c.runner.Run(ctx, cli.Command{Name: binary, Args: args})
}

// requireField extracts a string field from JSON output.
func requireField(out []byte, path, operation string) (string, error) {
	if !gjson.ValidBytes(out) {
		return "", fmt.Errorf("%s returned invalid JSON", operation)
	}
	v := gjson.GetBytes(out, path)
	if !v.Exists() || v.String() == "" {
		return "", fmt.Errorf("%s output has no %q field", operation, path)
	}
	return v.String(), nil
}
