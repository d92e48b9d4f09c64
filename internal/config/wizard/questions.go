package wizard

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

var (
	resourceGroupRegex = regexp.MustCompile(`^[-\w.()]{0,89}[-\w()]$`)
	devicePrefixRegex  = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
)

const maxDeviceCount = 1000

// runResourceGroupGroup prompts for the resource group name and region.
func runResourceGroupGroup(ctx context.Context, result *WizardResult) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Resource Group").
				Description("Created or updated; every resource is placed here").
				Placeholder("my-iot-demo").
				Value(&result.ResourceGroup).
				Validate(validateResourceGroup),
			huh.NewSelect[string]().
				Title("Location").
				Description("Azure region of the resource group").
				Options(LocationsToOptions()...).
				Value(&result.Location),
		).Title("Resource Group"),
	).RunWithContext(ctx)
}

// runHubGroup prompts for IoT Hub creation and tier.
func runHubGroup(ctx context.Context, result *WizardResult) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Create an IoT Hub?").
				Description("Answer no to reuse the hub recorded in the state file").
				Value(&result.CreateHub),
		).Title("IoT Hub"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	if !result.CreateHub {
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Hub Tier").
				Options(HubSKUOptions...).
				Value(&result.HubSKU),
		).Title("IoT Hub"),
	).RunWithContext(ctx)
}

// runDevicesGroup prompts for device identity creation and where names come from.
func runDevicesGroup(ctx context.Context, result *WizardResult) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Create device identities?").
				Description("Connection strings are written to a CSV file").
				Value(&result.CreateDevices),
			huh.NewSelect[string]().
				Title("Device Names").
				Options(DeviceSourceOptions...).
				Value(&result.DeviceSource),
		).Title("Devices"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	if result.DeviceSource == DeviceSourceFile {
		return huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Names File").
					Placeholder("IoT_device_name.txt").
					Value(&result.NamesFile).
					Validate(validateRequiredPath),
			).Title("Devices"),
		).RunWithContext(ctx)
	}

	countInput := strconv.Itoa(result.DeviceCount)
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Device Count").
				Value(&countInput).
				Validate(validateDeviceCount),
			huh.NewInput().
				Title("Name Prefix").
				Placeholder("device").
				Value(&result.DevicePrefix).
				Validate(validateDevicePrefix),
		).Title("Devices"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	result.DeviceCount, _ = strconv.Atoi(strings.TrimSpace(countInput))
	return nil
}

// runFunctionAppGroup prompts for function app creation and runtime.
func runFunctionAppGroup(ctx context.Context, result *WizardResult) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Create and publish a function app?").
				Description("Requires Azure Functions Core Tools (func)").
				Value(&result.CreateFunctionApp),
			huh.NewSelect[string]().
				Title("Worker Runtime").
				Options(RuntimesToOptions()...).
				Value(&result.Runtime),
		).Title("Function App"),
	).RunWithContext(ctx)
}

// runKeysGroup prompts for function key retrieval.
func runKeysGroup(ctx context.Context, result *WizardResult) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Print function keys?").
				Description("Uses a service principal file from `az ad sp create-for-rbac --sdk-auth`").
				Value(&result.FetchKeys),
		).Title("Function Keys"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	if !result.FetchKeys {
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Service Principal File").
				Placeholder("local-sp.json").
				Value(&result.CredentialsFile).
				Validate(validateRequiredPath),
		).Title("Function Keys"),
	).RunWithContext(ctx)
}

func validateResourceGroup(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errResourceGroupRequired
	}
	if !resourceGroupRegex.MatchString(s) {
		return errResourceGroupInvalid
	}
	return nil
}

func validateDeviceCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > maxDeviceCount {
		return errDeviceCountInvalid
	}
	return nil
}

func validateDevicePrefix(s string) error {
	if !devicePrefixRegex.MatchString(strings.TrimSpace(s)) {
		return errDevicePrefixInvalid
	}
	return nil
}

func validateRequiredPath(s string) error {
	if strings.TrimSpace(s) == "" {
		return errPathRequired
	}
	return nil
}
