package wizard

import "github.com/charmbracelet/huh"

// LocationOption represents an Azure region.
type LocationOption struct {
	Value       string
	Label       string
	Description string
}

// Locations contains the regions offered for the resource group.
// Values use the display form accepted by `az group create`.
var Locations = []LocationOption{
	{Value: "West US", Label: "westus", Description: "California"},
	{Value: "West US 2", Label: "westus2", Description: "Washington"},
	{Value: "East US", Label: "eastus", Description: "Virginia"},
	{Value: "Central US", Label: "centralus", Description: "Iowa"},
	{Value: "West Europe", Label: "westeurope", Description: "Netherlands"},
	{Value: "North Europe", Label: "northeurope", Description: "Ireland"},
	{Value: "Southeast Asia", Label: "southeastasia", Description: "Singapore"},
}

// Hub SKUs offered by the wizard.
const (
	SKUFree     = "F1"
	SKUStandard = "S1"
)

// HubSKUOptions contains the IoT Hub tiers offered by the wizard.
var HubSKUOptions = []huh.Option[string]{
	huh.NewOption("F1 (Free, one per subscription)", SKUFree),
	huh.NewOption("S1 (Standard)", SKUStandard),
}

// Device name sources.
const (
	DeviceSourceFile      = "file"
	DeviceSourceGenerated = "generated"
)

// DeviceSourceOptions contains the ways device names can be supplied.
var DeviceSourceOptions = []huh.Option[string]{
	huh.NewOption("Read names from a file (one per line)", DeviceSourceFile),
	huh.NewOption("Generate {prefix}-{n} names", DeviceSourceGenerated),
}

// RuntimeOption is a function worker runtime and the version used with it.
type RuntimeOption struct {
	Value   string
	Label   string
	Version string
}

// Runtimes contains the function app worker runtimes offered by the wizard.
var Runtimes = []RuntimeOption{
	{Value: "python", Label: "Python", Version: "3.7"},
	{Value: "node", Label: "Node.js", Version: "10"},
	{Value: "dotnet", Label: ".NET", Version: "2"},
}

// RuntimeVersion returns the runtime version paired with runtime, or ""
// for an unknown runtime.
func RuntimeVersion(runtime string) string {
	for _, r := range Runtimes {
		if r.Value == runtime {
			return r.Version
		}
	}
	return ""
}

// LocationsToOptions converts the Locations slice to huh options.
func LocationsToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(Locations))
	for i, loc := range Locations {
		opts[i] = huh.NewOption(loc.Label+" - "+loc.Description, loc.Value)
	}
	return opts
}

// RuntimesToOptions converts the Runtimes slice to huh options.
func RuntimesToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(Runtimes))
	for i, r := range Runtimes {
		opts[i] = huh.NewOption(r.Label+" "+r.Version, r.Value)
	}
	return opts
}
