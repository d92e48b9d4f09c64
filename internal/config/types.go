package config

// Config is the complete provisioning configuration.
type Config struct {
	// SubscriptionID is the Azure subscription used for the resource group.
	// Falls back to AZURE_SUBSCRIPTION_ID and then to the active az CLI account.
	SubscriptionID string `mapstructure:"subscription_id" yaml:"subscription_id,omitempty"`

	ResourceGroup ResourceGroupConfig `mapstructure:"resource_group" yaml:"resource_group"`
	Hub           HubConfig           `mapstructure:"hub" yaml:"hub"`
	Devices       DevicesConfig       `mapstructure:"devices" yaml:"devices"`
	FunctionApp   FunctionAppConfig   `mapstructure:"function_app" yaml:"function_app"`
	Keys          KeysConfig          `mapstructure:"keys" yaml:"keys"`

	// StateFile persists values that must survive across runs (the hub name).
	StateFile string `mapstructure:"state_file" yaml:"state_file"`

	// MetricsFile, when set, receives run metrics in Prometheus text format.
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file,omitempty"`
}

// ResourceGroupConfig is where every resource is created.
type ResourceGroupConfig struct {
	Name     string `mapstructure:"name" yaml:"name"`
	Location string `mapstructure:"location" yaml:"location"`
}

// HubConfig controls IoT Hub creation.
type HubConfig struct {
	// Create creates the hub. When false the hub is assumed to exist.
	Create bool `mapstructure:"create" yaml:"create"`

	// Name pins the hub name. Hub names are global across Azure, so when
	// empty a name is generated once and persisted in the state file.
	Name string `mapstructure:"name" yaml:"name,omitempty"`

	SKU            string `mapstructure:"sku" yaml:"sku"`
	PartitionCount int    `mapstructure:"partition_count" yaml:"partition_count"`

	// Extension is the az CLI extension providing the iot subcommands.
	Extension string `mapstructure:"extension" yaml:"extension"`
}

// DevicesConfig controls device identity creation.
type DevicesConfig struct {
	Create bool `mapstructure:"create" yaml:"create"`

	// NamesFile is a newline-delimited list of device identifiers. An
	// explicit empty value switches to synthesized names.
	NamesFile string `mapstructure:"names_file" yaml:"names_file"`

	// Count and Prefix synthesize {prefix}-{i} names when no list is supplied.
	Count  int    `mapstructure:"count" yaml:"count"`
	Prefix string `mapstructure:"prefix" yaml:"prefix"`

	// OutputFile receives one (device_id, connection_string) row per device.
	OutputFile string `mapstructure:"output_file" yaml:"output_file"`
}

// FunctionAppConfig controls the consumption-plan function app.
type FunctionAppConfig struct {
	Create bool `mapstructure:"create" yaml:"create"`

	// Name of the function app. An explicit empty value generates
	// {resource_group}-app-NNNNN once and persists it.
	Name             string `mapstructure:"name" yaml:"name"`
	Location         string `mapstructure:"location" yaml:"location"`
	OSType           string `mapstructure:"os_type" yaml:"os_type"`
	Runtime          string `mapstructure:"runtime" yaml:"runtime"`
	RuntimeVersion   string `mapstructure:"runtime_version" yaml:"runtime_version"`
	FunctionsVersion string `mapstructure:"functions_version" yaml:"functions_version"`
	Template         string `mapstructure:"template" yaml:"template"`

	// Dir is where the function project is scaffolded. Defaults to the
	// current directory.
	Dir string `mapstructure:"dir" yaml:"dir,omitempty"`

	// StorageAccount must be globally unique, alphanumeric and at most 24
	// characters. A random name is generated when empty.
	StorageAccount  string `mapstructure:"storage_account" yaml:"storage_account,omitempty"`
	StorageLocation string `mapstructure:"storage_location" yaml:"storage_location"`
	StorageSKU      string `mapstructure:"storage_sku" yaml:"storage_sku"`
}

// KeysConfig controls function key retrieval through a service principal.
type KeysConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// CredentialsFile is the output of `az ad sp create-for-rbac --sdk-auth`.
	CredentialsFile string `mapstructure:"credentials_file" yaml:"credentials_file"`

	AuthorityURL  string `mapstructure:"authority_url" yaml:"authority_url"`
	ManagementURL string `mapstructure:"management_url" yaml:"management_url"`
	APIVersion    string `mapstructure:"api_version" yaml:"api_version"`
}

// Default returns a configuration populated with defaults only.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	cfg.Devices.NamesFile = DefaultDeviceNamesFile
	cfg.FunctionApp.Name = DefaultFunctionAppName
	cfg.Keys.Enabled = true
	return cfg
}

// ApplyDefaults fills empty fields. Boolean flags are left untouched.
func (c *Config) ApplyDefaults() {
	setDefault(&c.StateFile, DefaultStateFile)

	setDefault(&c.ResourceGroup.Name, DefaultResourceGroup)
	setDefault(&c.ResourceGroup.Location, DefaultResourceGroupLocation)

	setDefault(&c.Hub.SKU, DefaultHubSKU)
	setDefault(&c.Hub.Extension, DefaultHubExtension)
	if c.Hub.PartitionCount == 0 {
		c.Hub.PartitionCount = DefaultHubPartitionCount
	}

	setDefault(&c.Devices.Prefix, DefaultDevicePrefix)
	setDefault(&c.Devices.OutputFile, DefaultDeviceOutputFile)

	fa := &c.FunctionApp
	setDefault(&fa.Location, DefaultFunctionAppLocation)
	setDefault(&fa.OSType, DefaultFunctionOSType)
	setDefault(&fa.Runtime, DefaultFunctionRuntime)
	setDefault(&fa.RuntimeVersion, DefaultRuntimeVersion)
	setDefault(&fa.FunctionsVersion, DefaultFunctionsVersion)
	setDefault(&fa.Template, DefaultFunctionTemplate)
	setDefault(&fa.StorageLocation, DefaultStorageLocation)
	setDefault(&fa.StorageSKU, DefaultStorageSKU)

	setDefault(&c.Keys.CredentialsFile, DefaultCredentialsFile)
	setDefault(&c.Keys.AuthorityURL, DefaultAuthorityURL)
	setDefault(&c.Keys.ManagementURL, DefaultManagementURL)
	setDefault(&c.Keys.APIVersion, DefaultKeysAPIVersion)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
