package config

// Defaults mirror the values the demo was originally provisioned with.
const (
	DefaultConfigFilename = "iotporg.yaml"
	DefaultStateFile      = ".iotporg-state.json"

	DefaultResourceGroup         = "MKRSPC-iot-porg"
	DefaultResourceGroupLocation = "West US"

	DefaultHubSKU            = "F1"
	DefaultHubPartitionCount = 2
	DefaultHubExtension      = "azure-iot"

	DefaultDeviceNamesFile  = "IoT_device_name.txt"
	DefaultDevicePrefix     = "device"
	DefaultDeviceOutputFile = "device_connection_strings.csv"

	DefaultFunctionAppName     = "porg-app2"
	DefaultFunctionAppLocation = "westus"
	DefaultFunctionRuntime     = "python"
	DefaultRuntimeVersion      = "3.7"
	DefaultFunctionsVersion    = "2"
	DefaultFunctionOSType      = "Linux"
	DefaultFunctionTemplate    = "HTTP trigger"
	DefaultStorageLocation     = "westus"
	DefaultStorageSKU          = "Standard_LRS"

	DefaultCredentialsFile = "local-sp.json"
	DefaultAuthorityURL    = "https://login.microsoftonline.com"
	DefaultManagementURL   = "https://management.azure.com"
	DefaultKeysAPIVersion  = "2018-02-01"
)
