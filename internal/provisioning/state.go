package provisioning

import "github.com/mkrspc/iotporg/internal/devices"

// FunctionKey is the default key of one device's HTTP function.
type FunctionKey struct {
	Device string
	Key    string
}

// State holds the shared results of provisioning stages.
// Later stages read what earlier ones produced.
type State struct {
	SubscriptionID string

	ResourceGroupID string
	HubName         string

	// DeviceNames is the resolved device list, whether or not devices were created.
	DeviceNames []string
	// Devices holds the records created during this run, in order.
	Devices []devices.Record

	FunctionApp    string
	FunctionAppDir string
	StorageAccount string
	Functions      []string

	FunctionKeys []FunctionKey
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}
