// Package config defines the provisioning configuration shared by every
// pipeline stage.
//
// The [Config] struct is built once at process start, from an iotporg.yaml
// file plus defaults, and is passed explicitly to each stage. Flags such as
// Hub.Create or Devices.Create gate the non-idempotent stages; naming
// parameters (resource group, SKU, partition count) shape the resources
// those stages create.
package config
