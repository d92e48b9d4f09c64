// Package provisioning runs the Azure provisioning pipeline.
//
// # Subpackages
//
//   - hub/ resource group, az CLI extension and IoT Hub
//   - devices/ device identities and the connection string table
//   - functions/ the function app scaffold, its Azure resources and publish
//   - keys/ function key retrieval through a service principal
//
// # Core Types
//
// Context carries configuration, run state, platform clients and the observer.
// Phase is a provisioning stage with Name() and Provision() methods.
// State accumulates results from each stage (hub name, device records, keys).
package provisioning
