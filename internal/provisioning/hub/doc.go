// Package hub provisions the resource group, the az CLI IoT extension and
// the IoT Hub.
package hub
