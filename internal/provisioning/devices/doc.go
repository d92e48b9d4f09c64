// Package devices registers device identities in the IoT Hub and records
// each device's connection string in the device table.
package devices
