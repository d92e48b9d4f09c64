// Package functions scaffolds one HTTP-triggered function per device,
// creates the storage account and consumption-plan function app, and
// publishes the project.
package functions
