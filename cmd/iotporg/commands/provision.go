package commands

import (
	"github.com/spf13/cobra"

	"github.com/mkrspc/iotporg/cmd/iotporg/handlers"
)

// Provision returns the command that runs the Azure provisioning pipeline.
func Provision() *cobra.Command {
	var (
		configPath  string
		metricsFile string
	)

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Provision the resource group, IoT Hub, devices and function app",
		Long: `Provision Azure resources for the demo, in order:

  1. resource-group   create or update the resource group
  2. extension        install the az CLI azure-iot extension
  3. hub              resolve the hub name and create the hub (hub.create)
  4. devices          create device identities and the connection string table (devices.create)
  5. function-app     scaffold, create and publish the function app (function_app.create)
  6. function-keys    print each device function's default key (keys.enabled)

The first failure stops the run. Nothing is rolled back.

Requires the az CLI to be logged in. The function app stage also requires
Azure Functions Core Tools.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Provision(cmd.Context(), configPath, metricsFile)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: iotporg.yaml)")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this file")

	return cmd
}
