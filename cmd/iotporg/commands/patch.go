package commands

import (
	"github.com/spf13/cobra"

	"github.com/mkrspc/iotporg/cmd/iotporg/handlers"
)

// Patch returns the command that patches installed ESP8266 board files.
//
// Flags:
//
//	--arduino-dir: Arduino data directory (default: platform location)
//	--yes, -y: Answer yes to every confirmation
func Patch() *cobra.Command {
	var (
		arduinoDir string
		assumeYes  bool
	)

	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Patch ESP8266 board files for the Azure IoT Arduino SDK",
		Long: `Patch every installed version of the ESP8266 Arduino board package
so sketches build against https://github.com/Azure/azure-iot-arduino.

For each version directory:

  - cores/esp8266/Arduino.h: the "#define round(x)" macro is commented out
  - platform.txt: build.extra_flags is replaced with the flags the SDK needs

Each file is copied to <file>.orig before it is rewritten. If a backup
already exists you are asked before it is overwritten; answering no stops
without further changes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Patch(cmd.Context(), arduinoDir, assumeYes)
		},
	}

	cmd.Flags().StringVar(&arduinoDir, "arduino-dir", "", "Arduino data directory (default: platform location)")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to every confirmation")

	return cmd
}
