package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mkrspc/iotporg/internal/config"
	"github.com/mkrspc/iotporg/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive huh wizard.
	runWizard = wizard.RunWizard

	// saveConfig writes the config to a file.
	saveConfig = config.Save
)

// Init writes a provisioning configuration to outputPath. With
// interactive set the values come from the wizard, otherwise every
// option is left at its default. An existing file is only replaced when
// force is set.
func Init(ctx context.Context, outputPath string, force, interactive bool) error {
	if fileExists(outputPath) && !force {
		return fmt.Errorf("%s already exists; use --force to overwrite it", outputPath)
	}

	cfg := config.Default()
	if interactive {
		printWelcome()

		result, err := runWizard(ctx)
		if err != nil {
			return fmt.Errorf("wizard canceled: %w", err)
		}
		cfg = wizard.BuildConfig(result)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := saveConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)
	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("iotporg - Azure IoT Hub demo provisioning")
	fmt.Println("=========================================")
	fmt.Println()
	fmt.Println("This wizard chooses which provisioning stages to run.")
	fmt.Println("Everything else keeps its default and can be edited afterwards.")
	fmt.Println()
}

// printInitSuccess prints the stages the config enables and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Stages")
	fmt.Println("------")
	fmt.Printf("  Resource group: %s (%s)\n", cfg.ResourceGroup.Name, cfg.ResourceGroup.Location)
	fmt.Printf("  IoT Hub:        %s\n", enabledLabel(cfg.Hub.Create))
	fmt.Printf("  Devices:        %s\n", enabledLabel(cfg.Devices.Create))
	fmt.Printf("  Function app:   %s\n", enabledLabel(cfg.FunctionApp.Create))
	fmt.Printf("  Function keys:  %s\n", enabledLabel(cfg.Keys.Enabled))
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Log in to Azure:")
	fmt.Println("     az login")
	fmt.Println()
	fmt.Printf("  2. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  3. Provision:")
	fmt.Println("     iotporg provision")
	fmt.Println()
}

func enabledLabel(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
