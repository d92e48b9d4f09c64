package commands

import (
	"github.com/spf13/cobra"

	"github.com/mkrspc/iotporg/cmd/iotporg/handlers"
)

// Init returns the command that writes a default configuration file.
func Init() *cobra.Command {
	var (
		outputPath  string
		force       bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default provisioning configuration",
		Long: `Write a configuration file with every option set to its default.

Hub, device and function app creation start disabled. Enable the stages
you need before running 'iotporg provision', or use --interactive to
choose them in a wizard.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath, force, interactive)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "iotporg.yaml", "Output file path")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Choose stages in an interactive wizard")

	return cmd
}
