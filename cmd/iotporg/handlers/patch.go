// Package handlers implements the business logic for CLI commands.
//
// Handlers are called by command definitions in the commands package and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/mkrspc/iotporg/internal/patcher"
	"github.com/mkrspc/iotporg/internal/prompt"
)

const noChangesMessage = "No changes made... exiting"

const patchIntro = "This will attempt to automatically update your ESP8266 board files" +
	" to work with Azure IoT Hub for the repo https://github.com/Azure/azure-iot-arduino" +
	"\nPlease refer to the license agreement there." +
	"\nThis will update all installed versions of board libraries for ESP8266." +
	"\nDo you wish to proceed?"

// Factory function variables for patch - can be replaced in tests.
var (
	// newConfirmer returns the confirmation primitive for this terminal.
	newConfirmer = func(assumeYes bool) prompt.Confirmer {
		return prompt.New(os.Stdin, os.Stdout, assumeYes)
	}

	// userHomeDir locates the Arduino data directory when none is given.
	userHomeDir = os.UserHomeDir

	// boardVersions lists installed ESP8266 package versions.
	boardVersions = patcher.BoardVersions
)

// Patch rewrites the ESP8266 board files of every installed version.
// Declining any confirmation is a clean exit.
func Patch(ctx context.Context, arduinoDir string, assumeYes bool) error {
	confirm := newConfirmer(assumeYes)

	ok, err := confirm.Confirm(ctx, patchIntro)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(noChangesMessage)
		return nil
	}
	fmt.Println("Proceeding")

	if arduinoDir == "" {
		home, err := userHomeDir()
		if err != nil {
			return fmt.Errorf("failed to locate home directory: %w", err)
		}
		arduinoDir, err = patcher.DefaultArduinoDir(runtime.GOOS, home)
		if err != nil {
			return err
		}
	}
	log.Printf("Arduino board path for platform %s is: %s", runtime.GOOS, arduinoDir)

	versions, err := boardVersions(arduinoDir)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		log.Printf("No ESP8266 board versions installed under %s", arduinoDir)
		return nil
	}

	results, err := patcher.New(confirm, log.Default()).PatchBoards(ctx, versions)
	if errors.Is(err, prompt.ErrDeclined) {
		fmt.Println(noChangesMessage)
		return nil
	}
	if err != nil {
		return err
	}

	printPatchSummary(results)
	return nil
}

func printPatchSummary(results []patcher.Result) {
	var modified, unchanged, skipped int
	for _, r := range results {
		switch {
		case r.Skipped:
			skipped++
		case r.Modified:
			modified++
		default:
			unchanged++
		}
	}
	fmt.Println()
	fmt.Printf("Patched %d file(s), %d already up to date, %d not found.\n", modified, unchanged, skipped)
}
