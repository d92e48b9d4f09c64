// Package main is the entry point for the iotporg CLI.
//
// iotporg prepares an Azure IoT Hub demo: it patches installed ESP8266
// Arduino board files for the Azure IoT SDK and provisions the resource
// group, IoT Hub, device identities and per-device function app.
//
// Commands: patch, provision, init.
//
// For detailed usage information, run:
//
//	iotporg --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkrspc/iotporg/cmd/iotporg/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	// Ctrl+C stops provisioning between commands instead of mid-write.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Root().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
