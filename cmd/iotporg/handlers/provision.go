package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mkrspc/iotporg/internal/config"
	"github.com/mkrspc/iotporg/internal/platform/azcli"
	"github.com/mkrspc/iotporg/internal/platform/azure"
	"github.com/mkrspc/iotporg/internal/platform/cli"
	"github.com/mkrspc/iotporg/internal/platform/functools"
	"github.com/mkrspc/iotporg/internal/provisioning"
	"github.com/mkrspc/iotporg/internal/provisioning/devices"
	"github.com/mkrspc/iotporg/internal/provisioning/functions"
	"github.com/mkrspc/iotporg/internal/provisioning/hub"
	"github.com/mkrspc/iotporg/internal/provisioning/keys"
	"github.com/mkrspc/iotporg/internal/state"
	"github.com/mkrspc/iotporg/internal/util/prerequisites"
)

// Factory function variables for provision - can be replaced in tests.
var (
	// findConfigFile finds iotporg.yaml in the current directory.
	findConfigFile = config.FindConfigFile

	// loadConfigFile loads config from file (for testing injection).
	loadConfigFile = config.LoadFile

	// checkPrereqs verifies az (and func when needed) are on PATH.
	checkPrereqs = prerequisites.CheckProvisioning

	// newRunner creates the process runner shared by az and func.
	newRunner = func(timeout time.Duration) cli.Runner {
		return cli.NewExecRunner(timeout)
	}

	// newResourceGroups creates the ARM resource group client.
	newResourceGroups provisioning.ResourceGroupsFactory = func(subscriptionID string) (azure.ResourceGroupManager, error) {
		return azure.NewResourceGroups(subscriptionID)
	}

	// newKeyListerFactory builds the function key client factory.
	newKeyListerFactory = keys.NewKeyListerFactory

	// newStore opens the state file.
	newStore = func(path string) state.Store {
		return state.NewFileStore(path)
	}
)

// Provision runs the provisioning stages described by the config file.
//
// Stages run strictly in order: resource group, az extension, hub,
// devices, function app, function keys. Disabled stages are skipped and
// the first failing stage ends the run. Already created resources are
// left in place, so a failed run can be repeated after fixing the cause.
//
// When metricsFile (or metrics_file in the config) is set, stage and
// command metrics are written there even if the run failed.
func Provision(ctx context.Context, configPath, metricsFile string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if metricsFile != "" {
		cfg.MetricsFile = metricsFile
	}

	if err := checkPrerequisites(cfg); err != nil {
		return err
	}

	log.Printf("Provisioning into resource group %s (%s)", cfg.ResourceGroup.Name, cfg.ResourceGroup.Location)

	pctx := newProvisioningContext(ctx, cfg)

	runErr := provisioning.RunPhases(pctx, provisionPhases())

	if cfg.MetricsFile != "" {
		if err := pctx.Metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Printf("Warning: failed to write metrics to %s: %v", cfg.MetricsFile, err)
		}
	}

	if runErr != nil {
		return runErr
	}

	fmt.Print(renderProvisionSummary(cfg, pctx.State))
	return nil
}

// loadConfig loads and validates the provisioning configuration.
// If configPath is empty, it looks for iotporg.yaml in the current directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		path, err := findConfigFile()
		if err != nil {
			return nil, fmt.Errorf("no config file found: %w\nRun 'iotporg init' to create one", err)
		}
		configPath = path
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log.Printf("Using config: %s", configPath)
	return cfg, nil
}

// checkPrerequisites fails early when a required CLI is missing.
func checkPrerequisites(cfg *config.Config) error {
	results := checkPrereqs(cfg.FunctionApp.Create)
	if results.HasErrors() {
		return results.Error()
	}
	return nil
}

// newProvisioningContext wires the real clients into a provisioning context.
// Every az and func invocation goes through the instrumented runner.
func newProvisioningContext(ctx context.Context, cfg *config.Config) *provisioning.Context {
	timeouts := config.LoadTimeouts()
	metrics := provisioning.NewMetrics()
	runner := provisioning.InstrumentRunner(newRunner(timeouts.Command), metrics)

	pctx := provisioning.NewContext(ctx, cfg, newStore(cfg.StateFile), provisioning.Clients{
		AzCLI:          azcli.New(runner),
		FuncTools:      functools.New(runner),
		ResourceGroups: newResourceGroups,
		KeyLister:      newKeyListerFactory(cfg.Keys, timeouts.HTTP),
	})
	pctx.Timeouts = timeouts
	pctx.Metrics = metrics
	return pctx
}

// provisionPhases returns the stages in execution order.
func provisionPhases() []provisioning.Phase {
	return []provisioning.Phase{
		hub.NewResourceGroupPhase(),
		hub.NewExtensionPhase(),
		hub.NewHubPhase(),
		devices.NewPhase(),
		functions.NewPhase(),
		keys.NewPhase(),
	}
}
