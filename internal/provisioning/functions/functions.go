package functions

import (
	"fmt"

	"github.com/mkrspc/iotporg/internal/devices"
	"github.com/mkrspc/iotporg/internal/platform/azcli"
	"github.com/mkrspc/iotporg/internal/provisioning"
	"github.com/mkrspc/iotporg/internal/state"
	"github.com/mkrspc/iotporg/internal/util/naming"
)

const phaseName = "function-app"

// Phase creates and publishes the function app.
type Phase struct{}

func NewPhase() *Phase {
	return &Phase{}
}

func (p *Phase) Name() string { return phaseName }

func (p *Phase) Enabled(ctx *provisioning.Context) bool {
	return ctx.Config.FunctionApp.Create
}

func (p *Phase) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config
	fa := cfg.FunctionApp
	appName, err := ctx.FunctionAppName()
	if err != nil {
		return err
	}
	fa.Name = appName

	records, err := devices.ReadTable(cfg.Devices.OutputFile)
	if err != nil {
		return err
	}

	appDir, err := ctx.FuncTools.Init(ctx, fa.Dir, fa.Name, fa.Runtime)
	if err != nil {
		return fmt.Errorf("failed to scaffold function project %s: %w", fa.Name, err)
	}
	ctx.State.FunctionAppDir = appDir
	ctx.Observer.Printf("Function project created in %s", appDir)

	for i, rec := range records {
		if err := ctx.FuncTools.NewFunction(ctx, appDir, rec.DeviceID, fa.Template); err != nil {
			return fmt.Errorf("failed to create function %s: %w", rec.DeviceID, err)
		}
		ctx.State.Functions = append(ctx.State.Functions, rec.DeviceID)
		ctx.Observer.Progress(phaseName, i+1, len(records))
	}

	storage, err := ctx.ResolveName(state.KeyStorageAccount, fa.StorageAccount, naming.StorageAccount)
	if err != nil {
		return fmt.Errorf("failed to resolve storage account name: %w", err)
	}
	ctx.State.StorageAccount = storage

	provisioning.LogResourceCreating(ctx.Observer, phaseName, "storage account", storage)
	if err := ctx.AzCLI.CreateStorageAccount(ctx, azcli.StorageAccountSpec{
		Name:          storage,
		Location:      fa.StorageLocation,
		ResourceGroup: cfg.ResourceGroup.Name,
		SKU:           fa.StorageSKU,
	}); err != nil {
		return err
	}
	provisioning.LogResourceCreated(ctx.Observer, phaseName, "storage account", storage)

	provisioning.LogResourceCreating(ctx.Observer, phaseName, "function app", fa.Name)
	if err := ctx.AzCLI.CreateFunctionApp(ctx, azcli.FunctionAppSpec{
		Name:             fa.Name,
		ResourceGroup:    cfg.ResourceGroup.Name,
		Location:         fa.Location,
		OSType:           fa.OSType,
		Runtime:          fa.Runtime,
		RuntimeVersion:   fa.RuntimeVersion,
		FunctionsVersion: fa.FunctionsVersion,
		StorageAccount:   storage,
	}); err != nil {
		return err
	}
	provisioning.LogResourceCreated(ctx.Observer, phaseName, "function app", fa.Name)

	delay := ctx.Timeouts.ConvergenceDelay
	ctx.Observer.Printf("Sleeping for %v to allow cloud resources to provision...", delay)
	if err := ctx.Sleep(ctx, delay); err != nil {
		return err
	}

	ctx.Observer.Printf("Deploying function to Azure...")
	if err := ctx.FuncTools.Publish(ctx, appDir, fa.Name); err != nil {
		return fmt.Errorf("failed to publish %s: %w", fa.Name, err)
	}
	return nil
}
