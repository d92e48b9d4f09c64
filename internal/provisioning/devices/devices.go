package devices

import (
	"errors"
	"fmt"

	devtable "github.com/mkrspc/iotporg/internal/devices"
	"github.com/mkrspc/iotporg/internal/provisioning"
)

const phaseName = "devices"

// Phase creates every resolved device identity in order. For each device
// it creates the identity, reads back its connection string and appends a
// row to the table before moving on. A failure leaves earlier rows and
// identities in place.
type Phase struct{}

func NewPhase() *Phase {
	return &Phase{}
}

func (p *Phase) Name() string { return phaseName }

func (p *Phase) Enabled(ctx *provisioning.Context) bool {
	return ctx.Config.Devices.Create
}

func (p *Phase) Provision(ctx *provisioning.Context) (err error) {
	cfg := ctx.Config.Devices
	hub := ctx.State.HubName
	if hub == "" {
		return errors.New("hub name has not been resolved")
	}

	names, err := devtable.ResolveNames(cfg.NamesFile, cfg.Prefix, cfg.Count)
	if err != nil {
		return err
	}
	ctx.State.DeviceNames = names
	if len(names) == 0 {
		ctx.Observer.Printf("No devices to create")
		return nil
	}

	table, err := devtable.CreateTable(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := table.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close device table: %w", cerr)
		}
	}()

	for i, name := range names {
		provisioning.LogResourceCreating(ctx.Observer, phaseName, "device identity", name)
		if err := ctx.AzCLI.CreateDeviceIdentity(ctx, hub, name); err != nil {
			provisioning.LogResourceFailed(ctx.Observer, phaseName, "device identity", name, err)
			return fmt.Errorf("failed to create device %s: %w", name, err)
		}

		connStr, err := ctx.AzCLI.DeviceConnectionString(ctx, hub, name)
		if err != nil {
			return fmt.Errorf("failed to get connection string for device %s: %w", name, err)
		}

		rec := devtable.Record{DeviceID: name, ConnectionString: connStr}
		if err := table.Append(rec); err != nil {
			return err
		}
		ctx.State.Devices = append(ctx.State.Devices, rec)

		provisioning.LogResourceCreated(ctx.Observer, phaseName, "device identity", name)
		ctx.Metrics.DeviceCreated()
		ctx.Observer.Progress(phaseName, i+1, len(names))
	}

	ctx.Observer.Printf("Wrote %d connection strings to %s", table.Rows(), cfg.OutputFile)
	return nil
}
