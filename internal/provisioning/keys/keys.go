package keys

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/mkrspc/iotporg/internal/config"
	"github.com/mkrspc/iotporg/internal/credentials"
	"github.com/mkrspc/iotporg/internal/devices"
	"github.com/mkrspc/iotporg/internal/platform/arm"
	"github.com/mkrspc/iotporg/internal/provisioning"
)

const phaseName = "function-keys"

// Phase lists the default function key for each device.
type Phase struct{}

func NewPhase() *Phase {
	return &Phase{}
}

func (p *Phase) Name() string { return phaseName }

func (p *Phase) Enabled(ctx *provisioning.Context) bool {
	return ctx.Config.Keys.Enabled
}

func (p *Phase) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config

	sp, err := credentials.Load(cfg.Keys.CredentialsFile)
	if err != nil {
		return err
	}

	deviceIDs, err := deviceIDs(ctx)
	if err != nil {
		return err
	}
	if len(deviceIDs) == 0 {
		ctx.Observer.Printf("No devices; no function keys to list")
		return nil
	}

	appName, err := ctx.FunctionAppName()
	if err != nil {
		return err
	}

	lister, err := ctx.KeyLister(ctx, sp)
	if err != nil {
		return fmt.Errorf("failed to create management client: %w", err)
	}

	for i, id := range deviceIDs {
		keys, err := lister.ListFunctionKeys(ctx, arm.FunctionRef{
			SubscriptionID: sp.SubscriptionID,
			ResourceGroup:  cfg.ResourceGroup.Name,
			App:            appName,
			Function:       id,
		})
		if err != nil {
			return err
		}
		ctx.State.FunctionKeys = append(ctx.State.FunctionKeys, provisioning.FunctionKey{Device: id, Key: keys.Default})
		ctx.Observer.Printf("%s: %s", id, keys.Default)
		ctx.Observer.Progress(phaseName, i+1, len(deviceIDs))
	}
	return nil
}

// deviceIDs prefers devices created in this run, then the device table
// from an earlier run, then the configured name list.
func deviceIDs(ctx *provisioning.Context) ([]string, error) {
	if len(ctx.State.Devices) > 0 {
		return devices.IDs(ctx.State.Devices), nil
	}

	records, err := devices.ReadTable(ctx.Config.Devices.OutputFile)
	switch {
	case err == nil && len(records) > 0:
		return devices.IDs(records), nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}

	if len(ctx.State.DeviceNames) > 0 {
		return ctx.State.DeviceNames, nil
	}
	d := ctx.Config.Devices
	return devices.ResolveNames(d.NamesFile, d.Prefix, d.Count)
}

// NewKeyListerFactory returns the factory used outside tests: a
// client-credentials token source against the configured authority and a
// management client on top of it.
func NewKeyListerFactory(cfg config.KeysConfig, httpTimeout time.Duration) provisioning.KeyListerFactory {
	return func(ctx context.Context, sp *credentials.ServicePrincipal) (arm.KeyLister, error) {
		httpClient := &http.Client{Timeout: httpTimeout}
		ts := arm.TokenSource(ctx, sp, cfg.AuthorityURL, cfg.ManagementURL, httpClient)
		return arm.NewClient(ctx, ts, cfg.ManagementURL, cfg.APIVersion, httpTimeout), nil
	}
}
