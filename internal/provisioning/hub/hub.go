package hub

import (
	"fmt"

	"github.com/mkrspc/iotporg/internal/platform/azcli"
	"github.com/mkrspc/iotporg/internal/provisioning"
	"github.com/mkrspc/iotporg/internal/state"
	"github.com/mkrspc/iotporg/internal/util/naming"
)

const phaseHub = "hub"

// HubPhase resolves the hub name and creates the hub when hub.create is set.
//
// The name is resolved on every run, even when creation is off, because
// the device stage addresses the hub by name. The first run draws a random
// suffix and persists the result; later runs read it back.
type HubPhase struct{}

func NewHubPhase() *HubPhase {
	return &HubPhase{}
}

func (p *HubPhase) Name() string { return phaseHub }

func (p *HubPhase) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config

	name, err := ctx.ResolveName(state.KeyHubName, cfg.Hub.Name, func(suffix int) string {
		return naming.Hub(cfg.ResourceGroup.Name, suffix)
	})
	if err != nil {
		return fmt.Errorf("failed to resolve hub name: %w", err)
	}
	ctx.State.HubName = name
	ctx.Observer.Printf("Using IoT hub name %s", name)

	if !cfg.Hub.Create {
		provisioning.LogResourceExists(ctx.Observer, phaseHub, "iot hub", name)
		return nil
	}

	provisioning.LogResourceCreating(ctx.Observer, phaseHub, "iot hub", name)
	created, err := ctx.AzCLI.CreateHub(ctx, azcli.HubSpec{
		Name:           name,
		ResourceGroup:  cfg.ResourceGroup.Name,
		SKU:            cfg.Hub.SKU,
		PartitionCount: cfg.Hub.PartitionCount,
	})
	if err != nil {
		provisioning.LogResourceFailed(ctx.Observer, phaseHub, "iot hub", name, err)
		return err
	}
	provisioning.LogResourceCreated(ctx.Observer, phaseHub, "iot hub", created)
	return nil
}
