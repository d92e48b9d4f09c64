package hub

import (
	"fmt"
	"os"

	"github.com/mkrspc/iotporg/internal/provisioning"
)

const phaseResourceGroup = "resource-group"

// SubscriptionEnvVar is consulted when the configuration has no subscription.
const SubscriptionEnvVar = "AZURE_SUBSCRIPTION_ID"

// ResourceGroupPhase creates or updates the resource group.
type ResourceGroupPhase struct{}

// NewResourceGroupPhase creates the resource group stage.
func NewResourceGroupPhase() *ResourceGroupPhase {
	return &ResourceGroupPhase{}
}

func (p *ResourceGroupPhase) Name() string { return phaseResourceGroup }

func (p *ResourceGroupPhase) Provision(ctx *provisioning.Context) error {
	rgCfg := ctx.Config.ResourceGroup

	subscriptionID, err := resolveSubscription(ctx)
	if err != nil {
		return err
	}
	ctx.State.SubscriptionID = subscriptionID

	manager, err := ctx.ResourceGroups(subscriptionID)
	if err != nil {
		return fmt.Errorf("failed to create resource group client: %w", err)
	}

	provisioning.LogResourceCreating(ctx.Observer, phaseResourceGroup, "resource group", rgCfg.Name)
	rg, err := manager.EnsureResourceGroup(ctx, rgCfg.Name, rgCfg.Location)
	if err != nil {
		provisioning.LogResourceFailed(ctx.Observer, phaseResourceGroup, "resource group", rgCfg.Name, err)
		return err
	}
	ctx.State.ResourceGroupID = rg.ID

	if rg.Created {
		provisioning.LogResourceCreated(ctx.Observer, phaseResourceGroup, "resource group", rg.Name)
	} else {
		provisioning.LogResourceExists(ctx.Observer, phaseResourceGroup, "resource group", rg.Name)
	}
	ctx.Observer.Printf("Provisioned/updated resource group %s in the %s region", rg.Name, rg.Location)
	return nil
}

// resolveSubscription prefers configuration, then the environment, then
// the subscription of the active az login.
func resolveSubscription(ctx *provisioning.Context) (string, error) {
	if id := ctx.Config.SubscriptionID; id != "" {
		return id, nil
	}
	if id := os.Getenv(SubscriptionEnvVar); id != "" {
		return id, nil
	}

	id, err := ctx.AzCLI.SubscriptionID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to determine subscription (set subscription_id or %s): %w", SubscriptionEnvVar, err)
	}
	return id, nil
}
