package hub

import "github.com/mkrspc/iotporg/internal/provisioning"

const phaseExtension = "extension"

// ExtensionPhase installs the az CLI extension that provides `az iot`.
// Installing an already installed extension succeeds.
type ExtensionPhase struct{}

func NewExtensionPhase() *ExtensionPhase {
	return &ExtensionPhase{}
}

func (p *ExtensionPhase) Name() string { return phaseExtension }

func (p *ExtensionPhase) Provision(ctx *provisioning.Context) error {
	ctx.Observer.Printf("Checking az cli %s extension...", ctx.Config.Hub.Extension)
	return ctx.AzCLI.AddExtension(ctx, ctx.Config.Hub.Extension)
}
