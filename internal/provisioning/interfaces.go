package provisioning

import (
	"context"

	"github.com/mkrspc/iotporg/internal/credentials"
	"github.com/mkrspc/iotporg/internal/platform/arm"
)

// Phase defines the interface for a provisioning stage.
type Phase interface {
	// Name returns the stage name used in logs and metrics.
	Name() string

	// Provision executes the stage.
	Provision(ctx *Context) error
}

// Conditional is implemented by stages gated by a configuration flag.
// RunPhases skips a stage whose Enabled returns false.
type Conditional interface {
	Enabled(ctx *Context) bool
}

// Logger is the printf-style sink used for progress lines.
type Logger interface {
	Printf(format string, v ...interface{})
}

// KeyListerFactory builds an authenticated function key client for a
// service principal. The keys stage calls it once per run.
type KeyListerFactory func(ctx context.Context, sp *credentials.ServicePrincipal) (arm.KeyLister, error)
