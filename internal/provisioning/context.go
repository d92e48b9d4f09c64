package provisioning

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/mkrspc/iotporg/internal/config"
	"github.com/mkrspc/iotporg/internal/platform/azcli"
	"github.com/mkrspc/iotporg/internal/platform/azure"
	"github.com/mkrspc/iotporg/internal/platform/functools"
	"github.com/mkrspc/iotporg/internal/state"
	"github.com/mkrspc/iotporg/internal/util/naming"
)

// ResourceGroupsFactory builds a resource group manager for a subscription.
type ResourceGroupsFactory func(subscriptionID string) (azure.ResourceGroupManager, error)

// Clients bundles the platform clients used by the stages.
type Clients struct {
	AzCLI          azcli.Client
	FuncTools      functools.Tools
	ResourceGroups ResourceGroupsFactory
	KeyLister      KeyListerFactory
}

// Context wraps all dependencies and state needed for a provisioning stage.
type Context struct {
	context.Context
	Clients

	Config   *config.Config
	State    *State
	Store    state.Store
	Observer Observer
	Timeouts *config.Timeouts
	Metrics  *Metrics

	// Suffix returns a random name suffix in [1, naming.MaxSuffix].
	Suffix func() int
	// Sleep blocks for d or until the context is done.
	Sleep func(ctx context.Context, d time.Duration) error
}

// NewContext creates a new provisioning context.
func NewContext(ctx context.Context, cfg *config.Config, store state.Store, clients Clients) *Context {
	return &Context{
		Context:  ctx,
		Clients:  clients,
		Config:   cfg,
		State:    NewState(),
		Store:    store,
		Observer: NewConsoleObserver(),
		Timeouts: config.LoadTimeouts(),
		Metrics:  NewMetrics(),
		Suffix:   RandomSuffix,
		Sleep:    Sleep,
	}
}

// RandomSuffix returns a uniform random integer in [1, naming.MaxSuffix].
func RandomSuffix() int {
	return rand.IntN(naming.MaxSuffix) + 1 // #nosec G404 - names, not secrets
}

// Sleep waits for d, returning early with the context error if ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ResolveName returns the value stored under key, generating and
// persisting one with generate when the key is absent. A non-empty
// override is persisted as-is and wins over any stored value.
func (c *Context) ResolveName(key, override string, generate func(suffix int) string) (string, error) {
	if override != "" {
		stored, err := c.storedValue(key)
		if err != nil {
			return "", err
		}
		if stored != override {
			if err := c.Store.Set(key, override); err != nil {
				return "", err
			}
		}
		return override, nil
	}

	stored, err := c.storedValue(key)
	if err != nil {
		return "", err
	}
	if stored != "" {
		return stored, nil
	}

	name := generate(c.Suffix())
	if err := c.Store.Set(key, name); err != nil {
		return "", err
	}
	return name, nil
}

// FunctionAppName resolves the function app name once per run. The
// function-app and function-keys stages must agree on it.
func (c *Context) FunctionAppName() (string, error) {
	if c.State.FunctionApp != "" {
		return c.State.FunctionApp, nil
	}

	cfg := c.Config
	name, err := c.ResolveName(state.KeyFunctionApp, cfg.FunctionApp.Name, func(suffix int) string {
		return naming.FunctionApp(cfg.ResourceGroup.Name, suffix)
	})
	if err != nil {
		return "", fmt.Errorf("failed to resolve function app name: %w", err)
	}
	c.State.FunctionApp = name
	return name, nil
}

func (c *Context) storedValue(key string) (string, error) {
	ok, err := c.Store.Exists(key)
	if err != nil || !ok {
		return "", err
	}
	return c.Store.Get(key)
}
