// Package functools drives Azure Functions Core Tools (the `func` binary)
// to scaffold and publish a function project.
package functools

import (
	"context"
	"path/filepath"

	"github.com/mkrspc/iotporg/internal/platform/cli"
)

const binary = "func"

// Tools is the subset of Core Tools used by the function-app stage.
type Tools interface {
	// Init scaffolds a project named name inside parentDir and returns its path.
	Init(ctx context.Context, parentDir, name, runtime string) (string, error)
	NewFunction(ctx context.Context, appDir, name, template string) error
	Publish(ctx context.Context, appDir, appName string) error
}

// CoreTools implements Tools with a cli.Runner.
type CoreTools struct {
	runner cli.Runner
}

// New returns CoreTools backed by runner.
func New(runner cli.Runner) *CoreTools {
	return &CoreTools{runner: runner}
}

func (t *CoreTools) Init(ctx context.Context, parentDir, name, runtime string) (string, error) {
	_, err := t.runner.Run(ctx, cli.Command{
		Dir:  parentDir,
		Name: binary,
		Args: []string{"init", name, "--worker-runtime", runtime},
	})
	if err != nil {
		return "", err
	}
	return filepath.Join(parentDir, name), nil
}

func (t *CoreTools) NewFunction(ctx context.Context, appDir, name, template string) error {
	_, err := t.runner.Run(ctx, cli.Command{
		Dir:  appDir,
		Name: binary,
		Args: []string{"new", "--name", name, "--template", template},
	})
	return err
}

// Publish deploys the project in appDir to the function app appName.
func (t *CoreTools) Publish(ctx context.Context, appDir, appName string) error {
	_, err := t.runner.Run(ctx, cli.Command{
		Dir:  appDir,
		Name: binary,
		Args: []string{"azure", "functionapp", "publish", appName},
	})
	return err
}
