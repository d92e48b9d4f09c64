package patcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mkrspc/iotporg/internal/prompt"
)

// Logger is the printf-style sink used for progress output.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Patcher backs up and rewrites targets, asking before backups are replaced.
type Patcher struct {
	Confirm prompt.Confirmer
	Logger  Logger
}

// New returns a Patcher.
func New(confirm prompt.Confirmer, logger Logger) *Patcher {
	return &Patcher{Confirm: confirm, Logger: logger}
}

// Apply processes targets in order. An existing backup is confirmed even
// when the target itself is missing; a missing target is skipped. The
// first error (including prompt.ErrDeclined) stops the run, leaving the
// remaining targets untouched.
func (p *Patcher) Apply(ctx context.Context, targets []Target) ([]Result, error) {
	results := make([]Result, 0, len(targets))

	for _, t := range targets {
		if err := ConfirmBackupOverwrite(ctx, t.Path, p.Confirm, p.Logger); err != nil {
			return results, err
		}

		if _, err := os.Stat(t.Path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				results = append(results, Result{Target: t, Skipped: true})
				continue
			}
			return results, fmt.Errorf("failed to stat %s: %w", t.Path, err)
		}

		p.Logger.Printf("Updating: %s", t.Path)

		backup := BackupPath(t.Path)
		if err := copyFile(t.Path, backup); err != nil {
			return results, err
		}
		p.Logger.Printf("Backup created: %s", backup)

		modified, err := UpdateLine(t.Path, t.Prefix, t.Action)
		if err != nil {
			return results, err
		}
		p.Logger.Printf("Updated: %t for %s", modified, t.Path)

		results = append(results, Result{Target: t, Backup: backup, Modified: modified})
	}

	return results, nil
}

// PatchBoards applies the ESP8266 targets to every version directory.
func (p *Patcher) PatchBoards(ctx context.Context, versionDirs []string) ([]Result, error) {
	var all []Result
	for _, dir := range versionDirs {
		results, err := p.Apply(ctx, ESP8266Targets(dir))
		all = append(all, results...)
		if err != nil {
			return all, err
		}
	}
	return all, nil
}
