package patcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/mkrspc/iotporg/internal/prompt"
)

// BackupSuffix is appended to a target path to form its backup path.
const BackupSuffix = ".orig"

// BackupPath returns the backup location for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// ConfirmBackupOverwrite asks before an existing backup of path is replaced.
// It returns prompt.ErrDeclined when the user refuses and nil when no
// backup exists yet or the user accepts.
func ConfirmBackupOverwrite(ctx context.Context, path string, confirm prompt.Confirmer, logger Logger) error {
	backup := BackupPath(path)
	if _, err := os.Stat(backup); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat backup %s: %w", backup, err)
	}

	question := fmt.Sprintf("There is already a backup file at %s; proceeding will overwrite this file. Do you wish to proceed?", backup)
	if err := prompt.Require(ctx, confirm, question); err != nil {
		return err
	}
	logger.Printf("Backup will be overwritten")
	return nil
}

func copyFile(src, dst string) error {
	// #nosec G304 - src comes from board discovery or the caller
	in, err := os.Open(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, src)
		}
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}

	// #nosec G304
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create backup %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close backup %s: %w", dst, err)
	}
	return nil
}
