// Package devices resolves the device identities to provision and keeps
// the device table (ID and connection string per row) on disk.
package devices

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mkrspc/iotporg/internal/util/naming"
)

// ErrNamesFileNotFound is returned when a configured names file is missing.
var ErrNamesFileNotFound = errors.New("device names file not found")

// LoadNames reads one device ID per line. Blank lines and surrounding
// whitespace are dropped; order is preserved.
func LoadNames(path string) ([]string, error) {
	// #nosec G304 - path is supplied by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNamesFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read device names file %s: %w", path, err)
	}

	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan device names file %s: %w", path, err)
	}
	return names, nil
}

// Synthesize returns prefix-0 ... prefix-(count-1).
func Synthesize(prefix string, count int) []string {
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		names = append(names, naming.Device(prefix, i))
	}
	return names
}

// ResolveNames loads names from namesFile when set and falls back to
// synthesized names when the file is unset or yields nothing.
func ResolveNames(namesFile, prefix string, count int) ([]string, error) {
	if namesFile != "" {
		names, err := LoadNames(namesFile)
		if err != nil {
			return nil, err
		}
		if len(names) > 0 {
			return names, nil
		}
	}
	return Synthesize(prefix, count), nil
}
