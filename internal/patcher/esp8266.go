package patcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ESP8266PackagePath is the board package location inside an Arduino data directory.
var ESP8266PackagePath = filepath.Join("packages", "esp8266", "hardware", "esp8266")

// ExtraFlags is the build.extra_flags line the Azure IoT Arduino SDK expects.
const ExtraFlags = "build.extra_flags=-DESP8266 -DDONT_USE_UPLOADTOBLOB -DUSE_BALTIMORE_CERT"

// Target is a single file rewrite.
type Target struct {
	Path   string
	Prefix string
	Action Action
}

// Result records what happened to one target.
type Result struct {
	Target   Target
	Backup   string
	Modified bool
	Skipped  bool
}

// DefaultArduinoDir returns the Arduino data directory for goos under home.
func DefaultArduinoDir(goos, home string) (string, error) {
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Arduino15"), nil
	case "linux":
		return filepath.Join(home, ".arduino15"), nil
	case "windows":
		return filepath.Join(home, "AppData", "Local", "Arduino15"), nil
	default:
		return "", fmt.Errorf("no valid board path for platform: %s", goos)
	}
}

// BoardVersions returns every installed ESP8266 board package version
// directory, skipping files and hidden entries.
func BoardVersions(arduinoDir string) ([]string, error) {
	root := filepath.Join(arduinoDir, ESP8266PackagePath)
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, root)
		}
		return nil, fmt.Errorf("failed to list board versions in %s: %w", root, err)
	}

	var versions []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		versions = append(versions, filepath.Join(root, e.Name()))
	}
	sort.Strings(versions)
	return versions, nil
}

// ESP8266Targets returns the rewrites applied to one board package version.
func ESP8266Targets(versionDir string) []Target {
	return []Target{
		{
			Path:   filepath.Join(versionDir, "cores", "esp8266", "Arduino.h"),
			Prefix: "#define round(x)",
			Action: CommentOut("//"),
		},
		{
			Path:   filepath.Join(versionDir, "platform.txt"),
			Prefix: "build.extra_flags=",
			Action: Replace(ExtraFlags),
		},
	}
}
