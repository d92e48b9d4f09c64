package handlers

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkrspc/iotporg/internal/patcher"
	"github.com/mkrspc/iotporg/internal/prompt"
)

const (
	arduinoHeader  = "#ifndef Arduino_h\n#define round(x)     ((x)>=0?(long)((x)+0.5):(long)((x)-0.5))\n#endif\n"
	platformConfig = "name=ESP8266 Boards\nbuild.extra_flags=-DESP8266\ncompiler.path=/usr/bin\n"
)

// newBoard creates an ESP8266 board package with one version under arduinoDir
// and returns the version directory.
func newBoard(t *testing.T, arduinoDir, version string) string {
	t.Helper()
	dir := filepath.Join(arduinoDir, patcher.ESP8266PackagePath, version)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cores", "esp8266"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cores", "esp8266", "Arduino.h"), []byte(arduinoHeader), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "platform.txt"), []byte(platformConfig), 0644))
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func useConfirmer(c prompt.Confirmer) {
	newConfirmer = func(bool) prompt.Confirmer { return c }
}

func TestPatch_DeclineIntro(t *testing.T) {
	saveAndRestoreFactories(t)

	arduinoDir := t.TempDir()
	versionDir := newBoard(t, arduinoDir, "2.5.0")
	confirm := &scriptedConfirmer{answers: []bool{false}}
	useConfirmer(confirm)

	var err error
	output := captureOutput(func() {
		err = Patch(context.Background(), arduinoDir, false)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "No changes made... exiting")
	assert.NotContains(t, output, "Proceeding")
	require.Len(t, confirm.asked, 1)
	assert.Contains(t, confirm.asked[0], "Do you wish to proceed?")
	assert.Equal(t, platformConfig, readFile(t, filepath.Join(versionDir, "platform.txt")))
	assert.NoFileExists(t, filepath.Join(versionDir, "platform.txt.orig"))
}

func TestPatch_PatchesEveryVersion(t *testing.T) {
	saveAndRestoreFactories(t)

	arduinoDir := t.TempDir()
	v1 := newBoard(t, arduinoDir, "2.4.2")
	v2 := newBoard(t, arduinoDir, "2.5.0")
	useConfirmer(&scriptedConfirmer{answers: []bool{true}})

	var err error
	output := captureOutput(func() {
		err = Patch(context.Background(), arduinoDir, false)
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Proceeding\n")
	assert.Contains(t, output, "Patched 4 file(s), 0 already up to date, 0 not found.")

	for _, dir := range []string{v1, v2} {
		header := readFile(t, filepath.Join(dir, "cores", "esp8266", "Arduino.h"))
		assert.Contains(t, header, "// #define round(x)")

		platform := readFile(t, filepath.Join(dir, "platform.txt"))
		assert.Contains(t, platform, patcher.ExtraFlags+"\n")
		assert.Contains(t, platform, "compiler.path=/usr/bin\n")

		assert.Equal(t, platformConfig, readFile(t, filepath.Join(dir, "platform.txt.orig")))
		assert.Equal(t, arduinoHeader, readFile(t, filepath.Join(dir, "cores", "esp8266", "Arduino.h.orig")))
	}
}

func TestPatch_DefaultArduinoDir(t *testing.T) {
	if _, err := patcher.DefaultArduinoDir(runtime.GOOS, "/home"); err != nil {
		t.Skipf("no default Arduino directory on %s", runtime.GOOS)
	}
	saveAndRestoreFactories(t)

	home := t.TempDir()
	arduinoDir, err := patcher.DefaultArduinoDir(runtime.GOOS, home)
	require.NoError(t, err)
	versionDir := newBoard(t, arduinoDir, "3.0.0")

	userHomeDir = func() (string, error) { return home, nil }
	useConfirmer(prompt.AlwaysYes{})

	captureOutput(func() {
		err = Patch(context.Background(), "", true)
	})
	require.NoError(t, err)
	assert.Contains(t, readFile(t, filepath.Join(versionDir, "platform.txt")), patcher.ExtraFlags)
}

func TestPatch_DeclineBackupOverwrite(t *testing.T) {
	saveAndRestoreFactories(t)

	arduinoDir := t.TempDir()
	versionDir := newBoard(t, arduinoDir, "2.5.0")
	header := filepath.Join(versionDir, "cores", "esp8266", "Arduino.h")
	require.NoError(t, os.WriteFile(header+".orig", []byte("old backup"), 0644))

	confirm := &scriptedConfirmer{answers: []bool{true, false}}
	useConfirmer(confirm)

	var err error
	output := captureOutput(func() {
		err = Patch(context.Background(), arduinoDir, false)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "No changes made... exiting")
	require.Len(t, confirm.asked, 2)
	assert.Contains(t, confirm.asked[1], "There is already a backup file at "+header+".orig")
	assert.Equal(t, "old backup", readFile(t, header+".orig"))
	assert.Equal(t, arduinoHeader, readFile(t, header))
	assert.Equal(t, platformConfig, readFile(t, filepath.Join(versionDir, "platform.txt")))
}

func TestPatch_SecondRunConfirmsBackups(t *testing.T) {
	saveAndRestoreFactories(t)

	arduinoDir := t.TempDir()
	versionDir := newBoard(t, arduinoDir, "2.5.0")
	useConfirmer(prompt.AlwaysYes{})
	captureOutput(func() {
		require.NoError(t, Patch(context.Background(), arduinoDir, true))
	})

	confirm := &scriptedConfirmer{answers: []bool{true, true, true}}
	useConfirmer(confirm)

	var err error
	output := captureOutput(func() {
		err = Patch(context.Background(), arduinoDir, false)
	})
	require.NoError(t, err)
	assert.Len(t, confirm.asked, 3)

	assert.Contains(t, output, "Patched 0 file(s), 2 already up to date, 0 not found.")
	header := readFile(t, filepath.Join(versionDir, "cores", "esp8266", "Arduino.h"))
	assert.Contains(t, header, "// #define round(x)")
	assert.NotContains(t, header, "// // #define round(x)")

	// Backups are refreshed from the already patched files.
	assert.Contains(t, readFile(t, filepath.Join(versionDir, "platform.txt.orig")), patcher.ExtraFlags)
}

func TestPatch_MissingFilesAreSkipped(t *testing.T) {
	saveAndRestoreFactories(t)

	arduinoDir := t.TempDir()
	versionDir := newBoard(t, arduinoDir, "2.5.0")
	require.NoError(t, os.Remove(filepath.Join(versionDir, "cores", "esp8266", "Arduino.h")))
	useConfirmer(prompt.AlwaysYes{})

	var err error
	output := captureOutput(func() {
		err = Patch(context.Background(), arduinoDir, true)
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Patched 1 file(s), 0 already up to date, 1 not found.")
}

func TestPatch_NoBoardVersions(t *testing.T) {
	saveAndRestoreFactories(t)

	useConfirmer(prompt.AlwaysYes{})
	boardVersions = func(string) ([]string, error) { return nil, nil }

	err := Patch(context.Background(), t.TempDir(), true)
	assert.NoError(t, err)
}

func TestPatch_BoardPackageMissing(t *testing.T) {
	saveAndRestoreFactories(t)

	useConfirmer(prompt.AlwaysYes{})

	err := Patch(context.Background(), t.TempDir(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, patcher.ErrFileNotFound)
}
