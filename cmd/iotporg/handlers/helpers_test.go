package handlers

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
)

// saveAndRestoreFactories saves every handler factory and restores it
// when the test ends.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origNewConfirmer := newConfirmer
	origUserHomeDir := userHomeDir
	origBoardVersions := boardVersions
	origFindConfigFile := findConfigFile
	origLoadConfigFile := loadConfigFile
	origCheckPrereqs := checkPrereqs
	origNewRunner := newRunner
	origNewResourceGroups := newResourceGroups
	origNewKeyListerFactory := newKeyListerFactory
	origNewStore := newStore
	origFileExists := fileExists
	origRunWizard := runWizard
	origSaveConfig := saveConfig

	t.Cleanup(func() {
		newConfirmer = origNewConfirmer
		userHomeDir = origUserHomeDir
		boardVersions = origBoardVersions
		findConfigFile = origFindConfigFile
		loadConfigFile = origLoadConfigFile
		checkPrereqs = origCheckPrereqs
		newRunner = origNewRunner
		newResourceGroups = origNewResourceGroups
		newKeyListerFactory = origNewKeyListerFactory
		newStore = origNewStore
		fileExists = origFileExists
		runWizard = origRunWizard
		saveConfig = origSaveConfig
	})
}

// captureOutput returns everything f writes to stdout.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = old
	return <-done
}

// scriptedConfirmer answers questions from a fixed list and records them.
// Once the answers run out every question is declined.
type scriptedConfirmer struct {
	answers []bool
	asked   []string
}

func (s *scriptedConfirmer) Confirm(_ context.Context, question string) (bool, error) {
	s.asked = append(s.asked, question)
	if len(s.asked) > len(s.answers) {
		return false, nil
	}
	return s.answers[len(s.asked)-1], nil
}
