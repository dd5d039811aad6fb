package commands

import (
	"strings"
	"testing"

	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/pairs"
)

func TestPick_NoFiles(t *testing.T) {
	newWorkspace(t, map[string]string{pairs.FileName: componentPairs})

	out, _, err := executeCommand(t, "pick")
	if err != nil {
		t.Fatalf("pick error = %v", err)
	}
	if !strings.Contains(out, "No files found") {
		t.Errorf("pick output = %q", out)
	}
}

func TestPick_NoPairsFile(t *testing.T) {
	newWorkspace(t, map[string]string{".git/HEAD": ""})

	_, _, err := executeCommand(t, "pick")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("pick error = %v, want ErrNotFound", err)
	}
}
