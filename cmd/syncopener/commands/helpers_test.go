package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/thoreinstein/syncopener/internal/config"
	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/pairs"
)

const componentPairs = `[
  {
    "directory1": {"path": "components", "extension": ".tsx", "fileFormat": {"prefix": "", "format": "pascal-case"}},
    "directory2": {"path": "styles", "extension": ".scss", "fileFormat": {"prefix": "", "format": "kebab-case"}}
  }
]`

// resetFlags restores flag variables between command runs.
func resetFlags() {
	verbosity = 0
	quiet = false
	logFormat = "text"
	logFile = ""
	workspaceFlag = ""
	matchFlag = ""
	resolveJSON = false
	pickPrint = false
	doctorJSON = false
	doctorAll = false
	initFormat = "json"
	initForce = false
	backupListJSON = false
	convertTo = ""
	convertPrefix = ""
	convertExt = ""
	_ = genDocCmd.Flags().Set("dir", "")
}

// isolate keeps settings lookups inside temporary directories and makes
// dir the working directory. Viper keeps values from a file read by an
// earlier run, so its state is reset first.
func isolate(t *testing.T, dir string) {
	t.Helper()
	viper.Reset()
	_ = viper.BindPFlag(config.KeyMatch, rootCmd.PersistentFlags().Lookup("match"))
	t.Setenv("SYNCOPENER_CONFIG_DIR", t.TempDir())
	t.Setenv("SYNCOPENER_DEBUG", "")
	t.Chdir(dir)
}

// executeCommand runs the root command with args and returns stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(bytes.NewReader(nil))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// newWorkspace creates a workspace holding files and returns its root.
func newWorkspace(t *testing.T, files map[string]string) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	isolate(t, root)
	return root
}

func componentWorkspace(t *testing.T) string {
	t.Helper()
	return newWorkspace(t, map[string]string{
		pairs.FileName:            componentPairs,
		"components/UserCard.tsx": "export {}",
		"styles/user-card.scss":   ".card {}",
	})
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return errors.ExitSuccess
	}
	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error %v is not an ExitError", err)
	}
	return exitErr.Code
}
