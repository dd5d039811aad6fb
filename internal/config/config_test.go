package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/opener"
	"github.com/thoreinstein/syncopener/internal/resolve"
)

// isolate points the settings search away from the developer's own files.
func isolate(t *testing.T) string {
	t.Helper()
	viper.Reset()
	dir := t.TempDir()
	t.Setenv("SYNCOPENER_CONFIG_DIR", dir)
	t.Chdir(t.TempDir())
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInit(t *testing.T) {
	isolate(t)
	Init()

	if got := viper.GetString(KeyMatch); got != "segment" {
		t.Errorf("match default = %q, want segment", got)
	}
	if got := viper.GetDuration(KeySettleDelay); got != opener.DefaultSettleDelay {
		t.Errorf("settle_delay default = %v, want %v", got, opener.DefaultSettleDelay)
	}
	if got := viper.GetStringSlice(KeyExtensions); !slices.Equal(got, resolve.DefaultExtensions) {
		t.Errorf("extensions default = %v", got)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	isolate(t)
	Init()

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if s.Match != "segment" || s.SettleDelay != opener.DefaultSettleDelay {
		t.Errorf("Load() = %+v, want defaults", s)
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "match: substring\nsettle_delay: 250ms\neditor: code -r\nexclude:\n  - \"**/legacy/**\"\n")
	Init()

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Match != "substring" {
		t.Errorf("Match = %q, want substring", s.Match)
	}
	if s.SettleDelay != 250*time.Millisecond {
		t.Errorf("SettleDelay = %v, want 250ms", s.SettleDelay)
	}
	if s.Editor != "code -r" {
		t.Errorf("Editor = %q", s.Editor)
	}
	if len(s.Exclude) != 1 {
		t.Errorf("Exclude = %v", s.Exclude)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SYNCOPENER_MATCH", "substring")
	t.Setenv("SYNCOPENER_SETTLE_DELAY", "0s")
	Init()

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Match != "substring" || s.SettleDelay != 0 {
		t.Errorf("Load() = %+v, want env overrides", s)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	isolate(t)
	Init()

	_, err := Load("/non/existent/path/config.yaml")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "unknown match", content: "match: fuzzy\n", wantErr: resolve.ErrUnknownStrategy},
		{name: "negative delay", content: "settle_delay: -1s\n", wantErr: ErrNegativeDelay},
		{name: "bad extension", content: "extensions: [\".\"]\n", wantErr: ErrInvalidExtension},
		{name: "bad pattern", content: "exclude: [\"[oops\"]\n", wantErr: ErrInvalidPattern},
		{name: "malformed yaml", content: "match: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			Init()
			path := writeConfig(t, t.TempDir(), tt.content)

			_, err := Load(path)
			if !errors.Is(err, errors.ErrInvalidConfig) {
				t.Fatalf("Load() error = %v, want ErrInvalidConfig", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestInit_ClearsPreviousState(t *testing.T) {
	dirB := isolate(t)
	fileA := filepath.Join(t.TempDir(), "config_a.yaml")
	if err := os.WriteFile(fileA, []byte("match: substring\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	Init()
	if _, err := Load(fileA); err != nil {
		t.Fatalf("first Load failed: %v", err)
	}

	writeConfig(t, dirB, "editor: nvim\n")

	// Re-initializing must drop fileA so the search paths apply again.
	Init()
	s, err := Load("")
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if s.Editor != "nvim" || s.Match != "segment" {
		t.Errorf("expected settings from the config dir, got %+v (file used %s)", s, viper.ConfigFileUsed())
	}
}

func TestSettings_Resolver(t *testing.T) {
	s := &Settings{Match: "substring", Extensions: []string{"vue"}, Exclude: []string{"**/dist/**"}}
	r, err := s.Resolver()
	if err != nil {
		t.Fatalf("Resolver() error = %v", err)
	}
	if !r.Supported("App.vue") || r.Supported("app.ts") {
		t.Error("extensions setting not applied")
	}
	if !r.Excluded("/work", "/work/pkg/dist/App.vue") {
		t.Error("exclude setting not applied")
	}

	if _, err := (&Settings{Match: "nope"}).Resolver(); !errors.Is(err, resolve.ErrUnknownStrategy) {
		t.Errorf("Resolver() error = %v, want ErrUnknownStrategy", err)
	}
}
