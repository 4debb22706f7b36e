package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/acme/internal/osutil"
	"github.com/xolan/acme/internal/service"
	"github.com/xolan/acme/internal/storage"
)

// configDirProvider points the user config directory at a temporary directory
type configDirProvider struct {
	dir string
}

func (p configDirProvider) UserConfigDir() (string, error) { return p.dir, nil }

func (p configDirProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (p configDirProvider) Getwd() (string, error) { return p.dir, nil }

func useConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	osutil.SetProvider(configDirProvider{dir: dir})
	t.Cleanup(osutil.ResetProvider)
	return dir
}

func TestConfig_Show(t *testing.T) {
	_, stdout, stderr, exitCode := testDeps(t, nil)

	execute(t, "config")

	if *exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", *exitCode, stderr.String())
	}
	output := stdout.String()
	for _, want := range []string{
		"Configuration:",
		"Status: Using defaults (no config file)",
		"Local status: Not present",
		"clean_after_days = 7",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got %q", want, output)
		}
	}
}

func TestConfig_OutsideMetricsDirectory(t *testing.T) {
	_, stdout, stderr, exitCode := bareDeps(t)
	dir := useConfigDir(t)
	stubServices(t, func(string) (*service.Services, error) {
		return nil, storage.ErrLogsDirNotFound
	})

	execute(t, "config")

	if *exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", *exitCode, stderr.String())
	}
	output := stdout.String()
	if !strings.Contains(output, filepath.Join(dir, "acme", "config.toml")) {
		t.Errorf("expected global config path, got %q", output)
	}
	if strings.Contains(output, "Local config:") {
		t.Errorf("expected no local config outside a metrics directory, got %q", output)
	}
}

func TestConfig_Init(t *testing.T) {
	_, stdout, stderr, exitCode := bareDeps(t)
	dir := useConfigDir(t)
	stubServices(t, func(string) (*service.Services, error) {
		return nil, storage.ErrLogsDirNotFound
	})

	execute(t, "config", "init")

	if *exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", *exitCode, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Created config file:") {
		t.Errorf("expected created message, got %q", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "acme", "config.toml")); err != nil {
		t.Errorf("expected config file to be written: %v", err)
	}
}

func TestConfig_InitExisting(t *testing.T) {
	_, _, stderr, exitCode := bareDeps(t)
	dir := useConfigDir(t)
	stubServices(t, func(string) (*service.Services, error) {
		return nil, storage.ErrLogsDirNotFound
	})
	path := filepath.Join(dir, "acme", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("clean_after_days = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	execute(t, "config", "init")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "already exists") {
		t.Errorf("expected already exists error, got %q", stderr.String())
	}
}
