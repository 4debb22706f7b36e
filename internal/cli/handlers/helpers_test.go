package handlers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/acme/internal/cli"
	"github.com/xolan/acme/internal/config"
	"github.com/xolan/acme/internal/service"
	"github.com/xolan/acme/internal/storage"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

// setupTestDeps creates deps over an empty metrics directory
func setupTestDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	return setupTestDepsWithFiles(t, nil)
}

// setupTestDepsWithFiles creates deps over a metrics directory holding files
// (paths relative to logs/). The clipboard is a no-op.
func setupTestDepsWithFiles(t *testing.T, files map[string]string) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	root := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"

	layout := storage.NewLayout(root, cfg.Names())
	if err := os.MkdirAll(layout.Logs, 0755); err != nil {
		t.Fatal(err)
	}
	for rel, content := range files {
		path := filepath.Join(layout.Logs, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	services, err := service.NewServicesWithLayout(layout, filepath.Join(root, "global.toml"), cfg)
	if err != nil {
		t.Fatalf("NewServicesWithLayout() returned error: %v", err)
	}
	services.SetClock(func() time.Time { return fixedNow })

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	deps := &cli.Deps{
		Stdout:    stdout,
		Stderr:    stderr,
		Stdin:     strings.NewReader(""),
		Exit:      func(code int) { exitCode = code },
		Clipboard: func(string) error { return nil },
		Services:  services,
	}

	return deps, stdout, stderr, &exitCode
}

func writeGenFile(t *testing.T, deps *cli.Deps, name string) string {
	t.Helper()
	gen := deps.Services.Layout().Gen
	if err := os.MkdirAll(gen, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(gen, name)
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
