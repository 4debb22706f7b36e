package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xolan/acme/internal/config"
	"github.com/xolan/acme/internal/module"
	"github.com/xolan/acme/internal/storage"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"
	return cfg
}

// setupServices creates a metrics directory holding files (paths relative to logs/)
func setupServices(t *testing.T, cfg config.Config, files map[string]string) *Services {
	t.Helper()
	root := t.TempDir()
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

	services, err := NewServicesWithLayout(layout, filepath.Join(root, "global.toml"), cfg)
	if err != nil {
		t.Fatalf("NewServicesWithLayout() returned error: %v", err)
	}
	services.SetClock(func() time.Time { return fixedNow })
	return services
}

func shortcut(key, value string) module.Shortcut {
	return module.Shortcut{Keys: []string{key}, Value: value}
}

func word(from, to string) module.WordReplacement {
	return module.WordReplacement{From: from, To: to}
}
