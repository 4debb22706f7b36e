package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/acme/internal/config"
)

func TestConfigService_Get(t *testing.T) {
	cfg := config.DefaultConfig()
	svc := NewConfigService("/tmp/config.toml", "", cfg)

	result := svc.Get()
	if result.Timezone != cfg.Timezone {
		t.Errorf("expected Timezone %q, got %q", cfg.Timezone, result.Timezone)
	}
	if result.CleanAfterDays != cfg.CleanAfterDays {
		t.Errorf("expected CleanAfterDays %d, got %d", cfg.CleanAfterDays, result.CleanAfterDays)
	}
}

func TestConfigService_Paths(t *testing.T) {
	svc := NewConfigService("/tmp/test/config.toml", "/tmp/metrics/app/config.toml", config.DefaultConfig())

	if svc.GetPath() != "/tmp/test/config.toml" {
		t.Errorf("expected path '/tmp/test/config.toml', got %q", svc.GetPath())
	}
	if svc.GetLocalPath() != "/tmp/metrics/app/config.toml" {
		t.Errorf("unexpected local path %q", svc.GetLocalPath())
	}
}

func TestConfigService_Exists(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	localPath := filepath.Join(tmpDir, "local.toml")
	svc := NewConfigService(configPath, localPath, config.DefaultConfig())

	if svc.Exists() || svc.LocalExists() {
		t.Error("expected Exists() and LocalExists() to return false")
	}

	for _, p := range []string{configPath, localPath} {
		if err := os.WriteFile(p, []byte(""), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if !svc.Exists() || !svc.LocalExists() {
		t.Error("expected Exists() and LocalExists() to return true")
	}

	if NewConfigService(configPath, "", config.DefaultConfig()).LocalExists() {
		t.Error("expected LocalExists() to be false without a local path")
	}
}

func TestConfigService_Init(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, "", config.DefaultConfig())

	if err := svc.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if !strings.Contains(string(content), "# acme configuration file") {
		t.Error("expected sample config content")
	}

	// Second init fails
	if err := svc.Init(); err == nil {
		t.Error("expected error when config already exists")
	}
}

func TestConfigService_UpdateAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	localPath := filepath.Join(tmpDir, "local.toml")
	svc := NewConfigService(configPath, localPath, config.DefaultConfig())

	cfg := config.DefaultConfig()
	cfg.Timezone = "Europe/London"
	cfg.CleanAfterDays = 30
	if err := svc.Update(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Get().CleanAfterDays != 30 {
		t.Error("expected in-memory config to be updated")
	}

	if err := os.WriteFile(localPath, []byte("clean_after_days = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := svc.Reload(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Get().Timezone != "Europe/London" {
		t.Errorf("expected global timezone to survive reload, got %q", svc.Get().Timezone)
	}
	if svc.Get().CleanAfterDays != 3 {
		t.Errorf("expected local override, got %d", svc.Get().CleanAfterDays)
	}
}

func TestConfigService_UpdateInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, "", config.DefaultConfig())

	cfg := config.DefaultConfig()
	cfg.CleanAfterDays = -5
	if err := svc.Update(cfg); err == nil {
		t.Error("expected error for invalid config")
	}
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Error("invalid config should not be written")
	}
}

func TestConfigService_Encoded(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.GenDirName = "reports"
	svc := NewConfigService("", "", cfg)

	out, err := svc.Encoded()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `gen_dir_name = "reports"`) {
		t.Errorf("expected gen_dir_name in output, got:\n%s", out)
	}
}

func TestConfigService_InitCreatesDirectory(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "acme", "config.toml")
	svc := NewConfigService(configPath, "", config.DefaultConfig())

	if err := svc.Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}
	if !svc.Exists() {
		t.Errorf("expected %s to exist after Init()", configPath)
	}
}

func TestConfigService_SetTheme(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(configPath, []byte("clean_after_days = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	effective := config.DefaultConfig()
	effective.GenDirName = "local-reports"
	svc := NewConfigService(configPath, "", effective)

	if err := svc.SetTheme("nord"); err != nil {
		t.Fatalf("SetTheme() returned error: %v", err)
	}
	if svc.Get().Theme != "nord" {
		t.Errorf("expected effective theme 'nord', got %q", svc.Get().Theme)
	}

	saved, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if saved.Theme != "nord" {
		t.Errorf("expected saved theme 'nord', got %q", saved.Theme)
	}
	if saved.CleanAfterDays != 3 {
		t.Errorf("expected other keys kept, got clean_after_days = %d", saved.CleanAfterDays)
	}
	if saved.GenDirName != "gen" {
		t.Errorf("expected effective-only settings not to be written, got gen_dir_name = %q", saved.GenDirName)
	}
}
