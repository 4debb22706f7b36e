package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/xolan/acme/internal/cli"
	"github.com/xolan/acme/internal/config"
	"github.com/xolan/acme/internal/service"
	"github.com/xolan/acme/internal/storage"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

// testDeps creates deps over a temporary metrics directory holding files
// (paths relative to logs/) and installs them as the global deps.
func testDeps(t *testing.T, files map[string]string) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
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

	d, stdout, stderr, exitCode := bareDeps(t)
	d.Services = services
	return d, stdout, stderr, exitCode
}

// bareDeps installs deps without services as the global deps
func bareDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	d := &cli.Deps{
		Stdout:    stdout,
		Stderr:    stderr,
		Stdin:     strings.NewReader(""),
		Exit:      func(code int) { exitCode = code },
		Clipboard: func(string) error { return nil },
	}
	cli.SetDeps(d)
	t.Cleanup(cli.ResetDeps)

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })
	return d, stdout, stderr, &exitCode
}

// execute runs the command line args against rootCmd, with cobra's own
// output going to the deps writers
func execute(t *testing.T, args ...string) {
	t.Helper()
	d := cli.GetDeps()
	rootCmd.SetOut(d.Stdout)
	rootCmd.SetErr(d.Stderr)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	_ = rootCmd.Execute()
}

// resetFlags restores every flag of c and its subcommands to its default,
// since cobra keeps parsed values on the package-level commands
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// stubServices replaces newServices for the duration of the test
func stubServices(t *testing.T, fn func(dir string) (*service.Services, error)) {
	t.Helper()
	original := newServices
	newServices = fn
	t.Cleanup(func() { newServices = original })
}
