package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xolan/acme/internal/osutil"
)

const (
	// DefaultLogsDir holds the daily log files, e.g. logs/2024/01/15.txt
	DefaultLogsDir = "logs"
	// DefaultGenDir receives generated CSV reports
	DefaultGenDir = "gen"
	// DefaultAppDir holds per-metrics-directory settings
	DefaultAppDir = "app"
	// ConfigFile is the name of the per-metrics-directory config file inside the app directory
	ConfigFile = "config.toml"
)

var (
	// ErrLogsDirNotFound is returned when no logs directory exists in the search path
	ErrLogsDirNotFound = errors.New("logs directory not found")
	// ErrLogNotFound is returned when a daily log file does not exist
	ErrLogNotFound = errors.New("log file not found")
)

// Names are the directory names inside a metrics directory
type Names struct {
	Logs string
	Gen  string
	App  string
}

// DefaultNames returns logs, gen and app
func DefaultNames() Names {
	return Names{Logs: DefaultLogsDir, Gen: DefaultGenDir, App: DefaultAppDir}
}

func (n Names) withDefaults() Names {
	d := DefaultNames()
	if n.Logs == "" {
		n.Logs = d.Logs
	}
	if n.Gen == "" {
		n.Gen = d.Gen
	}
	if n.App == "" {
		n.App = d.App
	}
	return n
}

// Layout holds the directories of one metrics directory.
// Logs, Gen and App are siblings under Root.
type Layout struct {
	Root string
	Logs string
	Gen  string
	App  string
}

// NewLayout returns the layout of the metrics directory root
func NewLayout(root string, names Names) Layout {
	names = names.withDefaults()
	return Layout{
		Root: root,
		Logs: filepath.Join(root, names.Logs),
		Gen:  filepath.Join(root, names.Gen),
		App:  filepath.Join(root, names.App),
	}
}

// Locate searches start and each of its parents for a logs directory and
// returns the layout around the first one found.
// If start is empty, the search begins in the working directory.
func Locate(start string, names Names) (Layout, error) {
	names = names.withDefaults()

	if start == "" {
		wd, err := osutil.Provider.Getwd()
		if err != nil {
			return Layout{}, fmt.Errorf("failed to get working directory: %w", err)
		}
		start = wd
	}

	curr, err := filepath.Abs(start)
	if err != nil {
		return Layout{}, err
	}

	for {
		if info, err := os.Stat(filepath.Join(curr, names.Logs)); err == nil && info.IsDir() {
			return NewLayout(curr, names), nil
		}

		parent := filepath.Dir(curr)
		if parent == curr {
			return Layout{}, fmt.Errorf("%w: no %q directory in %s or its parents", ErrLogsDirNotFound, names.Logs, start)
		}
		curr = parent
	}
}

// DayPath returns the conventional log path for a day: logs/YYYY/MM/DD.txt
func (l Layout) DayPath(y, m, d string) string {
	return filepath.Join(l.Logs, y, m, d+".txt")
}

// LogPath returns the log path for a slash date such as 2024/01/15
func (l Layout) LogPath(slash string) string {
	return filepath.Join(l.Logs, filepath.FromSlash(slash)+".txt")
}

// GenPath returns the report path for a file stem such as 2024-01 or 2024-01-01_01-07
func (l Layout) GenPath(stem string) string {
	return filepath.Join(l.Gen, stem+".csv")
}

// ConfigPath returns the per-metrics-directory config file path
func (l Layout) ConfigPath() string {
	return filepath.Join(l.App, ConfigFile)
}
