package service

import (
	"log/slog"
	"time"

	"github.com/xolan/acme/internal/config"
	"github.com/xolan/acme/internal/entry"
	"github.com/xolan/acme/internal/module"
	"github.com/xolan/acme/internal/report"
	"github.com/xolan/acme/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Report *ReportService
	Lookup *LookupService
	Stats  *StatsService
	Util   *UtilService
	Config *ConfigService

	env *env
}

// NewServices loads the global config, locates the metrics directory from dir
// (the working directory when empty) and applies its local config on top.
func NewServices(dir string) (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	global, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	layout, err := storage.Locate(dir, global.Names())
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadLayered(configPath, layout.ConfigPath())
	if err != nil {
		return nil, err
	}

	return NewServicesWithLayout(storage.NewLayout(layout.Root, cfg.Names()), configPath, cfg)
}

// NewServicesWithLayout creates a new Services instance for an already located
// metrics directory (useful for testing)
func NewServicesWithLayout(layout storage.Layout, configPath string, cfg config.Config) (*Services, error) {
	e, err := newEnv(layout, cfg)
	if err != nil {
		return nil, err
	}

	return &Services{
		Report: &ReportService{env: e},
		Lookup: &LookupService{env: e},
		Stats:  &StatsService{env: e},
		Util:   &UtilService{env: e},
		Config: NewConfigService(configPath, layout.ConfigPath(), cfg),
		env:    e,
	}, nil
}

// Layout returns the metrics directory the services operate on
func (s *Services) Layout() storage.Layout {
	return s.env.layout
}

// SetClock replaces the time source used to resolve keywords and file ages
func (s *Services) SetClock(now func() time.Time) {
	s.env.now = now
}

// SetLogger replaces the logger used for diagnostics
func (s *Services) SetLogger(l *slog.Logger) {
	s.env.logger = l
}

// env is the state shared by every service for one invocation
type env struct {
	layout   storage.Layout
	cfg      config.Config
	registry *module.Registry
	ctx      module.Context
	loc      *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

func newEnv(layout storage.Layout, cfg config.Config) (*env, error) {
	registry, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return &env{
		layout:   layout,
		cfg:      cfg,
		registry: registry,
		ctx:      cfg.Context(),
		loc:      loc,
		now:      time.Now,
		logger:   slog.Default(),
	}, nil
}

// today returns the current time in the configured timezone
func (e *env) today() time.Time {
	return e.now().In(e.loc)
}

func (e *env) parser() *entry.Parser {
	return entry.NewParser(module.Transforms(e.registry.Modules(), e.ctx)...).WithLogger(e.logger)
}

func (e *env) collector() *report.Collector {
	return report.NewCollector(e.layout, e.parser()).WithLogger(e.logger)
}

func (e *env) assembler() *report.Assembler {
	return report.NewAssembler(e.registry).WithLogger(e.logger)
}
