package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/acme/internal/config"
	"github.com/xolan/acme/internal/service"
	"github.com/xolan/acme/internal/tui/ui"
)

// maxVisibleThemes is the maximum number of themes shown at once
const maxVisibleThemes = 10

// ConfigModel shows the effective configuration and the theme selector
type ConfigModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width       int
	height      int
	config      config.Config
	path        string
	exists      bool
	localPath   string
	localExists bool
	themeName   string

	selectingTheme bool
	themes         []string
	themeCursor    int
	themeOffset    int
}

// configLoadedMsg is sent when the config has been read
type configLoadedMsg struct {
	config      config.Config
	path        string
	exists      bool
	localPath   string
	localExists bool
}

// NewConfigModel creates a new config view model
func NewConfigModel(services *service.Services, themes *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	m := ConfigModel{
		services:  services,
		styles:    styles,
		keys:      keys,
		themes:    themes.Themes(),
		themeName: themes.Current(),
	}
	m.resetCursor()
	return m
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	return m.loadConfig()
}

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selectingTheme {
			return m.handleThemeSelection(msg)
		}
		if key.Matches(msg, m.keys.Select) {
			m.OpenThemeSelector()
			return m, nil
		}

	case configLoadedMsg:
		m.config = msg.config
		m.path = msg.path
		m.exists = msg.exists
		m.localPath = msg.localPath
		m.localExists = msg.localExists

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		m.resetCursor()
		return m, m.loadConfig()
	}

	return m, nil
}

// OpenThemeSelector shows the theme list with the current theme selected
func (m *ConfigModel) OpenThemeSelector() {
	m.selectingTheme = true
	m.resetCursor()
}

// IsInputMode reports whether the theme selector is capturing keys
func (m ConfigModel) IsInputMode() bool {
	return m.selectingTheme
}

func (m ConfigModel) handleThemeSelection(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
			m.updateThemeOffset()
		}

	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
			m.updateThemeOffset()
		}

	case key.Matches(msg, m.keys.Select):
		m.selectingTheme = false
		selected := m.themes[m.themeCursor]
		return m, func() tea.Msg {
			return ui.ThemeChangeRequestMsg{ThemeName: selected}
		}

	case key.Matches(msg, m.keys.Back):
		m.selectingTheme = false
		m.resetCursor()
	}

	return m, nil
}

func (m *ConfigModel) resetCursor() {
	for i, t := range m.themes {
		if t == m.themeName {
			m.themeCursor = i
			break
		}
	}
	m.updateThemeOffset()
}

// updateThemeOffset keeps the cursor inside the visible window
func (m *ConfigModel) updateThemeOffset() {
	if m.themeCursor < m.themeOffset {
		m.themeOffset = m.themeCursor
	} else if m.themeCursor >= m.themeOffset+maxVisibleThemes {
		m.themeOffset = m.themeCursor - maxVisibleThemes + 1
	}
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Configuration"))
	b.WriteString("\n\n")

	b.WriteString(m.renderFileLine("Config file:", m.path, m.exists, "Using defaults (no config file)"))
	if m.localPath != "" {
		b.WriteString(m.renderFileLine("Local config:", m.localPath, m.localExists, "Not present"))
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(50, max(m.width, 1))))
	b.WriteString("\n\n")

	cfg := m.config
	b.WriteString(m.renderConfigLine("timezone", cfg.Timezone))
	b.WriteString(m.renderConfigLine("logs_dir_name", cfg.LogsDirName))
	b.WriteString(m.renderConfigLine("gen_dir_name", cfg.GenDirName))
	b.WriteString(m.renderConfigLine("app_dir_name", cfg.AppDirName))
	b.WriteString(m.renderConfigLine("modules", strings.Join(cfg.Modules, ", ")))
	b.WriteString(m.renderConfigLine("clean_after_days", fmt.Sprint(cfg.CleanAfterDays)))
	b.WriteString(m.renderConfigLine("glossary", fmt.Sprintf("%s, %s",
		countOf(len(cfg.Glossary.Shortcuts), "shortcut"), countOf(len(cfg.Glossary.Words), "word"))))

	if m.selectingTheme {
		b.WriteString(m.renderThemeSelector())
	} else {
		b.WriteString(m.renderConfigLine("theme", m.themeName))
		b.WriteString("\n")
		b.WriteString(m.styles.StatusHelp.Render("Press Enter or T to change theme"))
	}

	return b.String()
}

func (m ConfigModel) renderFileLine(label, path string, exists bool, missing string) string {
	line := m.styles.StatLabel.Render(label) + " " + m.styles.StatValue.Render(path) + "\n"
	line += m.styles.StatLabel.Render("") + " "
	if exists {
		line += m.styles.Success.Render("File exists")
	} else {
		line += m.styles.Warning.Render(missing)
	}
	return line + "\n"
}

func (m ConfigModel) renderThemeSelector() string {
	var b strings.Builder

	b.WriteString(m.styles.StatLabel.Render("theme:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render("Select a theme"))
	b.WriteString("\n\n")

	end := min(m.themeOffset+maxVisibleThemes, len(m.themes))
	if m.themeOffset > 0 {
		b.WriteString(m.styles.StatusHelp.Render("  ↑ more themes above"))
		b.WriteString("\n")
	}
	for i := m.themeOffset; i < end; i++ {
		theme := m.themes[i]
		label := theme
		if theme == m.themeName {
			label += " (current)"
		}
		if i == m.themeCursor {
			b.WriteString(m.styles.ListSelected.Render("▸ " + label))
		} else {
			b.WriteString("  " + m.styles.StatValue.Render(label))
		}
		b.WriteString("\n")
	}
	if end < len(m.themes) {
		b.WriteString(m.styles.StatusHelp.Render("  ↓ more themes below"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatusHelp.Render("↑/↓ navigate  Enter select  Esc cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m ConfigModel) loadConfig() tea.Cmd {
	return func() tea.Msg {
		svc := m.services.Config
		return configLoadedMsg{
			config:      svc.Get(),
			path:        svc.GetPath(),
			exists:      svc.Exists(),
			localPath:   svc.GetLocalPath(),
			localExists: svc.LocalExists(),
		}
	}
}

func (m ConfigModel) renderConfigLine(key, value string) string {
	return m.styles.StatLabel.Render(key+":") + " " + m.styles.StatValue.Render(value) + "\n"
}
