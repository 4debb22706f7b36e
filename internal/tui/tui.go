// Package tui provides the interactive report browser of the acme application.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/acme/internal/filter"
	"github.com/xolan/acme/internal/report"
	"github.com/xolan/acme/internal/service"
	"github.com/xolan/acme/internal/tui/ui"
	"github.com/xolan/acme/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabReport Tab = iota
	TabSummary
	TabFiles
	TabConfig
)

var tabNames = []string{"Report", "Summary", "Files", "Config"}

// errNoClipboard is reported when copying without a clipboard function
var errNoClipboard = errors.New("clipboard unavailable")

// Options selects the first report the browser shows
type Options struct {
	Input         string // date input or interval
	ModuleOptions string
	Filter        *filter.Filter
	Clipboard     func(string) error
}

// Model is the root TUI model
type Model struct {
	services  *service.Services
	input     string
	options   report.Options
	filter    *filter.Filter
	clipboard func(string) error

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool
	status    ui.StatusMsg

	// View models
	reportView  views.ReportModel
	summaryView views.SummaryModel
	filesView   views.FilesModel
	configView  views.ConfigModel

	themes *ui.ThemeProvider
	styles ui.Styles
	keys   ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services, opts Options) Model {
	themes := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themes.Styles()
	keys := ui.DefaultKeyMap()

	reportOpts := report.DefaultOptions()
	reportOpts.ModuleOptions = opts.ModuleOptions

	input := opts.Input
	if input == "" {
		input = "today"
	}

	return Model{
		services:    services,
		input:       input,
		options:     reportOpts,
		filter:      opts.Filter,
		clipboard:   opts.Clipboard,
		activeTab:   TabReport,
		themes:      themes,
		styles:      styles,
		keys:        keys,
		reportView:  views.NewReportModel(styles, keys, opts.Filter),
		summaryView: views.NewSummaryModel(styles, keys),
		filesView:   views.NewFilesModel(services, styles, keys),
		configView:  views.NewConfigModel(services, themes, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadReport(),
		m.filesView.Init(),
		m.configView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.status = ui.StatusMsg{}
		if m.isModalInputMode() {
			return m.updateActive(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.Tab1):
			m.activeTab = TabReport
			return m, nil

		case key.Matches(msg, m.keys.Tab2):
			m.activeTab = TabSummary
			return m, nil

		case key.Matches(msg, m.keys.Tab3):
			m.activeTab = TabFiles
			return m, nil

		case key.Matches(msg, m.keys.Tab4):
			m.activeTab = TabConfig
			return m, nil

		case key.Matches(msg, m.keys.PrevPeriod):
			return m.shiftPeriod(-1)

		case key.Matches(msg, m.keys.NextPeriod):
			return m.shiftPeriod(1)

		case key.Matches(msg, m.keys.Today):
			m.input = "today"
			return m, m.loadReport()

		case key.Matches(msg, m.keys.Refresh):
			return m, tea.Batch(m.loadReport(), m.filesView.Init())

		case key.Matches(msg, m.keys.Generate):
			return m, m.generateReport()

		case key.Matches(msg, m.keys.Copy):
			return m, m.copyReport()

		case key.Matches(msg, m.keys.Themes):
			m.activeTab = TabConfig
			m.configView.OpenThemeSelector()
			return m, nil
		}

		return m.updateActive(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // tabs and status bar
		m.reportView.SetSize(m.width, contentHeight)
		m.summaryView.SetSize(m.width, contentHeight)
		m.filesView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.StatusMsg:
		m.status = msg
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themes.SetTheme(msg.ThemeName)
		m.styles = m.themes.Styles()
		return m.broadcast(ui.ThemeChangedMsg{ThemeName: m.themes.Current(), Styles: m.styles}, m.saveTheme())
	}

	return m.broadcast(msg, nil)
}

// broadcast passes a non-key message to every view so that results of commands
// started by inactive views are not lost
func (m Model) broadcast(msg tea.Msg, extra tea.Cmd) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{extra}
	var cmd tea.Cmd

	m.reportView, cmd = m.reportView.Update(msg)
	cmds = append(cmds, cmd)
	m.summaryView, cmd = m.summaryView.Update(msg)
	cmds = append(cmds, cmd)
	m.filesView, cmd = m.filesView.Update(msg)
	cmds = append(cmds, cmd)
	m.configView, cmd = m.configView.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// updateActive passes a key message to the active view only
func (m Model) updateActive(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeTab {
	case TabReport:
		m.reportView, cmd = m.reportView.Update(msg)
	case TabSummary:
		m.summaryView, cmd = m.summaryView.Update(msg)
	case TabFiles:
		m.filesView, cmd = m.filesView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}
	return m, cmd
}

// isModalInputMode checks if the active view captures every key
func (m Model) isModalInputMode() bool {
	return m.activeTab == TabConfig && m.configView.IsInputMode()
}

// shiftPeriod moves a day, month or year report n periods away
func (m Model) shiftPeriod(n int) (tea.Model, tea.Cmd) {
	res := m.reportView.Result()
	if res == nil {
		return m, nil
	}
	if res.Kind == service.KindInterval {
		m.status = ui.StatusMsg{Err: errors.New("interval reports cannot be moved")}
		return m, nil
	}

	next, err := res.Spec.Shift(n)
	if err != nil {
		m.status = ui.StatusMsg{Err: err}
		return m, nil
	}
	m.input = next
	m.status = ui.StatusMsg{}
	return m, m.loadReport()
}

func (m Model) request() service.ReportRequest {
	return service.ReportRequest{Input: m.input, Options: m.options, Filter: m.filter}
}

// loadReport builds the report of the current input without writing it
func (m Model) loadReport() tea.Cmd {
	req := m.request()
	return func() tea.Msg {
		res, err := m.services.Report.Build(req)
		msg := views.ReportLoadedMsg{Input: req.Input, Result: res, Err: err}
		if err == nil {
			msg.Summary = m.services.Stats.Summarize(res.Rows)
		}
		return msg
	}
}

// generateReport writes the current report to the gen directory
func (m Model) generateReport() tea.Cmd {
	req := m.request()
	return func() tea.Msg {
		res, err := m.services.Report.Generate(req)
		if err != nil {
			return ui.StatusMsg{Err: err}
		}
		return ui.StatusMsg{Text: fmt.Sprintf("Generated CSV file %s", res.Path)}
	}
}

// copyReport copies the CSV of the report on screen to the clipboard
func (m Model) copyReport() tea.Cmd {
	res := m.reportView.Result()
	if res == nil {
		return nil
	}
	clip := m.clipboard
	return func() tea.Msg {
		if clip == nil {
			return ui.StatusMsg{Err: errNoClipboard}
		}
		if err := clip(res.CSV); err != nil {
			return ui.StatusMsg{Err: fmt.Errorf("failed to copy to clipboard: %w", err)}
		}
		return ui.StatusMsg{Text: "Copied CSV to clipboard"}
	}
}

// saveTheme stores the active theme in the global config file
func (m Model) saveTheme() tea.Cmd {
	name := m.themes.ConfigValue()
	return func() tea.Msg {
		if err := m.services.Config.SetTheme(name); err != nil {
			return ui.StatusMsg{Err: err}
		}
		return ui.StatusMsg{Text: "Theme saved"}
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabReport:
		b.WriteString(m.reportView.View())
	case TabSummary:
		b.WriteString(m.summaryView.View())
	case TabFiles:
		b.WriteString(m.filesView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the last action result or the key hints of the active view
func (m Model) renderStatusBar() string {
	var content string

	switch {
	case m.status.Err != nil:
		content = m.styles.Error.Render("Error: " + m.status.Err.Error())
	case m.status.Text != "":
		content = m.styles.Success.Render(m.status.Text)
	default:
		var parts []string
		if m.isModalInputMode() {
			parts = append(parts, m.renderKeyHelp("↑/↓", "navigate"))
			parts = append(parts, m.renderKeyHelp("Enter", "select"))
			parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
		} else {
			parts = append(parts, m.renderKeyHelp("h/l", "period"))
			parts = append(parts, m.renderKeyHelp("t", "today"))
			switch m.activeTab {
			case TabReport, TabSummary:
				parts = append(parts, m.renderKeyHelp("g", "write csv"))
				parts = append(parts, m.renderKeyHelp("c", "copy"))
			case TabFiles:
				parts = append(parts, m.renderKeyHelp("r", "refresh"))
			case TabConfig:
				parts = append(parts, m.renderKeyHelp("T", "themes"))
			}
			parts = append(parts, m.renderKeyHelp("1-4", "views"))
			parts = append(parts, m.renderKeyHelp("?", "help"))
			parts = append(parts, m.renderKeyHelp("q", "quit"))
		}
		content = strings.Join(parts, "  ")
	}

	if padding := m.width - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}
	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// renderHelpOverlay renders the keyboard shortcuts in a dialog
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.DialogTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-4    Switch views\n")
	help.WriteString("  h/l        Previous/next period\n")
	help.WriteString("  t          Today\n")
	help.WriteString("  r          Reload\n")
	help.WriteString("  g          Write CSV to the gen directory\n")
	help.WriteString("  c          Copy CSV to the clipboard\n")
	help.WriteString("  T          Pick a theme\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")

	switch m.activeTab {
	case TabReport:
		help.WriteString("\n")
		help.WriteString(m.styles.StatLabel.Render("Report:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Move through rows\n")
	case TabFiles:
		help.WriteString("\n")
		help.WriteString(m.styles.StatLabel.Render("Files:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Scroll the listing\n")
	case TabConfig:
		help.WriteString("\n")
		help.WriteString(m.styles.StatLabel.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  Enter      Open theme selector\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatusHelp.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the report browser
func Run(services *service.Services, opts Options) error {
	p := tea.NewProgram(New(services, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
