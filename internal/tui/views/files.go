package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/acme/internal/service"
	"github.com/xolan/acme/internal/stats"
	"github.com/xolan/acme/internal/tui/ui"
)

// FilesModel shows how the files of the logs directory are classified
type FilesModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width    int
	height   int
	analysis *stats.Analysis
	err      error
	offset   int // first visible line of the listing
}

// filesLoadedMsg is sent when the logs directory has been analyzed
type filesLoadedMsg struct {
	analysis stats.Analysis
	err      error
}

// NewFilesModel creates a new files view model
func NewFilesModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) FilesModel {
	return FilesModel{services: services, styles: styles, keys: keys}
}

// Init implements tea.Model
func (m FilesModel) Init() tea.Cmd {
	return m.loadFiles()
}

// Update implements tea.Model
func (m FilesModel) Update(msg tea.Msg) (FilesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.offset > 0 {
				m.offset--
			}
		case key.Matches(msg, m.keys.Down):
			if m.offset < len(m.listing())-1 {
				m.offset++
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadFiles()
		}

	case filesLoadedMsg:
		m.err = msg.err
		m.analysis = nil
		if msg.err == nil {
			a := msg.analysis
			m.analysis = &a
		}
		m.offset = 0

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m FilesModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Log Files"))
	b.WriteString("\n")
	b.WriteString(m.styles.StatusHelp.Render(m.services.Stats.LogsDir()))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}
	if m.analysis == nil {
		b.WriteString("Loading...")
		return b.String()
	}

	a := m.analysis
	b.WriteString(renderStatLine(m.styles, "Total files:", fmt.Sprint(a.Total())))
	b.WriteString(renderStatLine(m.styles, "Valid log files:", fmt.Sprint(len(a.Valid()))))
	b.WriteString(renderStatLine(m.styles, "Custom names:", fmt.Sprint(len(a.Custom()))))
	b.WriteString(renderStatLine(m.styles, "Y-m-d names:", fmt.Sprint(len(a.YMD()))))
	invalid := fmt.Sprint(len(a.Invalid()))
	if len(a.Invalid()) > 0 {
		b.WriteString(m.styles.StatLabel.Render("Invalid names:") + " " + m.styles.Warning.Render(invalid) + "\n")
	} else {
		b.WriteString(renderStatLine(m.styles, "Invalid names:", invalid))
	}
	b.WriteString("\n")

	lines := m.listing()
	visible := max(m.height-10, 3)
	end := min(m.offset+visible, len(lines))
	for _, line := range lines[m.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if end < len(lines) {
		b.WriteString(m.styles.StatusHelp.Render("  ↓ more files below"))
		b.WriteString("\n")
	}

	return b.String()
}

// listing renders one line per file, invalid files first
func (m FilesModel) listing() []string {
	if m.analysis == nil {
		return nil
	}
	var lines []string
	for _, c := range m.analysis.Invalid() {
		lines = append(lines, m.styles.Warning.Render("  ✗ "+c.Path))
	}
	for _, c := range m.analysis.Valid() {
		line := "  ✓ " + c.Path
		if c.Custom || c.YMD {
			line += m.styles.StatusHelp.Render("  " + c.Date())
		}
		lines = append(lines, line)
	}
	return lines
}

// SetSize sets the view dimensions
func (m *FilesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m FilesModel) loadFiles() tea.Cmd {
	return func() tea.Msg {
		a, err := m.services.Stats.Analyze()
		return filesLoadedMsg{analysis: a, err: err}
	}
}
