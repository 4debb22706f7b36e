package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/acme/internal/service"
	"github.com/xolan/acme/internal/stats"
	"github.com/xolan/acme/internal/tui/ui"
)

// SummaryModel shows the statistics and breakdowns of the current report
type SummaryModel struct {
	styles ui.Styles
	keys   ui.KeyMap

	width   int
	height  int
	period  string
	summary *service.SummaryResult
	err     error
}

// NewSummaryModel creates a new summary view model
func NewSummaryModel(styles ui.Styles, keys ui.KeyMap) SummaryModel {
	return SummaryModel{styles: styles, keys: keys}
}

// Update implements tea.Model
func (m SummaryModel) Update(msg tea.Msg) (SummaryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ReportLoadedMsg:
		m.err = msg.Err
		m.summary = nil
		if msg.Err == nil && msg.Result != nil {
			s := msg.Summary
			m.summary = &s
			m.period = msg.Result.Period
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m SummaryModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Summary"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}
	if m.summary == nil {
		b.WriteString("No data")
		return b.String()
	}

	b.WriteString(m.styles.Period.Render(m.period))
	b.WriteString("\n\n")

	st := m.summary.Statistics
	b.WriteString(renderStatLine(m.styles, "Total time:", formatHours(st.TotalHours)))
	b.WriteString(renderStatLine(m.styles, "Total hours:", st.TotalHours.String()))
	b.WriteString(renderStatLine(m.styles, "Total entries:", countOf(st.EntryCount, "entry")))
	b.WriteString(renderStatLine(m.styles, "Days with work:", countOf(st.DaysWithEntries, "day")))
	b.WriteString(renderStatLine(m.styles, "Average per day:", formatHours(st.AverageHoursPerDay)))

	b.WriteString(m.renderBreakdown("By Category", m.summary.Categories, m.styles.Category))
	b.WriteString(m.renderBreakdown("By Hashtag", m.summary.Hashtags, m.styles.Hashtag))

	return b.String()
}

func (m SummaryModel) renderBreakdown(title string, items []stats.Breakdown, label lipgloss.Style) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString(fmt.Sprintf("  %s %s  (%s)\n",
			label.Render(fmt.Sprintf("%-28s", item.Label)),
			m.styles.Hours.Render(formatHours(item.Hours)),
			countOf(item.EntryCount, "entry")))
	}
	return b.String()
}

// SetSize sets the view dimensions
func (m *SummaryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
