package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/acme/internal/cli"
	"github.com/xolan/acme/internal/csvtext"
	"github.com/xolan/acme/internal/filter"
	"github.com/xolan/acme/internal/service"
	"github.com/xolan/acme/internal/tui/ui"
)

// ReportModel shows the assembled report of the current period as a table
type ReportModel struct {
	styles ui.Styles
	keys   ui.KeyMap
	filter *filter.Filter

	width  int
	height int
	table  table.Model
	input  string
	result *service.ReportResult
	err    error
}

// NewReportModel creates a new report view model
func NewReportModel(styles ui.Styles, keys ui.KeyMap, f *filter.Filter) ReportModel {
	t := table.New(table.WithFocused(true), table.WithHeight(10))
	m := ReportModel{styles: styles, keys: keys, filter: f, table: t}
	m.applyTableStyles()
	return m
}

// Update implements tea.Model
func (m ReportModel) Update(msg tea.Msg) (ReportModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ReportLoadedMsg:
		m.input = msg.Input
		m.err = msg.Err
		m.result = msg.Result
		m.setTable()
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.applyTableStyles()
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model
func (m ReportModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Report"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
		return b.String()
	}
	if m.result == nil {
		b.WriteString("Loading...")
		return b.String()
	}

	b.WriteString(m.styles.Period.Render(cli.BuildPeriodWithFilters(m.result.Period, m.filter)))
	b.WriteString(m.styles.StatusHelp.Render(fmt.Sprintf("  (%s report)", m.result.Kind)))
	b.WriteString("\n\n")

	if len(m.result.Rows) == 0 {
		b.WriteString(m.styles.Warning.Render("No entries for this period"))
		b.WriteString("\n\n")
	}
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m ReportModel) renderFooter() string {
	col := m.result.Collection
	parts := []string{countOf(len(m.result.Rows), "entry")}
	if m.result.Kind != service.KindDay {
		parts = append(parts, countOf(col.Found(), "log file"))
	}
	footer := m.styles.StatusHelp.Render(strings.Join(parts, " · "))
	if n := len(col.Warnings); n > 0 {
		footer += "  " + m.styles.Warning.Render(countOf(n, "malformed line")+" skipped")
	}
	return footer
}

// SetSize sets the view dimensions
func (m *ReportModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetWidth(width)
	m.table.SetHeight(max(height-8, 3))
}

// Result returns the report currently shown, nil before the first load or after an error
func (m ReportModel) Result() *service.ReportResult {
	return m.result
}

// Input returns the date input of the report currently shown
func (m ReportModel) Input() string {
	return m.input
}

func (m *ReportModel) applyTableStyles() {
	s := table.DefaultStyles()
	s.Header = m.styles.TableHeader
	s.Cell = m.styles.TableCell
	s.Selected = m.styles.TableSelected
	m.table.SetStyles(s)
}

// setTable replaces the table contents. Rows are cleared before the columns
// change so no row is ever wider than the column set.
func (m *ReportModel) setTable() {
	m.table.SetRows(nil)
	if m.result == nil || len(m.result.Table) == 0 {
		m.table.SetColumns(nil)
		return
	}
	cols, rows := tableContents(m.result.Table)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// tableContents converts an assembled report (header first) into table columns and rows
func tableContents(report [][]string) ([]table.Column, []table.Row) {
	header := report[0]
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(csvtext.Unescape(h))
	}

	rows := make([]table.Row, 0, len(report)-1)
	for _, r := range report[1:] {
		row := make(table.Row, len(header))
		for i := range header {
			if i < len(r) {
				row[i] = csvtext.Unescape(r[i])
			}
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
		rows = append(rows, row)
	}

	cols := make([]table.Column, len(header))
	for i, h := range header {
		cols[i] = table.Column{Title: csvtext.Unescape(h), Width: min(widths[i], maxCellWidth)}
	}
	return cols, rows
}
